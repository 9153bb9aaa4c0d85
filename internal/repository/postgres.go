package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"core/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// hotelRow mirrors the hotels table: a flat location column and nullable
// rating, as the original storefront table stores them.
type hotelRow struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Location    sql.NullString  `db:"location"`
	Description sql.NullString  `db:"description"`
	Price       sql.NullFloat64 `db:"price_per_night"`
	Currency    sql.NullString  `db:"currency"`
	Rating      sql.NullFloat64 `db:"rating"`
	Amenities   model.JSONArray `db:"amenities"`
	ImageURL    sql.NullString  `db:"image_url"`
	Featured    sql.NullBool    `db:"featured"`
	UserID      sql.NullString  `db:"user_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

// defaultRating is assumed for rows that predate the rating column
const defaultRating = 4

// PostgresRepository reads and writes the hotels table
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// FetchHotels returns the full collection in source order (newest first, the
// "recommended" baseline).
func (r *PostgresRepository) FetchHotels(ctx context.Context) ([]model.Hotel, error) {
	query := `
		SELECT
			id, name, location, description, price_per_night, currency,
			rating, amenities, image_url, featured, user_id, created_at
		FROM hotels
		ORDER BY created_at DESC
	`
	var rows []hotelRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to fetch hotels: %w", err)
	}

	hotels := make([]model.Hotel, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, row.toHotel())
	}
	return hotels, nil
}

// InsertHotel stores a new hotel row
func (r *PostgresRepository) InsertHotel(ctx context.Context, hotel model.Hotel) error {
	query := `
		INSERT INTO hotels (id, name, location, description, price_per_night, currency, rating, amenities, image_url, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`
	location := hotel.Location.Address
	if location == "" {
		location = strings.TrimSpace(strings.Trim(hotel.Location.City+", "+hotel.Location.Country, ", "))
	}
	_, err := r.db.ExecContext(ctx, query,
		hotel.ID,
		hotel.Name,
		location,
		hotel.Description,
		hotel.Price,
		hotel.Currency,
		hotel.Rating,
		hotel.Amenities,
		hotel.ImageURL,
		hotel.Featured,
	)
	if err != nil {
		return fmt.Errorf("failed to insert hotel: %w", err)
	}
	return nil
}

// toHotel maps a table row to the domain record, splitting the flat location
// column at its first comma and defaulting a missing rating.
func (row hotelRow) toHotel() model.Hotel {
	rating := float64(defaultRating)
	if row.Rating.Valid {
		rating = row.Rating.Float64
	}
	currency := "USD"
	if row.Currency.Valid && row.Currency.String != "" {
		currency = row.Currency.String
	}
	return model.Hotel{
		ID:          row.ID,
		Name:        row.Name,
		Location:    model.ParseLocation(row.Location.String),
		Price:       row.Price.Float64,
		Currency:    currency,
		Rating:      rating,
		Amenities:   row.Amenities,
		Featured:    row.Featured.Bool,
		Description: row.Description.String,
		ImageURL:    row.ImageURL.String,
		CreatedAt:   row.CreatedAt,
	}
}
