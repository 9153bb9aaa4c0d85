package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"
)

// Location describes where a hotel is situated
type Location struct {
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Country string `json:"country"`
	Address string `json:"address,omitempty"`
}

// ParseLocation splits a flat "City, Country" column into a Location. A value
// without a comma is treated as a country only; the raw string is kept as the
// address.
func ParseLocation(raw string) Location {
	loc := Location{Address: raw}
	if city, country, ok := strings.Cut(raw, ","); ok {
		loc.City = strings.TrimSpace(city)
		loc.Country = strings.TrimSpace(country)
	} else {
		loc.Country = strings.TrimSpace(raw)
	}
	return loc
}

// Hotel represents a single hotel record. Records are created externally
// (database row or fixture entry) and are never mutated by the search core.
type Hotel struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Location    Location  `json:"location"`
	Price       float64   `json:"price" db:"price_per_night"`
	Currency    string    `json:"currency" db:"currency"`
	Rating      float64   `json:"rating" db:"rating"`
	Amenities   JSONArray `json:"amenities" db:"amenities"`
	Featured    bool      `json:"featured" db:"featured"`
	Description string    `json:"description,omitempty" db:"description"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"created_at,omitempty" db:"created_at"`
}

// IsZero reports whether the record is an empty hole from the upstream
// source. Such records are discarded before any predicate evaluation.
func (h Hotel) IsZero() bool {
	return h.ID == "" && h.Name == ""
}

// HotelSummary is the structured shape of one enumerated chat result. It
// carries the hotel ID alongside the presentation fields so that selecting a
// listed hotel never requires re-parsing the formatted reply.
type HotelSummary struct {
	Rank    int     `json:"rank"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Price   float64 `json:"price"`
	Rating  float64 `json:"rating"`
}

// JSONArray represents a JSON array column
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
