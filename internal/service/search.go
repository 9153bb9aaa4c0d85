package service

import (
	"context"
	"fmt"
	"sort"

	"core/internal/model"
	"core/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HotelWriter persists new hotels. Sources without write support (the static
// fixture) leave it nil.
type HotelWriter interface {
	InsertHotel(ctx context.Context, hotel model.Hotel) error
}

// SearchService serves the listing page: explicit filtering and sorting over
// the catalog, hotel lookup, hotel creation, and booking confirmation.
type SearchService struct {
	catalog *Catalog
	filter  *FilterEngine
	state   *SearchStateStore
	writer  HotelWriter
	logger  *zap.Logger
}

// NewSearchService creates a new search service. writer may be nil for
// read-only sources.
func NewSearchService(
	catalog *Catalog,
	filter *FilterEngine,
	state *SearchStateStore,
	writer HotelWriter,
	logger *zap.Logger,
) *SearchService {
	return &SearchService{
		catalog: catalog,
		filter:  filter,
		state:   state,
		writer:  writer,
		logger:  logger,
	}
}

// ListHotels applies the explicit filter controls and the sort mode to the
// collection. When a session is given and at least one constraint is set, the
// applied criteria overwrite the session's search state, so a form-driven
// search and a chat-driven search converge on the same state shape.
func (s *SearchService) ListHotels(ctx context.Context, criteria model.FilterCriteria, mode model.SortMode, sessionID string) (*model.HotelListResponse, error) {
	hotels, status := s.catalog.Snapshot()
	switch status {
	case CatalogLoading:
		return nil, ErrCatalogLoading
	case CatalogUnavailable:
		return nil, ErrCatalogUnavailable
	}

	results := s.filter.Apply(hotels, criteria)
	SortHotels(results, mode)

	if sessionID != "" && criteria.HasConstraints() {
		s.state.Update(sessionID, model.StateUpdateFromCriteria(criteria))
	}

	return &model.HotelListResponse{
		Hotels: results,
		Total:  len(results),
		Sort:   mode,
	}, nil
}

// GetHotel returns a single hotel by ID, or ErrHotelNotFound.
func (s *SearchService) GetHotel(ctx context.Context, id string) (*model.Hotel, error) {
	hotels, status := s.catalog.Snapshot()
	switch status {
	case CatalogLoading:
		return nil, ErrCatalogLoading
	case CatalogUnavailable:
		return nil, ErrCatalogUnavailable
	}
	for i := range hotels {
		if hotels[i].ID == id {
			return &hotels[i], nil
		}
	}
	return nil, ErrHotelNotFound
}

// AllAmenities returns the distinct amenity labels across the collection,
// sorted, for the listing page's filter sidebar.
func (s *SearchService) AllAmenities(ctx context.Context) ([]string, error) {
	hotels, status := s.catalog.Snapshot()
	switch status {
	case CatalogLoading:
		return nil, ErrCatalogLoading
	case CatalogUnavailable:
		return nil, ErrCatalogUnavailable
	}
	seen := make(map[string]bool)
	var labels []string
	for _, h := range hotels {
		for _, a := range h.Amenities {
			if !seen[a] {
				seen[a] = true
				labels = append(labels, a)
			}
		}
	}
	sort.Strings(labels)
	return labels, nil
}

// CreateHotel persists a new hotel and refreshes the catalog. Amenity labels
// are normalized to their canonical stored form on the way in.
func (s *SearchService) CreateHotel(ctx context.Context, req *model.CreateHotelRequest) (*model.Hotel, error) {
	if s.writer == nil {
		return nil, fmt.Errorf("hotel source is read-only")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price_per_night must be non-negative")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	hotel := model.Hotel{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Location:    model.ParseLocation(req.Location),
		Price:       req.Price,
		Currency:    currency,
		Rating:      4,
		Amenities:   utils.NormalizeAmenities(req.Amenities),
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.writer.InsertHotel(ctx, hotel); err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}

	if err := s.catalog.Load(ctx); err != nil {
		s.logger.Warn("catalog refresh after create failed", zap.Error(err))
	}

	return &hotel, nil
}

// ConfirmBooking validates the hotel and acknowledges the booking. This is a
// confirmation only: no payment is taken and no inventory is decremented. The
// guest and date selections are carried into the session's search state.
func (s *SearchService) ConfirmBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error) {
	hotel, err := s.GetHotel(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	update := model.SearchStateUpdate{}
	if req.CheckIn != "" {
		update.CheckIn = &req.CheckIn
	}
	if req.CheckOut != "" {
		update.CheckOut = &req.CheckOut
	}
	if req.Guests.Adults > 0 || req.Guests.Children > 0 {
		update.Guests = &req.Guests
	}
	if req.SessionID != "" {
		s.state.Update(req.SessionID, update)
	}

	return &model.BookingResponse{
		Success:   true,
		Reference: uuid.NewString(),
		HotelID:   hotel.ID,
		HotelName: hotel.Name,
		Message:   fmt.Sprintf("Your stay at %s is confirmed. A confirmation email is on its way.", hotel.Name),
	}, nil
}

// SearchState returns the session's current search state
func (s *SearchService) SearchState(sessionID string) model.SearchState {
	return s.state.State(sessionID)
}

// UpdateSearchState applies an explicit state patch from the listing page
func (s *SearchService) UpdateSearchState(sessionID string, update model.SearchStateUpdate) model.SearchState {
	return s.state.Update(sessionID, update)
}

// ResetSearchState restores the session's default state
func (s *SearchService) ResetSearchState(sessionID string) model.SearchState {
	return s.state.Reset(sessionID)
}
