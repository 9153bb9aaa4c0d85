package service

import (
	"math"
	"strings"

	"core/internal/model"
	"core/internal/utils"
)

// FilterEngine applies structured criteria to a hotel collection. All present
// constraints are combined with logical AND; absent constraints impose no
// restriction. A price bound of exactly zero is treated as unset, and an
// inverted range passes through and simply yields an empty result.
type FilterEngine struct{}

// NewFilterEngine creates a new filter engine
func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// Apply returns the ordered subsequence of hotels satisfying all set
// constraints. Relative input order is preserved; empty hole records from the
// upstream source are discarded before predicate evaluation.
func (e *FilterEngine) Apply(hotels []model.Hotel, criteria model.FilterCriteria) []model.Hotel {
	filtered := make([]model.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		if hotel.IsZero() {
			continue
		}
		if e.Matches(hotel, criteria) {
			filtered = append(filtered, hotel)
		}
	}
	return filtered
}

// Matches reports whether a single hotel satisfies every present criteria
// field.
func (e *FilterEngine) Matches(hotel model.Hotel, criteria model.FilterCriteria) bool {
	if criteria.Location != nil && *criteria.Location != "" {
		if !e.matchesLocation(hotel, *criteria.Location) {
			return false
		}
	}
	if criteria.PriceMin != nil && *criteria.PriceMin > 0 && hotel.Price < *criteria.PriceMin {
		return false
	}
	if criteria.PriceMax != nil && *criteria.PriceMax > 0 && hotel.Price > *criteria.PriceMax {
		return false
	}
	if len(criteria.Amenities) > 0 && !e.matchesAmenities(hotel, criteria.Amenities) {
		return false
	}
	if criteria.Rating != nil && *criteria.Rating > 0 {
		if int(math.Floor(hotel.Rating)) < *criteria.Rating {
			return false
		}
	}
	return true
}

// matchesLocation passes when the city or the country contains the requested
// location as a case-insensitive substring. A hotel with an empty location
// record fails.
func (e *FilterEngine) matchesLocation(hotel model.Hotel, location string) bool {
	want := strings.ToLower(location)
	if hotel.Location.City == "" && hotel.Location.Country == "" {
		return false
	}
	return strings.Contains(strings.ToLower(hotel.Location.City), want) ||
		strings.Contains(strings.ToLower(hotel.Location.Country), want)
}

// matchesAmenities requires every requested keyword to match at least one of
// the hotel's own labels: AND across the requested set, OR within the label
// list per keyword.
func (e *FilterEngine) matchesAmenities(hotel model.Hotel, requested []string) bool {
	for _, keyword := range requested {
		matched := false
		for _, label := range hotel.Amenities {
			if utils.MatchAmenity(keyword, label) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
