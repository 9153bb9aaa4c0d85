package model

// Default price range bounds used when the search state is initialized and
// when only one side of a parsed price range is known.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 5000
)

// GuestCount holds the guest selection carried through from the booking UI.
// The filter engine does not consume it.
type GuestCount struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// PriceRange is an inclusive nightly price window
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchState is the shared last-applied-filter record. The chat parser and
// the explicit listing filters both write it; the listing page reads it to
// pre-populate its controls.
type SearchState struct {
	Location   string     `json:"location"`
	CheckIn    string     `json:"check_in"`
	CheckOut   string     `json:"check_out"`
	Guests     GuestCount `json:"guests"`
	PriceRange PriceRange `json:"price_range"`
	Amenities  []string   `json:"amenities"`
	Rating     int        `json:"rating"`
}

// DefaultSearchState returns the canonical all-empty state
func DefaultSearchState() SearchState {
	return SearchState{
		Guests:     GuestCount{Adults: 1, Children: 0},
		PriceRange: PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
		Amenities:  []string{},
	}
}

// SearchStateUpdate is a shallow-merge patch: nil fields leave the current
// value untouched, set fields overwrite it wholesale.
type SearchStateUpdate struct {
	Location   *string     `json:"location,omitempty"`
	CheckIn    *string     `json:"check_in,omitempty"`
	CheckOut   *string     `json:"check_out,omitempty"`
	Guests     *GuestCount `json:"guests,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	Amenities  []string    `json:"amenities,omitempty"`
	Rating     *int        `json:"rating,omitempty"`
}

// Merge applies the update to a copy of the state and returns it.
func (s SearchState) Merge(u SearchStateUpdate) SearchState {
	if u.Location != nil {
		s.Location = *u.Location
	}
	if u.CheckIn != nil {
		s.CheckIn = *u.CheckIn
	}
	if u.CheckOut != nil {
		s.CheckOut = *u.CheckOut
	}
	if u.Guests != nil {
		s.Guests = *u.Guests
	}
	if u.PriceRange != nil {
		s.PriceRange = *u.PriceRange
	}
	if u.Amenities != nil {
		s.Amenities = append([]string(nil), u.Amenities...)
	}
	if u.Rating != nil {
		s.Rating = *u.Rating
	}
	return s
}

// StateUpdateFromCriteria converts extracted criteria into a search state
// patch. Price bounds are only included when at least one side is positive,
// the missing side defaulting to the canonical bounds.
func StateUpdateFromCriteria(c FilterCriteria) SearchStateUpdate {
	update := SearchStateUpdate{}
	if c.Location != nil && *c.Location != "" {
		update.Location = c.Location
	}
	minPrice := 0.0
	maxPrice := 0.0
	if c.PriceMin != nil {
		minPrice = *c.PriceMin
	}
	if c.PriceMax != nil {
		maxPrice = *c.PriceMax
	}
	if minPrice > 0 || maxPrice > 0 {
		pr := PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax}
		if minPrice > 0 {
			pr.Min = minPrice
		}
		if maxPrice > 0 {
			pr.Max = maxPrice
		}
		update.PriceRange = &pr
	}
	if len(c.Amenities) > 0 {
		update.Amenities = append([]string(nil), c.Amenities...)
	}
	if c.Rating != nil && *c.Rating > 0 {
		update.Rating = c.Rating
	}
	return update
}
