package model

// Intent classifies a chat utterance
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentWellness Intent = "how-are-you"
	IntentThanks   Intent = "thanks"
	IntentHelp     Intent = "help"
	IntentBrowse   Intent = "browse"
	IntentSearch   Intent = "search"
)

// Conversational reports whether the intent short-circuits the filter
// pipeline with a canned reply.
func (i Intent) Conversational() bool {
	switch i {
	case IntentGreeting, IntentWellness, IntentThanks, IntentHelp:
		return true
	}
	return false
}

// ParsedIntent is the query parser's output: an intent tag plus whatever
// structured criteria were extracted from the utterance.
type ParsedIntent struct {
	Intent   Intent         `json:"intent"`
	Criteria FilterCriteria `json:"criteria"`
}

// FilterCriteria represents structured search constraints. All fields are
// optional; an absent field imposes no restriction. Present fields are
// combined with logical AND by the filter engine.
type FilterCriteria struct {
	Location  *string  `json:"location,omitempty"`
	PriceMin  *float64 `json:"price_min,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	Rating    *int     `json:"rating,omitempty"`
}

// HasConstraints reports whether at least one filter field is set. A bound of
// exactly zero counts as unset, matching the filter engine's semantics.
func (c FilterCriteria) HasConstraints() bool {
	if c.Location != nil && *c.Location != "" {
		return true
	}
	if c.PriceMin != nil && *c.PriceMin > 0 {
		return true
	}
	if c.PriceMax != nil && *c.PriceMax > 0 {
		return true
	}
	if len(c.Amenities) > 0 {
		return true
	}
	if c.Rating != nil && *c.Rating > 0 {
		return true
	}
	return false
}

// SortMode selects the ordering of a filtered result set
type SortMode string

const (
	SortRecommended SortMode = "recommended"
	SortPriceLow    SortMode = "price-low"
	SortPriceHigh   SortMode = "price-high"
	SortRating      SortMode = "rating"
)

// NormalizeSortMode maps unknown or empty modes to SortRecommended.
func NormalizeSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPriceLow, SortPriceHigh, SortRating:
		return SortMode(s)
	}
	return SortRecommended
}
