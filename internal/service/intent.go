package service

import (
	"regexp"
	"strconv"
	"strings"

	"core/internal/model"
)

// Extraction patterns. The numeric token is an integer; a leading currency
// symbol is optional and ignored.
var (
	locationPattern     = regexp.MustCompile(`\bin\s+([a-z][a-z\s]*)`)
	priceUpperPattern   = regexp.MustCompile(`(?:under|less than|cheaper than)\s+\$?(\d+)`)
	priceBetweenPattern = regexp.MustCompile(`between\s+\$?(\d+)\s+and\s+\$?(\d+)`)
	ratingPattern       = regexp.MustCompile(`(\d+)\s+star`)
)

// IntentParser maps a raw utterance to a ParsedIntent using fixed pattern
// rules and vocabularies. It is a pure function of its input: no I/O, no
// errors — an absent pattern simply leaves the corresponding field unset.
type IntentParser struct{}

// NewIntentParser creates a new intent parser
func NewIntentParser() *IntentParser {
	return &IntentParser{}
}

// Parse extracts structured search intent from a natural language utterance.
// Matching is case-insensitive throughout; conversational checks run first,
// greeting before all others.
func (p *IntentParser) Parse(utterance string) *model.ParsedIntent {
	lower := strings.ToLower(strings.TrimSpace(utterance))

	if intent, ok := p.conversational(lower); ok {
		return &model.ParsedIntent{Intent: intent}
	}

	criteria := model.FilterCriteria{}

	if loc := p.extractLocation(lower); loc != "" {
		criteria.Location = &loc
	}

	minPrice, maxPrice := p.extractPrice(lower)
	if minPrice > 0 {
		criteria.PriceMin = &minPrice
	}
	if maxPrice > 0 {
		criteria.PriceMax = &maxPrice
	}

	criteria.Amenities = p.extractAmenities(lower)

	if rating := p.extractRating(lower); rating > 0 {
		criteria.Rating = &rating
	}

	intent := model.IntentSearch
	if !criteria.HasConstraints() && p.mentionsAccommodation(lower) {
		intent = model.IntentBrowse
	}

	return &model.ParsedIntent{Intent: intent, Criteria: criteria}
}

// conversational checks the fixed set of conversational markers. Order is
// significant: the greeting check precedes all others.
func (p *IntentParser) conversational(lower string) (model.Intent, bool) {
	switch {
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi ") || lower == "hi" ||
		strings.Contains(lower, "hey ") || lower == "hey":
		return model.IntentGreeting, true
	case strings.Contains(lower, "how are you"):
		return model.IntentWellness, true
	case strings.Contains(lower, "thank you") || strings.Contains(lower, "thanks"):
		return model.IntentThanks, true
	case strings.Contains(lower, "help") || strings.Contains(lower, "what can you do"):
		return model.IntentHelp, true
	}
	return "", false
}

// extractLocation looks for an "in <words>" phrase, trimmed at a comma or at
// the first connective stop word. When no phrase is found, a direct mention
// of a well-known city supplies the location instead.
func (p *IntentParser) extractLocation(lower string) string {
	if match := locationPattern.FindStringSubmatch(lower); len(match) > 1 {
		words := strings.Fields(match[1])
		kept := make([]string, 0, len(words))
		for _, w := range words {
			if locationStopWords[w] {
				break
			}
			kept = append(kept, w)
		}
		if len(kept) > 0 {
			return strings.Join(kept, " ")
		}
	}

	for _, city := range knownCities {
		if strings.Contains(lower, city) {
			return city
		}
	}
	return ""
}

// extractPrice evaluates the price rules in priority order: an upper-bound
// phrase wins over a "between" range; only one rule fires per utterance.
func (p *IntentParser) extractPrice(lower string) (minPrice, maxPrice float64) {
	if match := priceUpperPattern.FindStringSubmatch(lower); len(match) > 1 {
		if v, err := strconv.Atoi(match[1]); err == nil {
			return 0, float64(v)
		}
		return 0, 0
	}
	if match := priceBetweenPattern.FindStringSubmatch(lower); len(match) > 2 {
		lo, errLo := strconv.Atoi(match[1])
		hi, errHi := strconv.Atoi(match[2])
		if errLo == nil && errHi == nil {
			// An inverted range ("between 500 and 100") is passed through
			// unvalidated; the filter engine yields an empty result for it.
			return float64(lo), float64(hi)
		}
	}
	return 0, 0
}

// extractAmenities scans the amenity vocabulary as substrings of the
// utterance. Output order follows the vocabulary, not the utterance.
func (p *IntentParser) extractAmenities(lower string) []string {
	var found []string
	for _, amenity := range amenityVocabulary {
		if strings.Contains(lower, amenity) {
			found = append(found, amenity)
		}
	}
	return found
}

// extractRating matches "<N> star" and returns N as a minimum-rating floor.
func (p *IntentParser) extractRating(lower string) int {
	if match := ratingPattern.FindStringSubmatch(lower); len(match) > 1 {
		if v, err := strconv.Atoi(match[1]); err == nil {
			return v
		}
	}
	return 0
}

func (p *IntentParser) mentionsAccommodation(lower string) bool {
	for _, term := range browseTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
