package utils

import (
	"strings"
	"unicode"
)

// MatchAmenity reports whether a requested keyword matches an owned amenity
// label. The contract is substring containment: "pool" matches "Swimming
// Pool" and "Infinity Pool", "wifi" matches "Free WiFi". Comparison is
// case-insensitive and ignores surrounding whitespace.
func MatchAmenity(keyword, label string) bool {
	k := strings.ToLower(strings.TrimSpace(keyword))
	l := strings.ToLower(strings.TrimSpace(label))
	if k == "" || l == "" {
		return false
	}
	return strings.Contains(l, k)
}

// amenityNormalizations maps common free-text spellings to the canonical
// labels stored on hotel records.
var amenityNormalizations = map[string]string{
	"wifi":            "Free WiFi",
	"free wifi":       "Free WiFi",
	"wi-fi":           "Free WiFi",
	"pool":            "Swimming Pool",
	"swimming pool":   "Swimming Pool",
	"spa":             "Spa",
	"gym":             "Fitness Center",
	"fitness":         "Fitness Center",
	"fitness center":  "Fitness Center",
	"restaurant":      "Restaurant",
	"breakfast":       "Free Breakfast",
	"free breakfast":  "Free Breakfast",
	"parking":         "Parking",
	"car park":        "Parking",
	"beach":           "Private Beach",
	"private beach":   "Private Beach",
	"bar":             "Bar",
	"room service":    "Room Service",
	"concierge":       "Concierge",
	"air conditioner": "Air Conditioning",
	"aircon":          "Air Conditioning",
	"a/c":             "Air Conditioning",
}

// NormalizeAmenity maps a free-text amenity to its canonical stored label.
// Unknown labels are returned title-cased.
func NormalizeAmenity(amenity string) string {
	lower := strings.ToLower(strings.TrimSpace(amenity))
	if normalized, ok := amenityNormalizations[lower]; ok {
		return normalized
	}
	return titleCase(lower)
}

// NormalizeAmenities normalizes a label list, dropping empties and
// duplicates while preserving first-seen order.
func NormalizeAmenities(amenities []string) []string {
	seen := make(map[string]bool, len(amenities))
	normalized := make([]string, 0, len(amenities))
	for _, a := range amenities {
		label := NormalizeAmenity(a)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		normalized = append(normalized, label)
	}
	return normalized
}

// titleCase upper-cases the first letter of each word
func titleCase(s string) string {
	var b strings.Builder
	prevSpace := true
	for _, r := range s {
		if prevSpace {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevSpace = unicode.IsSpace(r)
	}
	return b.String()
}
