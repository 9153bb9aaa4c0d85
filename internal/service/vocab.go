package service

// Vocabularies used by the intent parser. These are data, not rules: the
// parser iterates them in order, so list order is output order.

// amenityVocabulary lists the amenity keywords recognized in utterances.
var amenityVocabulary = []string{
	"wifi",
	"pool",
	"spa",
	"gym",
	"restaurant",
	"breakfast",
	"parking",
	"beach",
	"bar",
}

// knownCities supplies a location when an utterance mentions a city without
// an "in ..." phrase ("show me Paris hotels").
var knownCities = []string{
	"new york",
	"london",
	"paris",
	"tokyo",
	"dubai",
	"mumbai",
	"sydney",
	"singapore",
	"rome",
	"barcelona",
	"miami",
	"los angeles",
	"bali",
	"ubud",
	"maldives",
}

// locationStopWords terminate an "in <words>" capture: everything from the
// first stop word onward belongs to another rule ("in paris under $200").
var locationStopWords = map[string]bool{
	"under":   true,
	"below":   true,
	"between": true,
	"less":    true,
	"cheaper": true,
	"than":    true,
	"with":    true,
	"for":     true,
	"and":     true,
	"that":    true,
	"near":    true,
	"around":  true,
	"hotel":   true,
	"hotels":  true,
	"a":       true,
	"the":     true,
}

// browseTerms mark an utterance as a general accommodation request when no
// structured field was extracted.
var browseTerms = []string{
	"hotel",
	"place to stay",
	"accommodation",
	"room",
}
