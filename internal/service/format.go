package service

import (
	"fmt"
	"strconv"
	"strings"

	"core/internal/model"
)

const defaultTopMatches = 3

// Canned conversational replies and fallback messages.
const (
	replyGreeting = "Hello! I'm your hotel assistant. How can I help you today? You can ask me about hotels, destinations, or travel recommendations."
	replyWellness = "I'm doing well, thanks for asking! I'm ready to help you find the perfect hotel. What are you looking for?"
	replyThanks   = "You're welcome! Is there anything else I can help you with?"
	replyHelp     = "I can help you find hotels based on location, price range, or amenities. Try asking something like 'Find hotels in New York under $200' or 'Show me hotels with a pool in Miami'."

	replyNoMatches = "I couldn't find any hotels matching your criteria. Try asking about different locations, price ranges, or amenities. For example, 'Show me hotels in Barcelona' or 'Find hotels under $150'."
	replyUnsure    = "I'm not sure what you're looking for. Try asking about specific locations, price ranges, or amenities. For example, 'Show me hotels in New York' or 'Find hotels with a pool under $200'."

	replyLoading     = "I'm still loading hotel information. Please try again in a moment."
	replyUnavailable = "I'm having trouble accessing hotel information right now. Please try again later."
)

// ResponseFormatter turns a filtered and ranked subset into a bounded,
// presentable chat reply. Alongside the string it returns the structured
// entry list, each entry carrying the hotel ID, so that selecting a listed
// hotel never requires re-parsing the formatted text.
type ResponseFormatter struct {
	topN int
}

// NewResponseFormatter creates a formatter listing at most topN results.
func NewResponseFormatter(topN int) *ResponseFormatter {
	if topN <= 0 {
		topN = defaultTopMatches
	}
	return &ResponseFormatter{topN: topN}
}

// CannedReply returns the fixed reply for a conversational intent.
func (f *ResponseFormatter) CannedReply(intent model.Intent) string {
	switch intent {
	case model.IntentGreeting:
		return replyGreeting
	case model.IntentWellness:
		return replyWellness
	case model.IntentThanks:
		return replyThanks
	case model.IntentHelp:
		return replyHelp
	}
	return replyUnsure
}

// MatchesReply renders the count statement, the enumerated top matches, and
// the refinement prompt. total is the full match count; at most topN hotels
// are listed.
func (f *ResponseFormatter) MatchesReply(total int, matches []model.Hotel) (string, []model.HotelSummary) {
	top, summaries := f.summarize(matches)

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d hotels that match your criteria. Here are the top matches:\n\n", total)
	b.WriteString(strings.Join(top, "\n\n"))
	b.WriteString("\n\nWould you like to see more details about any of these hotels or refine your search?")
	return b.String(), summaries
}

// FeaturedReply renders the general-browse fallback listing.
func (f *ResponseFormatter) FeaturedReply(featured []model.Hotel) (string, []model.HotelSummary) {
	top, summaries := f.summarize(featured)

	var b strings.Builder
	b.WriteString("Here are some of our featured hotels you might like:\n\n")
	b.WriteString(strings.Join(top, "\n\n"))
	b.WriteString("\n\nYou can also ask for a specific location, price range, or amenity.")
	return b.String(), summaries
}

// NoMatchesReply is the "no exact matches" suggestion for a constrained query
// with an empty result.
func (f *ResponseFormatter) NoMatchesReply() string { return replyNoMatches }

// UnsureReply is the fallback for an utterance with no constraints and no
// accommodation terms.
func (f *ResponseFormatter) UnsureReply() string { return replyUnsure }

// LoadingReply gates queries that arrive before the first collection load.
func (f *ResponseFormatter) LoadingReply() string { return replyLoading }

// UnavailableReply is the apology shown when the collection failed to load.
func (f *ResponseFormatter) UnavailableReply() string { return replyUnavailable }

// summarize renders at most topN entries in the numbered-bold-name format
// consumed by the chat surface.
func (f *ResponseFormatter) summarize(hotels []model.Hotel) ([]string, []model.HotelSummary) {
	n := len(hotels)
	if n > f.topN {
		n = f.topN
	}
	lines := make([]string, 0, n)
	summaries := make([]model.HotelSummary, 0, n)
	for i, hotel := range hotels[:n] {
		lines = append(lines, fmt.Sprintf("%d. **%s** in %s, %s. Price: $%s per night. Rating: %s/5.",
			i+1,
			hotel.Name,
			hotel.Location.City,
			hotel.Location.Country,
			formatNumber(hotel.Price),
			formatNumber(hotel.Rating),
		))
		summaries = append(summaries, model.HotelSummary{
			Rank:    i + 1,
			ID:      hotel.ID,
			Name:    hotel.Name,
			City:    hotel.Location.City,
			Country: hotel.Location.Country,
			Price:   hotel.Price,
			Rating:  hotel.Rating,
		})
	}
	return lines, summaries
}

// formatNumber prints a numeric value without trailing zeros: 599 -> "599",
// 4.8 -> "4.8".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
