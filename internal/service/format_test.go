package service

import (
	"strings"
	"testing"

	"core/internal/model"
)

func TestResponseFormatter_MatchesReply(t *testing.T) {
	formatter := NewResponseFormatter(3)

	matches := []model.Hotel{
		{ID: "h1", Name: "Harbour View", Location: model.Location{City: "Sydney", Country: "Australia"}, Price: 180, Rating: 4.2},
		{ID: "h2", Name: "Riverside Lodge", Location: model.Location{City: "London", Country: "UK"}, Price: 320, Rating: 4.8},
		{ID: "h3", Name: "Desert Rose", Location: model.Location{City: "Dubai", Country: "UAE"}, Price: 950, Rating: 5.0},
		{ID: "h4", Name: "Budget Stay", Location: model.Location{City: "London", Country: "UK"}, Price: 75, Rating: 3.4},
		{ID: "h5", Name: "Hill Retreat", Location: model.Location{City: "Ubud", Country: "Indonesia"}, Price: 410, Rating: 4.9},
	}

	reply, summaries := formatter.MatchesReply(len(matches), matches)

	if !strings.HasPrefix(reply, "I found 5 hotels that match your criteria. Here are the top matches:\n\n") {
		t.Errorf("unexpected reply prefix: %q", reply)
	}
	if !strings.HasSuffix(reply, "\n\nWould you like to see more details about any of these hotels or refine your search?") {
		t.Errorf("unexpected reply suffix: %q", reply)
	}

	wantLine := "1. **Harbour View** in Sydney, Australia. Price: $180 per night. Rating: 4.2/5."
	if !strings.Contains(reply, wantLine) {
		t.Errorf("reply missing entry %q in:\n%s", wantLine, reply)
	}
	if strings.Contains(reply, "Budget Stay") || strings.Contains(reply, "Hill Retreat") {
		t.Errorf("reply lists more than the top 3 entries:\n%s", reply)
	}

	if len(summaries) != 3 {
		t.Fatalf("summaries = %d entries, want 3", len(summaries))
	}
	for i, s := range summaries {
		if s.Rank != i+1 {
			t.Errorf("summary %d rank = %d, want %d", i, s.Rank, i+1)
		}
	}
	if summaries[1].ID != "h2" || summaries[1].Name != "Riverside Lodge" {
		t.Errorf("summary 2 = %+v, want h2 Riverside Lodge", summaries[1])
	}
}

func TestResponseFormatter_NumberRendering(t *testing.T) {
	formatter := NewResponseFormatter(1)

	reply, _ := formatter.MatchesReply(1, []model.Hotel{
		{ID: "x", Name: "Round Numbers", Location: model.Location{City: "Paris", Country: "France"}, Price: 599, Rating: 5},
	})

	if !strings.Contains(reply, "Price: $599 per night.") {
		t.Errorf("integral price should render without decimals: %q", reply)
	}
	if !strings.Contains(reply, "Rating: 5/5.") {
		t.Errorf("integral rating should render without decimals: %q", reply)
	}
}

func TestResponseFormatter_FeaturedReply(t *testing.T) {
	formatter := NewResponseFormatter(3)

	featured := []model.Hotel{
		{ID: "f1", Name: "Grand Palace", Location: model.Location{City: "Paris", Country: "France"}, Price: 995, Rating: 4.8},
		{ID: "f2", Name: "Sea Pearl", Location: model.Location{City: "Male", Country: "Maldives"}, Price: 2150, Rating: 5.0},
	}

	reply, summaries := formatter.FeaturedReply(featured)

	if !strings.HasPrefix(reply, "Here are some of our featured hotels you might like:\n\n") {
		t.Errorf("unexpected featured prefix: %q", reply)
	}
	if !strings.HasSuffix(reply, "\n\nYou can also ask for a specific location, price range, or amenity.") {
		t.Errorf("unexpected featured suffix: %q", reply)
	}
	if len(summaries) != 2 {
		t.Errorf("summaries = %d entries, want 2", len(summaries))
	}
}

func TestResponseFormatter_CannedReplies(t *testing.T) {
	formatter := NewResponseFormatter(0)

	tests := []struct {
		intent model.Intent
		want   string
	}{
		{model.IntentGreeting, replyGreeting},
		{model.IntentWellness, replyWellness},
		{model.IntentThanks, replyThanks},
		{model.IntentHelp, replyHelp},
		{model.IntentSearch, replyUnsure},
	}
	for _, tt := range tests {
		if got := formatter.CannedReply(tt.intent); got != tt.want {
			t.Errorf("CannedReply(%q) = %q, want %q", tt.intent, got, tt.want)
		}
	}

	if formatter.NoMatchesReply() != replyNoMatches {
		t.Error("NoMatchesReply mismatch")
	}
	if formatter.LoadingReply() != replyLoading {
		t.Error("LoadingReply mismatch")
	}
	if formatter.UnavailableReply() != replyUnavailable {
		t.Error("UnavailableReply mismatch")
	}
}

func TestResponseFormatter_TopNDefault(t *testing.T) {
	formatter := NewResponseFormatter(-1)
	if formatter.topN != defaultTopMatches {
		t.Errorf("topN = %d, want default %d", formatter.topN, defaultTopMatches)
	}

	wide := NewResponseFormatter(10)
	hotels := make([]model.Hotel, 4)
	for i := range hotels {
		hotels[i] = model.Hotel{ID: "h", Name: "N", Location: model.Location{City: "C", Country: "X"}}
	}
	_, summaries := wide.MatchesReply(4, hotels)
	if len(summaries) != 4 {
		t.Errorf("a wider formatter should list all 4 entries, got %d", len(summaries))
	}
}
