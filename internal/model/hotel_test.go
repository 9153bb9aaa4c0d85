package model

import "testing"

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantCity    string
		wantCountry string
	}{
		{name: "city and country", raw: "New York, USA", wantCity: "New York", wantCountry: "USA"},
		{name: "extra segments stay in country", raw: "Ubud, Bali, Indonesia", wantCity: "Ubud", wantCountry: "Bali, Indonesia"},
		{name: "no comma is country only", raw: "Maldives", wantCity: "", wantCountry: "Maldives"},
		{name: "whitespace trimmed", raw: "  Paris ,  France ", wantCity: "Paris", wantCountry: "France"},
		{name: "empty input", raw: "", wantCity: "", wantCountry: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLocation(tt.raw)
			if got.City != tt.wantCity || got.Country != tt.wantCountry {
				t.Errorf("ParseLocation(%q) = %q / %q, want %q / %q",
					tt.raw, got.City, got.Country, tt.wantCity, tt.wantCountry)
			}
		})
	}
}

func TestHotelIsZero(t *testing.T) {
	if !(Hotel{}).IsZero() {
		t.Error("empty hotel should be a zero record")
	}
	if (Hotel{ID: "x"}).IsZero() {
		t.Error("hotel with an ID is not a zero record")
	}
	if (Hotel{Name: "x"}).IsZero() {
		t.Error("hotel with a name is not a zero record")
	}
}

func TestJSONArrayScan(t *testing.T) {
	var a JSONArray
	if err := a.Scan([]byte(`["Free WiFi","Bar"]`)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(a) != 2 || a[0] != "Free WiFi" || a[1] != "Bar" {
		t.Errorf("scanned = %v, want [Free WiFi Bar]", a)
	}

	var empty JSONArray
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Scan(nil) = %v, want empty", empty)
	}
}

func TestNormalizeSortMode(t *testing.T) {
	tests := []struct {
		input string
		want  SortMode
	}{
		{"price-low", SortPriceLow},
		{"price-high", SortPriceHigh},
		{"rating", SortRating},
		{"recommended", SortRecommended},
		{"", SortRecommended},
		{"bogus", SortRecommended},
	}
	for _, tt := range tests {
		if got := NormalizeSortMode(tt.input); got != tt.want {
			t.Errorf("NormalizeSortMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
