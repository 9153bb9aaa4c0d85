package service

import (
	"reflect"
	"testing"

	"core/internal/model"
)

func TestSearchStateStore_Defaults(t *testing.T) {
	store := NewSearchStateStore()

	state := store.State("unknown-session")
	want := model.DefaultSearchState()
	if !reflect.DeepEqual(state, want) {
		t.Errorf("State() for a fresh session = %+v, want %+v", state, want)
	}
	if state.Guests.Adults != 1 || state.Guests.Children != 0 {
		t.Errorf("default guests = %+v, want 1 adult 0 children", state.Guests)
	}
	if state.PriceRange.Min != 0 || state.PriceRange.Max != 5000 {
		t.Errorf("default price range = %+v, want {0 5000}", state.PriceRange)
	}
}

func TestSearchStateStore_UpdateMerges(t *testing.T) {
	store := NewSearchStateStore()

	store.Update("s1", model.SearchStateUpdate{
		Location:   strPtr("paris"),
		PriceRange: &model.PriceRange{Min: 0, Max: 200},
	})
	got := store.Update("s1", model.SearchStateUpdate{
		Amenities: []string{"pool"},
	})

	if got.Location != "paris" {
		t.Errorf("location = %q, want paris to survive a later partial update", got.Location)
	}
	if got.PriceRange.Max != 200 {
		t.Errorf("price max = %v, want 200 to survive a later partial update", got.PriceRange.Max)
	}
	if len(got.Amenities) != 1 || got.Amenities[0] != "pool" {
		t.Errorf("amenities = %v, want [pool]", got.Amenities)
	}
}

func TestSearchStateStore_SessionsAreIsolated(t *testing.T) {
	store := NewSearchStateStore()

	store.Update("s1", model.SearchStateUpdate{Location: strPtr("paris")})
	other := store.State("s2")
	if other.Location != "" {
		t.Errorf("session s2 picked up s1's location %q", other.Location)
	}
}

func TestSearchStateStore_Reset(t *testing.T) {
	store := NewSearchStateStore()

	store.Update("s1", model.SearchStateUpdate{Location: strPtr("tokyo"), Rating: intPtr(5)})
	got := store.Reset("s1")

	if !reflect.DeepEqual(got, model.DefaultSearchState()) {
		t.Errorf("Reset() = %+v, want defaults", got)
	}
	if after := store.State("s1"); after.Location != "" || after.Rating != 0 {
		t.Errorf("state after reset = %+v, want defaults", after)
	}
}

func TestStateUpdateFromCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria model.FilterCriteria
		checkFn  func(t *testing.T, u model.SearchStateUpdate)
	}{
		{
			name:     "upper bound only defaults the floor",
			criteria: model.FilterCriteria{PriceMax: floatPtr(200)},
			checkFn: func(t *testing.T, u model.SearchStateUpdate) {
				if u.PriceRange == nil || u.PriceRange.Min != 0 || u.PriceRange.Max != 200 {
					t.Errorf("price range = %+v, want {0 200}", u.PriceRange)
				}
			},
		},
		{
			name:     "lower bound only defaults the ceiling",
			criteria: model.FilterCriteria{PriceMin: floatPtr(300)},
			checkFn: func(t *testing.T, u model.SearchStateUpdate) {
				if u.PriceRange == nil || u.PriceRange.Min != 300 || u.PriceRange.Max != 5000 {
					t.Errorf("price range = %+v, want {300 5000}", u.PriceRange)
				}
			},
		},
		{
			name:     "zero bounds produce no price patch",
			criteria: model.FilterCriteria{PriceMin: floatPtr(0), PriceMax: floatPtr(0)},
			checkFn: func(t *testing.T, u model.SearchStateUpdate) {
				if u.PriceRange != nil {
					t.Errorf("price range = %+v, want nil", u.PriceRange)
				}
			},
		},
		{
			name:     "location and amenities carry over",
			criteria: model.FilterCriteria{Location: strPtr("miami"), Amenities: []string{"pool", "spa"}, Rating: intPtr(4)},
			checkFn: func(t *testing.T, u model.SearchStateUpdate) {
				if u.Location == nil || *u.Location != "miami" {
					t.Errorf("location = %v, want miami", u.Location)
				}
				if len(u.Amenities) != 2 {
					t.Errorf("amenities = %v, want two entries", u.Amenities)
				}
				if u.Rating == nil || *u.Rating != 4 {
					t.Errorf("rating = %v, want 4", u.Rating)
				}
			},
		},
		{
			name:     "empty criteria produce an empty patch",
			criteria: model.FilterCriteria{},
			checkFn: func(t *testing.T, u model.SearchStateUpdate) {
				if !reflect.DeepEqual(u, model.SearchStateUpdate{}) {
					t.Errorf("update = %+v, want zero value", u)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checkFn(t, model.StateUpdateFromCriteria(tt.criteria))
		})
	}
}
