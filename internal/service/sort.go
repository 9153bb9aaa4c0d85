package service

import (
	"sort"

	"core/internal/model"
)

// SortHotels reorders a filtered subset in place according to the sort mode.
// recommended is a no-op that preserves the filter engine's output order. All
// sorts are stable: ties keep their relative input order.
func SortHotels(hotels []model.Hotel, mode model.SortMode) {
	switch mode {
	case model.SortPriceLow:
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].Price < hotels[j].Price
		})
	case model.SortPriceHigh:
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].Price > hotels[j].Price
		})
	case model.SortRating:
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].Rating > hotels[j].Rating
		})
	}
}
