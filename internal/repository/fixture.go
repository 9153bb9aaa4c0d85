package repository

import (
	"context"

	"core/internal/model"
)

// FixtureSource serves the built-in hotel collection. It backs the service
// when no database is configured and the test suites.
type FixtureSource struct{}

// NewFixtureSource creates a new fixture source
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

// FetchHotels returns the fixture collection in its defined order
func (s *FixtureSource) FetchHotels(ctx context.Context) ([]model.Hotel, error) {
	hotels := make([]model.Hotel, len(fixtureHotels))
	copy(hotels, fixtureHotels)
	return hotels, nil
}

var fixtureHotels = []model.Hotel{
	{
		ID:   "nyc-plaza",
		Name: "The Plaza Hotel",
		Location: model.Location{
			City:    "New York",
			State:   "New York",
			Country: "USA",
			Address: "768 5th Ave, New York, NY 10019",
		},
		Price:       599,
		Currency:    "USD",
		Rating:      4.8,
		Amenities:   model.JSONArray{"Free WiFi", "Spa", "Fitness Center", "Room Service", "Concierge", "Restaurant", "Bar", "Swimming Pool"},
		Featured:    true,
		Description: "Experience timeless elegance at The Plaza, a landmark luxury hotel that has been the accommodation of choice for world leaders, dignitaries, captains of industry, Broadway legends, and Hollywood royalty.",
	},
	{
		ID:   "london-ritz",
		Name: "The Ritz London",
		Location: model.Location{
			City:    "London",
			Country: "United Kingdom",
			Address: "150 Piccadilly, St. James's, London W1J 9BR",
		},
		Price:       675,
		Currency:    "GBP",
		Rating:      4.9,
		Amenities:   model.JSONArray{"Free WiFi", "Spa", "Fitness Center", "Room Service", "Concierge", "Restaurant", "Bar", "Afternoon Tea"},
		Featured:    true,
		Description: "A byword for luxury and sophistication, The Ritz London is one of the world's most prestigious hotels, offering stunning rooms and world-famous afternoon tea.",
	},
	{
		ID:   "dubai-burj",
		Name: "Burj Al Arab",
		Location: model.Location{
			City:    "Dubai",
			Country: "United Arab Emirates",
			Address: "Jumeirah St, Dubai, United Arab Emirates",
		},
		Price:       1499,
		Currency:    "AED",
		Rating:      4.9,
		Amenities:   model.JSONArray{"Free WiFi", "Spa", "Fitness Center", "Room Service", "Private Beach", "Concierge", "Multiple Restaurants", "Bar", "Swimming Pool"},
		Featured:    true,
		Description: "Iconic sail-shaped silhouette rising from its own island, delivering some of the finest suites and service in the world.",
	},
	{
		ID:   "paris-george",
		Name: "Four Seasons Hotel George V",
		Location: model.Location{
			City:    "Paris",
			Country: "France",
			Address: "31 Avenue George V, 75008 Paris, France",
		},
		Price:       995,
		Currency:    "EUR",
		Rating:      4.8,
		Amenities:   model.JSONArray{"Free WiFi", "Spa", "Fitness Center", "Room Service", "Concierge", "Multiple Restaurants", "Bar", "Swimming Pool"},
		Featured:    true,
		Description: "An art deco landmark just off the Champs-Elysees with flower-filled interiors and three restaurants.",
	},
	{
		ID:   "tokyo-imperial",
		Name: "Imperial Hotel Tokyo",
		Location: model.Location{
			City:    "Tokyo",
			Country: "Japan",
			Address: "1-1-1 Uchisaiwaicho, Chiyoda City, Tokyo 100-8558, Japan",
		},
		Price:       42000,
		Currency:    "JPY",
		Rating:      4.7,
		Amenities:   model.JSONArray{"Free WiFi", "Spa", "Fitness Center", "Room Service", "Concierge", "Multiple Restaurants", "Bar", "Indoor Pool"},
		Description: "A grand hotel with over 130 years of history, facing the Imperial Palace gardens in central Tokyo.",
	},
	{
		ID:   "mumbai-taj",
		Name: "Taj Mahal Palace",
		Location: model.Location{
			City:    "Mumbai",
			State:   "Maharashtra",
			Country: "India",
			Address: "Apollo Bunder, Mumbai, Maharashtra 400001, India",
		},
		Price:       22000,
		Currency:    "INR",
		Rating:      4.9,
		Amenities:   model.JSONArray{"Free WiFi", "Spa", "Fitness Center", "Room Service", "Concierge", "Multiple Restaurants", "Bar", "Swimming Pool"},
		Description: "An architectural marvel overlooking the Gateway of India, hosting maharajas and heads of state since 1903.",
	},
	{
		ID:   "sydney-opera",
		Name: "Park Hyatt Sydney",
		Location: model.Location{
			City:    "Sydney",
			State:   "New South Wales",
			Country: "Australia",
			Address: "7 Hickson Road, The Rocks, Sydney NSW 2000, Australia",
		},
		Price:       950,
		Currency:    "AUD",
		Rating:      4.8,
		Amenities:   model.JSONArray{"Free WiFi", "Spa", "Fitness Center", "Room Service", "Concierge", "Restaurant", "Bar", "Rooftop Pool"},
		Description: "Located between the Sydney Opera House and Harbour Bridge, Park Hyatt Sydney offers a spectacular location and unparalleled luxury in the heart of this vibrant city.",
	},
	{
		ID:   "bali-four",
		Name: "Four Seasons Resort Bali at Sayan",
		Location: model.Location{
			City:    "Ubud",
			Country: "Indonesia",
			Address: "Sayan, Ubud, Bali 80571, Indonesia",
		},
		Price:       775,
		Currency:    "USD",
		Rating:      4.9,
		Amenities:   model.JSONArray{"Free WiFi", "Spa", "Yoga Classes", "Room Service", "Concierge", "Restaurant", "Bar", "Infinity Pool"},
		Description: "A jungle sanctuary above the Ayung River valley, repeatedly named among the best resorts in the world.",
	},
	{
		ID:   "maldives-soneva",
		Name: "Soneva Jani",
		Location: model.Location{
			City:    "Noonu Atoll",
			Country: "Maldives",
			Address: "Medhufaru Island, Noonu Atoll, Maldives",
		},
		Price:       2150,
		Currency:    "USD",
		Rating:      5.0,
		Amenities:   model.JSONArray{"Free WiFi", "Spa", "Water Sports", "Room Service", "Concierge", "Multiple Restaurants", "Bar", "Private Pools"},
		Featured:    true,
		Description: "Overwater villas with retractable roofs for stargazing, set in a turquoise lagoon fringed by uninhabited islands.",
	},
}
