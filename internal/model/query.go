package model

// ChatRequest represents a chat message from the user
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message" binding:"required"`
}

// ChatResponse represents the assistant's reply. Reply is the presentable
// string; Results is the aligned structured list so callers can navigate to a
// hotel without re-parsing the text.
type ChatResponse struct {
	SessionID  string         `json:"session_id"`
	Reply      string         `json:"reply"`
	Intent     *ParsedIntent  `json:"intent,omitempty"`
	Results    []HotelSummary `json:"results,omitempty"`
	MatchCount int            `json:"match_count"`
	Took       int64          `json:"took_ms"`
}

// HotelListRequest represents the listing page's explicit filter controls
type HotelListRequest struct {
	SessionID string         `json:"session_id,omitempty"`
	Criteria  FilterCriteria `json:"criteria"`
	Sort      string         `json:"sort,omitempty"`
}

// HotelListResponse represents a filtered and sorted hotel listing
type HotelListResponse struct {
	Hotels []Hotel  `json:"hotels"`
	Total  int      `json:"total"`
	Sort   SortMode `json:"sort"`
}

// CreateHotelRequest represents a new hotel submission
type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price_per_night" binding:"required"`
	Currency    string   `json:"currency,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	UserID      string   `json:"user_id,omitempty"`
}

// BookingRequest represents a booking confirmation request. Booking is a
// confirmation only: no payment is taken and no inventory is decremented.
type BookingRequest struct {
	SessionID string     `json:"session_id,omitempty"`
	HotelID   string     `json:"hotel_id" binding:"required"`
	CheckIn   string     `json:"check_in,omitempty"`
	CheckOut  string     `json:"check_out,omitempty"`
	Guests    GuestCount `json:"guests"`
}

// BookingResponse represents a booking confirmation
type BookingResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	HotelID   string `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	Message   string `json:"message"`
}
