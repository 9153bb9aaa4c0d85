package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"core/internal/model"
	"core/internal/repository"
	"core/internal/service"
)

func newTestRouter(t *testing.T, load bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	catalog := service.NewCatalog(repository.NewFixtureSource(), logger)
	if load {
		if err := catalog.Load(context.Background()); err != nil {
			t.Fatalf("catalog load: %v", err)
		}
	}

	state := service.NewSearchStateStore()
	chatService := service.NewChatService(catalog, service.NewIntentParser(), service.NewFilterEngine(), service.NewResponseFormatter(3), state, logger)
	searchService := service.NewSearchService(catalog, service.NewFilterEngine(), state, nil, logger)

	chatHandler := NewChatHandler(chatService)
	hotelsHandler := NewHotelsHandler(searchService, "recommended")
	bookingHandler := NewBookingHandler(searchService)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		api.POST("/chat", chatHandler.Chat)
		api.POST("/chat/stream", chatHandler.ChatStream)
		api.GET("/hotels", hotelsHandler.List)
		api.GET("/hotels/:id", hotelsHandler.Get)
		api.POST("/hotels", hotelsHandler.Create)
		api.GET("/amenities", hotelsHandler.Amenities)
		api.GET("/search-state", hotelsHandler.GetSearchState)
		api.PUT("/search-state", hotelsHandler.UpdateSearchState)
		api.POST("/search-state/reset", hotelsHandler.ResetSearchState)
		api.POST("/bookings", bookingHandler.Confirm)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat", model.ChatRequest{
		SessionID: "s1",
		Message:   "Show me hotels in London",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp model.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.SessionID != "s1" {
		t.Errorf("session_id = %q, want s1", resp.SessionID)
	}
	if resp.MatchCount != 1 || len(resp.Results) != 1 {
		t.Errorf("response = %+v, want one London match", resp)
	}
}

func TestChatEndpointGeneratesSession(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat", model.ChatRequest{Message: "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp model.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("a session ID should be generated when none is sent")
	}
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat", map[string]string{"session_id": "s1"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a missing message", w.Code)
	}
}

func TestChatStreamEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat/stream", model.ChatRequest{
		SessionID: "s1",
		Message:   "hotels in London",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("content type = %q, want text/event-stream", ct)
	}

	body := w.Body.String()
	for _, event := range []string{"event: start", "event: typing", "event: intent", "event: results", "event: reply", "event: response", "event: done"} {
		if !strings.Contains(body, event) {
			t.Errorf("stream missing %q:\n%s", event, body)
		}
	}
}

func TestHotelsListEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/api/v1/hotels?location=london&sort=price-low", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp model.HotelListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != 1 || resp.Hotels[0].ID != "london-ritz" {
		t.Errorf("response = %+v, want the single London hotel", resp)
	}
	if resp.Sort != model.SortPriceLow {
		t.Errorf("sort = %q, want price-low", resp.Sort)
	}
}

func TestHotelsListQueryParsing(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/api/v1/hotels?min_price=500&max_price=700&amenities=wifi,spa&rating=4", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp model.HotelListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	for _, h := range resp.Hotels {
		if h.Price < 500 || h.Price > 700 {
			t.Errorf("hotel %q price %v outside requested bounds", h.ID, h.Price)
		}
	}
}

func TestHotelsListWhileLoading(t *testing.T) {
	router := newTestRouter(t, false)

	w := doJSON(t, router, http.MethodGet, "/api/v1/hotels", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 while the catalog loads", w.Code)
	}
}

func TestHotelGetEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/api/v1/hotels/nyc-plaza", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var hotel model.Hotel
	if err := json.Unmarshal(w.Body.Bytes(), &hotel); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if hotel.Name != "The Plaza Hotel" {
		t.Errorf("hotel name = %q, want The Plaza Hotel", hotel.Name)
	}

	if w := doJSON(t, router, http.MethodGet, "/api/v1/hotels/no-such-id", nil); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for an unknown hotel", w.Code)
	}
}

func TestAmenitiesEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/api/v1/amenities", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Amenities []string `json:"amenities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Amenities) == 0 {
		t.Error("expected amenity labels")
	}
}

func TestSearchStateRoundTrip(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/api/v1/search-state?session_id=s1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var state model.SearchState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if state.PriceRange.Max != 5000 || state.Guests.Adults != 1 {
		t.Errorf("default state = %+v", state)
	}

	// A chat query with constraints writes through to the same session.
	doJSON(t, router, http.MethodPost, "/api/v1/chat", model.ChatRequest{
		SessionID: "s1",
		Message:   "Find hotels in Paris under $200",
	})

	w = doJSON(t, router, http.MethodGet, "/api/v1/search-state?session_id=s1", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if state.Location != "paris" {
		t.Errorf("state location = %q, want paris", state.Location)
	}
	if state.PriceRange.Min != 0 || state.PriceRange.Max != 200 {
		t.Errorf("state price range = %+v, want {0 200}", state.PriceRange)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/search-state/reset?session_id=s1", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if state.Location != "" || state.PriceRange.Max != 5000 {
		t.Errorf("state after reset = %+v, want defaults", state)
	}
}

func TestUpdateSearchStateEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	location := "tokyo"
	w := doJSON(t, router, http.MethodPut, "/api/v1/search-state?session_id=s1", model.SearchStateUpdate{
		Location: &location,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var state model.SearchState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if state.Location != "tokyo" {
		t.Errorf("state location = %q, want tokyo", state.Location)
	}
	if state.PriceRange.Max != 5000 {
		t.Errorf("untouched fields should keep defaults, got %+v", state.PriceRange)
	}
}

func TestBookingEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	w := doJSON(t, router, http.MethodPost, "/api/v1/bookings", model.BookingRequest{
		SessionID: "s1",
		HotelID:   "london-ritz",
		CheckIn:   "2026-09-10",
		CheckOut:  "2026-09-14",
		Guests:    model.GuestCount{Adults: 2},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp model.BookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Success || resp.Reference == "" || resp.HotelName != "The Ritz London" {
		t.Errorf("response = %+v", resp)
	}
}

func TestBookingEndpointValidation(t *testing.T) {
	router := newTestRouter(t, true)

	tests := []struct {
		name string
		req  model.BookingRequest
		want int
	}{
		{
			name: "missing hotel id",
			req:  model.BookingRequest{CheckIn: "2026-09-10", CheckOut: "2026-09-14"},
			want: http.StatusBadRequest,
		},
		{
			name: "bad date format",
			req:  model.BookingRequest{HotelID: "london-ritz", CheckIn: "10/09/2026", CheckOut: "14/09/2026"},
			want: http.StatusBadRequest,
		},
		{
			name: "check out before check in",
			req:  model.BookingRequest{HotelID: "london-ritz", CheckIn: "2026-09-14", CheckOut: "2026-09-10"},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown hotel",
			req:  model.BookingRequest{HotelID: "ghost", CheckIn: "2026-09-10", CheckOut: "2026-09-14"},
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doJSON(t, router, http.MethodPost, "/api/v1/bookings", tt.req); w.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
