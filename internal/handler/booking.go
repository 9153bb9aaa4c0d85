package handler

import (
	"errors"
	"net/http"
	"time"

	"core/internal/model"
	"core/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking-confirmation HTTP requests
type BookingHandler struct {
	searchService *service.SearchService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(searchService *service.SearchService) *BookingHandler {
	return &BookingHandler{searchService: searchService}
}

// Confirm handles POST /api/v1/bookings. Booking is a confirmation only:
// there is no payment step and no inventory change.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.CheckIn != "" && req.CheckOut != "" {
		in, errIn := time.Parse("2006-01-02", req.CheckIn)
		out, errOut := time.Parse("2006-01-02", req.CheckOut)
		if errIn != nil || errOut != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be in YYYY-MM-DD format"})
			return
		}
		if !out.After(in) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be after check_in"})
			return
		}
	}

	resp, err := h.searchService.ConfirmBooking(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
