package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"core/internal/model"
	"core/internal/service"

	"github.com/gin-gonic/gin"
)

// HotelsHandler handles hotel listing and search-state HTTP requests
type HotelsHandler struct {
	searchService *service.SearchService
	defaultSort   string
}

// NewHotelsHandler creates a new hotels handler
func NewHotelsHandler(searchService *service.SearchService, defaultSort string) *HotelsHandler {
	return &HotelsHandler{
		searchService: searchService,
		defaultSort:   defaultSort,
	}
}

// List handles GET /api/v1/hotels
//
// Query parameters mirror the listing page's explicit filter controls:
// location, min_price, max_price, amenities (comma-separated), rating, sort,
// session_id.
func (h *HotelsHandler) List(c *gin.Context) {
	criteria := criteriaFromQuery(c)
	mode := model.NormalizeSortMode(c.DefaultQuery("sort", h.defaultSort))

	resp, err := h.searchService.ListHotels(c.Request.Context(), criteria, mode, c.Query("session_id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/hotels/:id
func (h *HotelsHandler) Get(c *gin.Context) {
	hotel, err := h.searchService.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// Create handles POST /api/v1/hotels
func (h *HotelsHandler) Create(c *gin.Context) {
	var req model.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	hotel, err := h.searchService.CreateHotel(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hotel: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, hotel)
}

// Amenities handles GET /api/v1/amenities
func (h *HotelsHandler) Amenities(c *gin.Context) {
	labels, err := h.searchService.AllAmenities(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amenities": labels})
}

// GetSearchState handles GET /api/v1/search-state
func (h *HotelsHandler) GetSearchState(c *gin.Context) {
	c.JSON(http.StatusOK, h.searchService.SearchState(c.Query("session_id")))
}

// UpdateSearchState handles PUT /api/v1/search-state
func (h *HotelsHandler) UpdateSearchState(c *gin.Context) {
	var update model.SearchStateUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.searchService.UpdateSearchState(c.Query("session_id"), update))
}

// ResetSearchState handles POST /api/v1/search-state/reset
func (h *HotelsHandler) ResetSearchState(c *gin.Context) {
	c.JSON(http.StatusOK, h.searchService.ResetSearchState(c.Query("session_id")))
}

// criteriaFromQuery builds FilterCriteria from the listing page's query
// parameters. Absent or zero parameters impose no constraint.
func criteriaFromQuery(c *gin.Context) model.FilterCriteria {
	criteria := model.FilterCriteria{}

	if location := strings.TrimSpace(c.Query("location")); location != "" {
		criteria.Location = &location
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil && v > 0 {
		criteria.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil && v > 0 {
		criteria.PriceMax = &v
	}
	if raw := c.Query("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				criteria.Amenities = append(criteria.Amenities, a)
			}
		}
	}
	if v, err := strconv.Atoi(c.Query("rating")); err == nil && v > 0 {
		criteria.Rating = &v
	}

	return criteria
}

// respondCatalogError maps catalog load states to HTTP responses
func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCatalogLoading):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Hotel catalog is still loading, try again shortly"})
	case errors.Is(err, service.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Hotel catalog is unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
