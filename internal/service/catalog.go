package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"core/internal/model"

	"go.uber.org/zap"
)

// CatalogStatus describes the collection's load state
type CatalogStatus string

const (
	CatalogLoading     CatalogStatus = "loading"
	CatalogReady       CatalogStatus = "ready"
	CatalogUnavailable CatalogStatus = "unavailable"
)

// Sentinel errors surfaced to the listing handlers.
var (
	ErrCatalogLoading     = errors.New("hotel catalog is still loading")
	ErrCatalogUnavailable = errors.New("hotel catalog is unavailable")
	ErrHotelNotFound      = errors.New("hotel not found")
)

// HotelSource provides the full hotel collection. Implementations may return
// empty hole records; the catalog discards them on load.
type HotelSource interface {
	FetchHotels(ctx context.Context) ([]model.Hotel, error)
}

// Catalog caches the hotel collection for the lifetime of the process. The
// first load is asynchronous and best-effort: queries arriving before it
// completes see the loading state, and a failed first load leaves the catalog
// unavailable. Once loaded the collection is read-only; a refresh replaces it
// wholesale or, on failure, keeps serving the previous snapshot.
type Catalog struct {
	source HotelSource
	logger *zap.Logger

	mu       sync.RWMutex
	hotels   []model.Hotel
	status   CatalogStatus
	loadedAt time.Time
}

// NewCatalog creates a catalog in the loading state.
func NewCatalog(source HotelSource, logger *zap.Logger) *Catalog {
	return &Catalog{
		source: source,
		logger: logger,
		status: CatalogLoading,
	}
}

// Load fetches the collection from the source and replaces the snapshot.
func (c *Catalog) Load(ctx context.Context) error {
	hotels, err := c.source.FetchHotels(ctx)
	if err != nil {
		c.mu.Lock()
		if c.status != CatalogReady {
			c.status = CatalogUnavailable
		}
		c.mu.Unlock()
		c.logger.Warn("hotel catalog load failed", zap.Error(err))
		return err
	}

	compact := make([]model.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.IsZero() {
			continue
		}
		compact = append(compact, h)
	}

	c.mu.Lock()
	c.hotels = compact
	c.status = CatalogReady
	c.loadedAt = time.Now()
	c.mu.Unlock()

	c.logger.Info("hotel catalog loaded", zap.Int("hotels", len(compact)))
	return nil
}

// Snapshot returns a copy of the collection together with the catalog state.
// The copy is the caller's to reorder.
func (c *Catalog) Snapshot() ([]model.Hotel, CatalogStatus) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hotels := make([]model.Hotel, len(c.hotels))
	copy(hotels, c.hotels)
	return hotels, c.status
}

// Status returns the current load state
func (c *Catalog) Status() CatalogStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Size returns the number of cached hotels
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.hotels)
}
