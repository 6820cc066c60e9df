// Package catalog holds the in-memory attraction directory. The catalog is
// loaded exactly once at startup from an external JSON source and is
// immutable afterwards; consumers wait for readiness through a one-shot
// channel instead of polling.
package catalog

import (
	"context"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/dmitrijs2005/touristguide/internal/logging"
	"github.com/dmitrijs2005/touristguide/internal/models"
)

// Catalog is the read-only attraction directory.
type Catalog struct {
	mu    sync.RWMutex
	items []models.Attraction

	ready chan struct{}
	once  sync.Once

	log logging.Logger
}

// New creates an empty, not-yet-ready catalog.
func New(log logging.Logger) *Catalog {
	return &Catalog{ready: make(chan struct{}), log: log}
}

// Load fetches and decodes the attraction data from src, then marks the
// catalog ready. A fetch or decode failure leaves the catalog empty and
// not ready; the rest of the application keeps running.
func (c *Catalog) Load(ctx context.Context, src Source) error {
	data, err := src.Fetch(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to load attraction data", "error", err)
		return err
	}

	var items []models.Attraction
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Error(ctx, "failed to decode attraction data", "error", err)
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	c.once.Do(func() { close(c.ready) })
	c.log.Info(ctx, "attraction catalog loaded", "count", len(items))
	return nil
}

// Ready is closed once the catalog has loaded.
func (c *Catalog) Ready() <-chan struct{} {
	return c.ready
}

// WaitReady blocks until the catalog is loaded or ctx expires.
func (c *Catalog) WaitReady(ctx context.Context) error {
	select {
	case <-c.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// All returns every attraction in source order.
func (c *Catalog) All() []models.Attraction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Len reports the number of loaded attractions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// FindByID looks up an attraction by id, comparing normalized strings, so
// FindByID(7) and FindByID("7") name the same record.
func (c *Catalog) FindByID(id any) (models.Attraction, bool) {
	want := models.IDString(id)

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.items {
		if string(a.ID) == want {
			return a, true
		}
	}
	return models.Attraction{}, false
}

// FilterByText returns attractions whose title or city contains query,
// case-insensitively. An empty query matches everything.
func (c *Catalog) FilterByText(query string) []models.Attraction {
	term := strings.ToLower(strings.TrimSpace(query))

	c.mu.RLock()
	defer c.mu.RUnlock()

	if term == "" {
		return c.items
	}
	var out []models.Attraction
	for _, a := range c.items {
		if strings.Contains(strings.ToLower(a.Title), term) ||
			strings.Contains(strings.ToLower(a.City), term) {
			out = append(out, a)
		}
	}
	return out
}
