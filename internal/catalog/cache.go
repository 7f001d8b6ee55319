package catalog

import (
	"context"
	"sync"
	"time"
)

// DefaultStaleTime is how long a fetched catalog is served from memory.
const DefaultStaleTime = 5 * time.Minute

// Cached serves a fetched catalog until it goes stale. Failed fetches are
// not cached.
type Cached struct {
	src   Fetcher
	stale time.Duration
	now   func() time.Time

	mu      sync.Mutex
	filters []Filter
	fetched time.Time
	valid   bool
}

var _ Fetcher = (*Cached)(nil)

// NewCached wraps src. A non-positive stale uses DefaultStaleTime.
func NewCached(src Fetcher, stale time.Duration) *Cached {
	if stale <= 0 {
		stale = DefaultStaleTime
	}
	return &Cached{src: src, stale: stale, now: time.Now}
}

// Fetch returns the cached catalog while fresh, otherwise asks the source.
func (c *Cached) Fetch(ctx context.Context) ([]Filter, error) {
	c.mu.Lock()
	if c.valid && c.now().Sub(c.fetched) < c.stale {
		out := Clone(c.filters)
		c.mu.Unlock()
		return out, nil
	}
	c.mu.Unlock()

	filters, err := c.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.filters = Clone(filters)
	c.fetched = c.now()
	c.valid = true
	c.mu.Unlock()
	return filters, nil
}

// Invalidate forces the next Fetch to reach the source.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.filters = nil
}
