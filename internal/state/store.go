package state

import (
	"sync"
	"time"

	"github.com/five82/facet/internal/catalog"
)

// Snapshot represents the latest catalog data available to the UI.
type Snapshot struct {
	Filters     []catalog.Filter
	HasCatalog  bool
	Loading     bool
	LastUpdated time.Time
	LastError   error
	Attempts    int // Fetch attempts since the last success
}

// Ready reports whether a catalog is available for editing.
func (s Snapshot) Ready() bool {
	return s.HasCatalog
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin marks a fetch as in flight.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Loading = true
	s.snapshot.Attempts++
}

// Update records the result of a fetch. When err is non-nil the previous
// catalog is kept but the error is recorded for visibility.
func (s *Store) Update(filters []catalog.Filter, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Filters = catalog.Clone(filters)
	s.snapshot.HasCatalog = true
	s.snapshot.LastError = nil
	s.snapshot.Attempts = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Filters = catalog.Clone(s.snapshot.Filters)
	return snap
}
