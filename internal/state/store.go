package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/devicedeck/internal/catalog"
)

// Snapshot describes the most recent catalog load as seen by the UI.
type Snapshot struct {
	Source              string
	Lists               int
	Products            int
	Loaded              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive reload failures
}

// IsStale returns true when the catalog source has failed repeatedly and the
// lists on screen may be out of date.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the sync snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store labelled with the catalog source description.
func NewStore(source string) *Store {
	return &Store{snapshot: Snapshot{Source: source}}
}

// Update records the outcome of a catalog load. When err is non-nil the
// previous counts are kept but the error is recorded for visibility.
func (s *Store) Update(lists []catalog.List, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	products := 0
	for _, l := range lists {
		products += len(l.Products)
	}
	s.snapshot.Lists = len(lists)
	s.snapshot.Products = products
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
