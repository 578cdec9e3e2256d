package compare

import (
	"errors"
	"sync"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/five82/devicedeck/internal/catalog"
)

// ErrCapacityExceeded is returned when an add would grow the set past Capacity.
var ErrCapacityExceeded = errors.New("compare list is full")

// Outcome describes what a mutation did to the set.
type Outcome int

const (
	OutcomeAdded     Outcome = iota // appended to the end
	OutcomeDuplicate                // already a member, set unchanged
	OutcomeRejected                 // set full, set unchanged
	OutcomeRemoved                  // removed by Toggle
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeRejected:
		return "rejected"
	case OutcomeRemoved:
		return "removed"
	}
	return "unknown"
}

const topicChanged = "compare:changed"

// Manager owns the compare set. All mutation goes through Add, Remove, Toggle
// and Clear; readers take snapshots.
type Manager struct {
	mu      sync.RWMutex
	items   []catalog.Product
	version uint64

	// pubMu serializes delivery; published is the last version delivered.
	pubMu     sync.Mutex
	published uint64

	bus    EventBus.Bus
	logger *zap.Logger
}

// NewManager returns an empty manager. A nil logger discards log output.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		bus:    EventBus.New(),
		logger: logger.Named("compare"),
	}
}

// Subscribe registers fn to receive the new set after every change. fn runs
// synchronously on the mutating goroutine before the mutation returns.
// Delivered versions strictly increase: when mutations race, a snapshot
// older than one already delivered is dropped. fn may call Snapshot but
// must not mutate the manager.
func (m *Manager) Subscribe(fn func(Set)) error {
	return m.bus.Subscribe(topicChanged, fn)
}

// Snapshot returns a copy of the current set.
func (m *Manager) Snapshot() Set {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Set{Items: cloneItems(m.items), Version: m.version}
}

// Add appends p unless it is already a member or the set is full.
func (m *Manager) Add(p catalog.Product) (Outcome, error) {
	m.mu.Lock()
	outcome, err := m.addLocked(p)
	snap, changed := m.commitLocked(outcome == OutcomeAdded)
	m.mu.Unlock()

	m.logAdd(p, outcome, snap)
	if changed {
		m.publish(snap)
	}
	return outcome, err
}

// Toggle removes p when it is a member and adds it otherwise.
func (m *Manager) Toggle(p catalog.Product) (Outcome, error) {
	m.mu.Lock()
	var (
		outcome Outcome
		err     error
	)
	if idx := indexOf(m.items, p.ID); idx >= 0 {
		m.items = removeAt(m.items, idx)
		outcome = OutcomeRemoved
	} else {
		outcome, err = m.addLocked(p)
	}
	snap, changed := m.commitLocked(outcome == OutcomeAdded || outcome == OutcomeRemoved)
	m.mu.Unlock()

	if outcome == OutcomeRemoved {
		m.logger.Debug("removed from compare", zap.String("id", p.ID), zap.Int("size", snap.Len()))
	} else {
		m.logAdd(p, outcome, snap)
	}
	if changed {
		m.publish(snap)
	}
	return outcome, err
}

// Remove drops id from the set. Unknown IDs are ignored; the result reports
// whether anything was removed.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	idx := indexOf(m.items, id)
	if idx >= 0 {
		m.items = removeAt(m.items, idx)
	}
	snap, changed := m.commitLocked(idx >= 0)
	m.mu.Unlock()

	if !changed {
		return false
	}
	m.logger.Debug("removed from compare", zap.String("id", id), zap.Int("size", snap.Len()))
	m.publish(snap)
	return true
}

// Clear empties the set. Clearing an empty set does nothing.
func (m *Manager) Clear() {
	m.mu.Lock()
	had := len(m.items)
	m.items = nil
	snap, changed := m.commitLocked(had > 0)
	m.mu.Unlock()

	if !changed {
		return
	}
	m.logger.Debug("cleared compare list", zap.Int("removed", had))
	m.publish(snap)
}

// publish delivers snap unless a newer set has already gone out.
func (m *Manager) publish(snap Set) {
	m.pubMu.Lock()
	defer m.pubMu.Unlock()
	if snap.Version <= m.published {
		return
	}
	m.published = snap.Version
	m.bus.Publish(topicChanged, snap)
}

func (m *Manager) addLocked(p catalog.Product) (Outcome, error) {
	if indexOf(m.items, p.ID) >= 0 {
		return OutcomeDuplicate, nil
	}
	if len(m.items) >= Capacity {
		return OutcomeRejected, ErrCapacityExceeded
	}
	m.items = append(cloneItems(m.items), p)
	return OutcomeAdded, nil
}

// commitLocked bumps the version when the set changed and returns the
// snapshot to publish.
func (m *Manager) commitLocked(changed bool) (Set, bool) {
	if changed {
		m.version++
	}
	return Set{Items: cloneItems(m.items), Version: m.version}, changed
}

func (m *Manager) logAdd(p catalog.Product, outcome Outcome, snap Set) {
	switch outcome {
	case OutcomeAdded:
		m.logger.Debug("added to compare", zap.String("id", p.ID), zap.Int("size", snap.Len()))
	case OutcomeDuplicate:
		m.logger.Debug("already in compare", zap.String("id", p.ID))
	case OutcomeRejected:
		m.logger.Info("compare list full", zap.String("id", p.ID), zap.Strings("members", snap.IDs()))
	}
}

func removeAt(items []catalog.Product, idx int) []catalog.Product {
	out := make([]catalog.Product, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}
