package compare

import "github.com/five82/devicedeck/internal/catalog"

const (
	// Capacity is the maximum number of products in a compare set.
	Capacity = 4

	// MinComparable is the smallest set size that enables the compare action.
	MinComparable = 2
)

// Stage names the cardinality band of a set.
type Stage int

const (
	StageEmpty        Stage = iota // no products
	StageInsufficient              // one product, nothing to compare against
	StageComparable                // two or three products
	StageFull                      // four products, adds are rejected
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageInsufficient:
		return "insufficient"
	case StageComparable:
		return "comparable"
	case StageFull:
		return "full"
	}
	return "unknown"
}

// Set is an immutable view of the compare list at a point in time.
type Set struct {
	Items   []catalog.Product
	Version uint64
}

// Len returns the number of products in the set.
func (s Set) Len() int {
	return len(s.Items)
}

// Contains reports whether id is a member.
func (s Set) Contains(id string) bool {
	return indexOf(s.Items, id) >= 0
}

// IDs returns member IDs in insertion order.
func (s Set) IDs() []string {
	out := make([]string, 0, len(s.Items))
	for _, p := range s.Items {
		out = append(out, p.ID)
	}
	return out
}

// CanCompare reports whether the compare action is enabled.
func (s Set) CanCompare() bool {
	return s.Len() >= MinComparable
}

// IsFull reports whether adds will be rejected.
func (s Set) IsFull() bool {
	return s.Len() >= Capacity
}

// Stage returns the cardinality band.
func (s Set) Stage() Stage {
	switch n := s.Len(); {
	case n == 0:
		return StageEmpty
	case n >= Capacity:
		return StageFull
	case n >= MinComparable:
		return StageComparable
	default:
		return StageInsufficient
	}
}

func indexOf(items []catalog.Product, id string) int {
	for i, p := range items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []catalog.Product) []catalog.Product {
	if len(items) == 0 {
		return nil
	}
	dup := make([]catalog.Product, len(items))
	copy(dup, items)
	return dup
}
