package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// List is a named, ordered group of products ("upcoming", "popular").
type List struct {
	Name     string
	Products []Product
}

// Criteria filters Search results. Nil bounds and an empty keyword match
// everything.
type Criteria struct {
	MinPrice *Price
	MaxPrice *Price
	Keyword  string
}

// Bound is a convenience for building Criteria literals.
func Bound(p Price) *Price {
	return &p
}

// Store errors.
var (
	ErrUnknownList = errors.New("unknown catalog list")
	ErrDuplicateID = errors.New("product id already exists")
)

// Store holds the catalog lists. It is safe for concurrent use; every read
// returns copies.
type Store struct {
	mu    sync.RWMutex
	lists []List
}

// NewStore builds a store over the given lists.
func NewStore(lists []List) *Store {
	s := &Store{}
	s.Replace(lists)
	return s
}

// Replace swaps the whole catalog.
func (s *Store) Replace(lists []List) {
	cloned := cloneLists(lists)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = cloned
}

// Lists returns every list in order.
func (s *Store) Lists() []List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLists(s.lists)
}

// List returns the named list.
func (s *Store) List(name string) (List, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.lists {
		if l.Name == name {
			return List{Name: l.Name, Products: cloneProducts(l.Products)}, true
		}
	}
	return List{}, false
}

// All returns the union of all lists in list order. When an ID appears in
// more than one list the first occurrence wins.
func (s *Store) All() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unionLocked()
}

// Lookup finds a product by ID across all lists.
func (s *Store) Lookup(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.lists {
		for _, p := range l.Products {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Product{}, false
}

// Search returns the products from all lists whose price lies within the
// inclusive bounds and whose name contains the keyword, ignoring case.
// It never returns nil.
func (s *Store) Search(c Criteria) []Product {
	s.mu.RLock()
	all := s.unionLocked()
	s.mu.RUnlock()

	folder := cases.Fold()
	keyword := folder.String(c.Keyword)

	out := make([]Product, 0, len(all))
	for _, p := range all {
		if c.MinPrice != nil && p.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && p.Price > *c.MaxPrice {
			continue
		}
		if keyword != "" && !strings.Contains(folder.String(p.Name), keyword) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Add validates p and appends it to the named list. An empty ID is replaced
// with a generated one. The stored product is returned.
func (s *Store) Add(listName string, p Product) (Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	if err := p.Validate(); err != nil {
		return Product{}, fmt.Errorf("add product: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, l := range s.lists {
		if l.Name == listName {
			idx = i
		}
		for _, existing := range l.Products {
			if existing.ID == p.ID {
				return Product{}, fmt.Errorf("add product %q: %w", p.ID, ErrDuplicateID)
			}
		}
	}
	if idx < 0 {
		return Product{}, fmt.Errorf("add product: %w: %q", ErrUnknownList, listName)
	}
	s.lists[idx].Products = append(cloneProducts(s.lists[idx].Products), p)
	return p, nil
}

// Delete removes the product from every list. It reports whether anything
// was removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for i, l := range s.lists {
		kept := make([]Product, 0, len(l.Products))
		for _, p := range l.Products {
			if p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		s.lists[i].Products = kept
	}
	return removed
}

func (s *Store) unionLocked() []Product {
	seen := make(map[string]struct{})
	var out []Product
	for _, l := range s.lists {
		for _, p := range l.Products {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

func cloneLists(lists []List) []List {
	if len(lists) == 0 {
		return nil
	}
	dup := make([]List, len(lists))
	for i, l := range lists {
		dup[i] = List{Name: l.Name, Products: cloneProducts(l.Products)}
	}
	return dup
}
