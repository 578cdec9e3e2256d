package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies the device family a product belongs to.
type Category string

const (
	CategoryMobile Category = "mobile"
	CategoryLaptop Category = "laptop"
	CategoryTablet Category = "tablet"
	CategoryTV     Category = "tv"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMobile, CategoryLaptop, CategoryTablet, CategoryTV:
		return true
	}
	return false
}

// Label returns the display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryMobile:
		return "Mobile"
	case CategoryLaptop:
		return "Laptop"
	case CategoryTablet:
		return "Tablet"
	case CategoryTV:
		return "TV"
	}
	return "Other"
}

// Details is the category-specific extension of a product. The set of
// implementations is closed: MobileSpecs, LaptopSpecs, TabletSpecs, TVSpecs.
type Details interface {
	Category() Category
	details()
}

// MobileSpecs extends mobile products.
type MobileSpecs struct {
	Network  string `yaml:"network" json:"network"`
	SIM      string `yaml:"sim" json:"sim"`
	Foldable bool   `yaml:"foldable" json:"foldable"`
}

// LaptopSpecs extends laptop products.
type LaptopSpecs struct {
	GPU      string   `yaml:"gpu" json:"gpu"`
	WeightKg float64  `yaml:"weight_kg" json:"weightKg"`
	Ports    []string `yaml:"ports" json:"ports"`
}

// TabletSpecs extends tablet products.
type TabletSpecs struct {
	Stylus   bool `yaml:"stylus" json:"stylus"`
	Cellular bool `yaml:"cellular" json:"cellular"`
}

// TVSpecs extends television products.
type TVSpecs struct {
	ScreenInches  int    `yaml:"screen_inches" json:"screenInches"`
	Panel         string `yaml:"panel" json:"panel"`
	RefreshHz     int    `yaml:"refresh_hz" json:"refreshHz"`
	SmartPlatform string `yaml:"smart_platform" json:"smartPlatform"`
}

func (MobileSpecs) Category() Category { return CategoryMobile }
func (LaptopSpecs) Category() Category { return CategoryLaptop }
func (TabletSpecs) Category() Category { return CategoryTablet }
func (TVSpecs) Category() Category     { return CategoryTV }

func (MobileSpecs) details() {}
func (LaptopSpecs) details() {}
func (TabletSpecs) details() {}
func (TVSpecs) details()     {}

// Product is a comparable catalog entry. Products are treated as immutable
// once they are placed in a list.
type Product struct {
	ID        string
	Name      string
	Price     Price
	Image     string
	SpecScore *int
	Category  Category
	Details   Details
}

// Validation errors.
var (
	ErrMissingName     = errors.New("product name is required")
	ErrScoreOutOfRange = errors.New("spec score must be between 0 and 100")
	ErrUnknownCategory = errors.New("unknown product category")
	ErrDetailsMismatch = errors.New("product details do not match category")
)

// Validate checks required fields and the category/details pairing.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}
	if p.SpecScore != nil && (*p.SpecScore < 0 || *p.SpecScore > 100) {
		return fmt.Errorf("%w: got %d", ErrScoreOutOfRange, *p.SpecScore)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, p.Category)
	}
	if p.Details != nil && p.Details.Category() != p.Category {
		return fmt.Errorf("%w: %s details on %s product", ErrDetailsMismatch, p.Details.Category(), p.Category)
	}
	return nil
}

// HasScore reports whether the product carries a spec score.
func (p Product) HasScore() bool {
	return p.SpecScore != nil
}

// Score returns the spec score pointer. Handy for literals in tests and seeds.
func Score(v int) *int {
	return &v
}

func cloneProducts(items []Product) []Product {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Product, len(items))
	copy(dup, items)
	return dup
}
