package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source loads the catalog lists from somewhere.
type Source interface {
	Load(ctx context.Context) ([]List, error)
}

//go:embed seed.yaml
var seedCatalog []byte

// Document is the on-disk and on-the-wire catalog layout.
type Document struct {
	Lists []ListRecord `yaml:"lists" json:"lists"`
}

// ListRecord is one serialized list.
type ListRecord struct {
	Name     string   `yaml:"name" json:"name"`
	Products []Record `yaml:"products" json:"products"`
}

// Record is one serialized product. At most one of the category blocks may
// be set and it must match Category.
type Record struct {
	ID        string       `yaml:"id" json:"id"`
	Name      string       `yaml:"name" json:"name"`
	Price     Price        `yaml:"price" json:"price"`
	Image     string       `yaml:"image" json:"image"`
	SpecScore *int         `yaml:"spec_score" json:"specScore"`
	Category  Category     `yaml:"category" json:"category"`
	Mobile    *MobileSpecs `yaml:"mobile,omitempty" json:"mobile,omitempty"`
	Laptop    *LaptopSpecs `yaml:"laptop,omitempty" json:"laptop,omitempty"`
	Tablet    *TabletSpecs `yaml:"tablet,omitempty" json:"tablet,omitempty"`
	TV        *TVSpecs     `yaml:"tv,omitempty" json:"tv,omitempty"`
}

// ErrMissingID is returned for serialized products without an id.
var ErrMissingID = errors.New("product id is required")

// Product converts the record into a validated Product.
func (r Record) Product() (Product, error) {
	p := Product{
		ID:        strings.TrimSpace(r.ID),
		Name:      strings.TrimSpace(r.Name),
		Price:     r.Price,
		Image:     strings.TrimSpace(r.Image),
		SpecScore: r.SpecScore,
		Category:  Category(strings.ToLower(strings.TrimSpace(string(r.Category)))),
	}
	if p.ID == "" {
		return Product{}, ErrMissingID
	}

	var blocks []Details
	if r.Mobile != nil {
		blocks = append(blocks, *r.Mobile)
	}
	if r.Laptop != nil {
		blocks = append(blocks, *r.Laptop)
	}
	if r.Tablet != nil {
		blocks = append(blocks, *r.Tablet)
	}
	if r.TV != nil {
		blocks = append(blocks, *r.TV)
	}
	if len(blocks) > 1 {
		return Product{}, fmt.Errorf("%w: %d detail blocks", ErrDetailsMismatch, len(blocks))
	}
	if len(blocks) == 1 {
		p.Details = blocks[0]
	}

	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Build converts the document into lists, failing on the first invalid
// product.
func (d Document) Build() ([]List, error) {
	lists := make([]List, 0, len(d.Lists))
	for _, lr := range d.Lists {
		name := strings.TrimSpace(lr.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog list without a name")
		}
		list := List{Name: name, Products: make([]Product, 0, len(lr.Products))}
		for i, rec := range lr.Products {
			p, err := rec.Product()
			if err != nil {
				return nil, fmt.Errorf("list %q product %d (%s): %w", name, i, rec.ID, err)
			}
			list.Products = append(list.Products, p)
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// FileSource reads a YAML catalog file. An empty Path loads the built-in
// catalog.
type FileSource struct {
	Path string
}

// Load implements Source.
func (f FileSource) Load(ctx context.Context) ([]List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data := seedCatalog
	if strings.TrimSpace(f.Path) != "" {
		raw, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = raw
	}
	return ParseYAML(data)
}

// ParseYAML decodes a YAML catalog document.
func ParseYAML(data []byte) ([]List, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	lists, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return lists, nil
}

// Default returns the built-in catalog.
func Default() []List {
	lists, err := ParseYAML(seedCatalog)
	if err != nil {
		// The seed is compiled in; a failure here is a build defect.
		panic(err)
	}
	return lists
}

// RecordFor converts a product back into its serialized form.
func RecordFor(p Product) Record {
	r := Record{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		SpecScore: p.SpecScore,
		Category:  p.Category,
	}
	switch d := p.Details.(type) {
	case MobileSpecs:
		r.Mobile = &d
	case LaptopSpecs:
		r.Laptop = &d
	case TabletSpecs:
		r.Tablet = &d
	case TVSpecs:
		r.TV = &d
	}
	return r
}

// DocumentFor builds the serialized layout for lists.
func DocumentFor(lists []List) Document {
	doc := Document{Lists: make([]ListRecord, 0, len(lists))}
	for _, l := range lists {
		lr := ListRecord{Name: l.Name, Products: make([]Record, 0, len(l.Products))}
		for _, p := range l.Products {
			lr.Products = append(lr.Products, RecordFor(p))
		}
		doc.Lists = append(doc.Lists, lr)
	}
	return doc
}

// EncodeYAML renders lists in the catalog file layout. Prices are written
// as bare integers.
func EncodeYAML(lists []List) ([]byte, error) {
	out, err := yaml.Marshal(DocumentFor(lists))
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return out, nil
}

// Save writes lists to the file. The built-in catalog cannot be saved.
func (f FileSource) Save(lists []List) error {
	if strings.TrimSpace(f.Path) == "" {
		return ErrReadOnlyCatalog
	}
	data, err := EncodeYAML(lists)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// ErrReadOnlyCatalog is returned when saving without a catalog file path.
var ErrReadOnlyCatalog = errors.New("built-in catalog is read-only")
