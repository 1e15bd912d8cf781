// Package catalog loads the product dataset. A Catalog is loaded once and
// never mutated; every accessor hands out a copy.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/HerbHall/shelfview/pkg/models"
)

//go:embed products.yaml
var productsRawData []byte

// catalogFile is the top-level structure of a YAML dataset.
type catalogFile struct {
	Products []models.Product `yaml:"products"`
}

// Catalog provides lazy-loaded access to a product dataset.
type Catalog struct {
	once     sync.Once
	source   func() ([]models.Product, error)
	products []models.Product
	err      error
}

// NewCatalog creates a Catalog backed by the embedded demo dataset. The YAML
// is parsed on first access.
func NewCatalog() *Catalog {
	return &Catalog{source: func() ([]models.Product, error) {
		return parseYAML(productsRawData)
	}}
}

// LoadYAMLFile reads and parses a YAML dataset from path.
func LoadYAMLFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}
	products, err := parseYAML(data)
	if err != nil {
		return nil, err
	}
	return FromProducts(products)
}

// ProductReader lists persisted products in their stored order.
type ProductReader interface {
	LoadProducts(ctx context.Context) ([]models.Product, error)
}

// LoadSQLite builds a Catalog from the products table behind r.
func LoadSQLite(ctx context.Context, r ProductReader) (*Catalog, error) {
	products, err := r.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: load products: %w", err)
	}
	return FromProducts(products)
}

// FromProducts builds a Catalog from already-parsed products. IDs are
// reassigned from slice position so they are stable and unique.
func FromProducts(products []models.Product) (*Catalog, error) {
	normalized, err := normalize(products)
	if err != nil {
		return nil, err
	}
	c := &Catalog{products: normalized}
	c.once.Do(func() {})
	return c, nil
}

// Products returns a copy of all products in load order.
func (c *Catalog) Products() ([]models.Product, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	cp := make([]models.Product, len(c.products))
	copy(cp, c.products)
	return cp, nil
}

// Len returns the number of products, or 0 if loading failed.
func (c *Catalog) Len() int {
	c.once.Do(c.load)
	return len(c.products)
}

// load runs the configured source once.
func (c *Catalog) load() {
	if c.source == nil {
		c.err = errors.New("catalog: no data source")
		return
	}
	products, err := c.source()
	if err != nil {
		c.err = err
		return
	}
	c.products, c.err = normalize(products)
}

func parseYAML(data []byte) ([]models.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	return f.Products, nil
}

// normalize validates products and assigns sequence IDs.
func normalize(products []models.Product) ([]models.Product, error) {
	out := make([]models.Product, len(products))
	for i := range products {
		p := products[i]
		p.ID = i
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("catalog: product %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

func validate(p models.Product) error {
	switch {
	case p.Name == "":
		return errors.New("missing name")
	case p.Category == "":
		return errors.New("missing category")
	case p.Price < 0:
		return fmt.Errorf("negative price %v", p.Price)
	}
	return nil
}
