package models

// Product is a single catalog record. Products are immutable once loaded;
// ID is the position of the product in the source dataset.
type Product struct {
	ID       int     `json:"id" yaml:"-"`
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Price    float64 `json:"price" yaml:"price"`
	InStock  bool    `json:"inStock" yaml:"inStock"`
}
