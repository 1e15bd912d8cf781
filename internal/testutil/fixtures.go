package testutil

import (
	"fmt"

	"github.com/HerbHall/shelfview/pkg/models"
)

// NewProduct returns a Product with sensible defaults, suitable for test
// fixtures. Override individual fields with options.
func NewProduct(opts ...func(*models.Product)) models.Product {
	p := models.Product{
		Name:     "test-product",
		Category: "General",
		Price:    1,
		InStock:  true,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithID sets the product ID.
func WithID(id int) func(*models.Product) {
	return func(p *models.Product) { p.ID = id }
}

// WithName sets the product name.
func WithName(name string) func(*models.Product) {
	return func(p *models.Product) { p.Name = name }
}

// WithCategory sets the product category.
func WithCategory(category string) func(*models.Product) {
	return func(p *models.Product) { p.Category = category }
}

// WithPrice sets the product price.
func WithPrice(price float64) func(*models.Product) {
	return func(p *models.Product) { p.Price = price }
}

// WithInStock sets the in-stock flag.
func WithInStock(inStock bool) func(*models.Product) {
	return func(p *models.Product) { p.InStock = inStock }
}

// Produce returns the three-product dataset used in documentation examples:
// Apple, Banana and Carrot with IDs 0-2.
func Produce() []models.Product {
	return []models.Product{
		NewProduct(WithID(0), WithName("Apple"), WithCategory("Fruit"), WithPrice(10), WithInStock(true)),
		NewProduct(WithID(1), WithName("Banana"), WithCategory("Fruit"), WithPrice(5), WithInStock(false)),
		NewProduct(WithID(2), WithName("Carrot"), WithCategory("Veg"), WithPrice(3), WithInStock(true)),
	}
}

// Numbered returns n products named item0..item{n-1}, cycling through
// categories A, B and C, priced at their index and in stock when even.
func Numbered(n int) []models.Product {
	categories := []string{"A", "B", "C"}
	out := make([]models.Product, n)
	for i := range out {
		out[i] = NewProduct(
			WithID(i),
			WithName(fmt.Sprintf("item%d", i)),
			WithCategory(categories[i%len(categories)]),
			WithPrice(float64(i)),
			WithInStock(i%2 == 0),
		)
	}
	return out
}
