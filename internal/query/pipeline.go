// Package query implements the filter, sort and category derivation over a
// loaded product set.
package query

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/HerbHall/shelfview/internal/metrics"
	"github.com/HerbHall/shelfview/pkg/models"
)

// View is the derived result for one set of criteria.
type View struct {
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
}

// Categories returns the distinct categories of products in first-seen order.
func Categories(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for i := range products {
		c := products[i].Category
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Derive filters then sorts products. Categories always come from the
// unfiltered input so a category never vanishes from the options after a
// narrowing filter.
func Derive(products []models.Product, f FilterCriteria, s SortCriteria) View {
	return View{
		Products:   Sort(Filter(products, f), s),
		Categories: Categories(products),
	}
}

// Source provides the full product set.
type Source interface {
	Products() ([]models.Product, error)
}

// Pipeline derives views over a fixed product set. The category list is
// computed once at construction. Results for identical criteria are memoized
// in a bounded LRU. A Pipeline is safe for concurrent use.
type Pipeline struct {
	products   []models.Product
	categories []string
	cache      *lru.Cache[string, []models.Product]
	logger     *zap.Logger
}

// NewPipeline loads products from src. A cacheSize <= 0 disables memoization.
func NewPipeline(src Source, cacheSize int, logger *zap.Logger) (*Pipeline, error) {
	products, err := src.Products()
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	p := &Pipeline{
		products:   products,
		categories: Categories(products),
		logger:     logger,
	}
	if cacheSize > 0 {
		p.cache, err = lru.New[string, []models.Product](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create derive cache: %w", err)
		}
	}

	logger.Info("pipeline ready",
		zap.Int("products", len(products)),
		zap.Int("categories", len(p.categories)),
		zap.Int("cache_size", cacheSize),
	)
	return p, nil
}

// Len returns the size of the unfiltered product set.
func (p *Pipeline) Len() int {
	return len(p.products)
}

// Categories returns a copy of the dataset's category list.
func (p *Pipeline) Categories() []string {
	return slices.Clone(p.categories)
}

// Derive returns the filtered and sorted view for the given criteria.
// The returned slices are owned by the caller.
func (p *Pipeline) Derive(f FilterCriteria, s SortCriteria) View {
	if p.cache == nil {
		metrics.DeriveTotal.WithLabelValues("off").Inc()
		return View{Products: Sort(Filter(p.products, f), s), Categories: p.Categories()}
	}

	key := f.key() + "#" + s.String()
	if cached, ok := p.cache.Get(key); ok {
		metrics.DeriveTotal.WithLabelValues("hit").Inc()
		return View{Products: slices.Clone(cached), Categories: p.Categories()}
	}

	metrics.DeriveTotal.WithLabelValues("miss").Inc()
	products := Sort(Filter(p.products, f), s)
	p.cache.Add(key, products)
	p.logger.Debug("derived view",
		zap.String("key", key),
		zap.Int("count", len(products)),
	)
	return View{Products: slices.Clone(products), Categories: p.Categories()}
}
