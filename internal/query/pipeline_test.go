package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HerbHall/shelfview/pkg/models"
)

type sliceSource []models.Product

func (s sliceSource) Products() ([]models.Product, error) {
	out := make([]models.Product, len(s))
	copy(out, s)
	return out, nil
}

type failingSource struct{}

func (failingSource) Products() ([]models.Product, error) {
	return nil, errors.New("boom")
}

func TestDerive_Example(t *testing.T) {
	v := Derive(produce(),
		FilterCriteria{Category: Ptr("Fruit")},
		SortCriteria{Column: FieldPrice, Order: Ascending},
	)

	assert.Equal(t, []string{"Banana", "Apple"}, names(v.Products))
	assert.Equal(t, []string{"Fruit", "Veg"}, v.Categories)
}

func TestDerive_CategoriesIgnoreFilter(t *testing.T) {
	all := Derive(produce(), FilterCriteria{}, SortCriteria{}).Categories

	for _, f := range []FilterCriteria{
		{Category: Ptr("Veg")},
		{SearchText: Ptr("zzz")},
		{InStock: Ptr(false), PriceRange: PriceRange{Min: 1, Max: 2}},
	} {
		assert.Equal(t, all, Derive(produce(), f, SortCriteria{}).Categories)
	}
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	products := []models.Product{
		{Category: "Veg"}, {Category: "Fruit"}, {Category: "Veg"}, {Category: "Dairy"},
	}
	assert.Equal(t, []string{"Veg", "Fruit", "Dairy"}, Categories(products))
	assert.Empty(t, Categories(nil))
}

func TestPipeline_Derive(t *testing.T) {
	for _, size := range []int{0, 8} {
		p, err := NewPipeline(sliceSource(produce()), size, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 3, p.Len())

		f := FilterCriteria{Category: Ptr("Fruit")}
		s := SortCriteria{Column: FieldPrice, Order: Ascending}

		first := p.Derive(f, s)
		second := p.Derive(f, s)
		assert.Equal(t, first, second, "cache size %d", size)
		assert.Equal(t, Derive(produce(), f, s), first)
	}
}

func TestPipeline_ResultsAreCallerOwned(t *testing.T) {
	p, err := NewPipeline(sliceSource(produce()), 4, zap.NewNop())
	require.NoError(t, err)

	v := p.Derive(FilterCriteria{}, SortCriteria{})
	v.Products[0].Name = "mutated"
	v.Categories[0] = "mutated"

	again := p.Derive(FilterCriteria{}, SortCriteria{})
	assert.Equal(t, "Apple", again.Products[0].Name)
	assert.Equal(t, []string{"Fruit", "Veg"}, again.Categories)
	assert.Equal(t, []string{"Fruit", "Veg"}, p.Categories())
}

func TestPipeline_DistinctCriteriaAreNotConflated(t *testing.T) {
	p, err := NewPipeline(sliceSource(produce()), 4, zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, p.Derive(FilterCriteria{InStock: Ptr(true)}, SortCriteria{}).Products, 2)
	assert.Len(t, p.Derive(FilterCriteria{InStock: Ptr(false)}, SortCriteria{}).Products, 1)
	assert.Len(t, p.Derive(FilterCriteria{}, SortCriteria{}).Products, 3)
}

func TestNewPipeline_SourceError(t *testing.T) {
	_, err := NewPipeline(failingSource{}, 0, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
