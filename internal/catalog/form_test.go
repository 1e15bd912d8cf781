package catalog

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/shelfview/internal/query"
)

func TestParseFilterForm(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want query.FilterCriteria
	}{
		{
			name: "all unset",
			form: url.Values{"searchText": {""}, "category": {"-1"}, "minPrice": {""}, "maxPrice": {""}, "inStock": {"-1"}},
			want: query.FilterCriteria{},
		},
		{
			name: "all set",
			form: url.Values{"searchText": {"ap"}, "category": {"Fruit"}, "minPrice": {"1"}, "maxPrice": {"20"}, "inStock": {"true"}},
			want: query.FilterCriteria{
				SearchText: query.Ptr("ap"),
				Category:   query.Ptr("Fruit"),
				PriceRange: query.PriceRange{Min: 1, Max: 20},
				InStock:    query.Ptr(true),
			},
		},
		{
			name: "out of stock",
			form: url.Values{"inStock": {"false"}},
			want: query.FilterCriteria{InStock: query.Ptr(false)},
		},
		{
			name: "missing fields",
			form: url.Values{},
			want: query.FilterCriteria{},
		},
		{
			name: "unparsable min becomes zero",
			form: url.Values{"minPrice": {"cheap"}, "maxPrice": {"5"}},
			want: query.FilterCriteria{PriceRange: query.PriceRange{Min: 0, Max: 5}},
		},
		{
			name: "unparsable max drops range",
			form: url.Values{"minPrice": {"5"}, "maxPrice": {"lots"}},
			want: query.FilterCriteria{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilterForm(tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFilterForm_MinAboveMax(t *testing.T) {
	_, err := ParseFilterForm(url.Values{"minPrice": {"9"}, "maxPrice": {"3"}})
	assert.ErrorIs(t, err, query.ErrInvalidPriceRange)

	// An empty maximum is 0 and still compared.
	_, err = ParseFilterForm(url.Values{"minPrice": {"9"}, "maxPrice": {""}})
	assert.ErrorIs(t, err, query.ErrInvalidPriceRange)
}

func TestParseListQuery(t *testing.T) {
	q := url.Values{
		"q":         {"ap"},
		"category":  {"Fruit"},
		"min_price": {"1.5"},
		"max_price": {"20"},
		"in_stock":  {"true"},
		"sort":      {"price"},
		"order":     {"desc"},
		"page":      {"2"},
		"page_size": {"20"},
	}
	req, err := ParseListQuery(q)
	require.NoError(t, err)

	assert.Equal(t, "ap", *req.Filter.SearchText)
	assert.Equal(t, "Fruit", *req.Filter.Category)
	assert.True(t, *req.Filter.InStock)
	assert.Equal(t, query.PriceRange{Min: 1.5, Max: 20}, req.Filter.PriceRange)
	assert.Equal(t, query.SortCriteria{Column: query.FieldPrice, Order: query.Descending}, req.Sort)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 20, req.PageSize)
}

func TestParseListQuery_SortDefaultsAscending(t *testing.T) {
	req, err := ParseListQuery(url.Values{"sort": {"name"}})
	require.NoError(t, err)
	assert.Equal(t, query.SortCriteria{Column: query.FieldName, Order: query.Ascending}, req.Sort)
}

func TestParseListQuery_Empty(t *testing.T) {
	req, err := ParseListQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, Request{}, req)
}

func TestParseListQuery_Malformed(t *testing.T) {
	for _, q := range []url.Values{
		{"in_stock": {"maybe"}},
		{"min_price": {"abc"}},
		{"max_price": {"NaN"}},
		{"page": {"two"}},
		{"page_size": {"1.5"}},
	} {
		_, err := ParseListQuery(q)
		if !errors.Is(err, ErrInvalidParam) {
			t.Errorf("ParseListQuery(%v) error = %v, want ErrInvalidParam", q, err)
		}
	}
}
