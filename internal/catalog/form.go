package catalog

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/HerbHall/shelfview/internal/query"
)

// ErrInvalidParam reports a query parameter that could not be parsed.
var ErrInvalidParam = errors.New("invalid parameter")

// unset is the select-box value meaning "no choice".
const unset = "-1"

// ParseFilterForm reads a submitted filter form (searchText, category,
// minPrice, maxPrice, inStock). An empty search and the "-1" category or
// inStock choice leave that predicate absent. Unparsable prices become 0
// and are not compared against the other bound; when that leaves the
// minimum above the maximum the range is dropped, which filters the same
// since a range with a zero maximum never constrains.
func ParseFilterForm(form url.Values) (query.FilterCriteria, error) {
	var f query.FilterCriteria

	if s := form.Get("searchText"); s != "" {
		f.SearchText = query.Ptr(s)
	}
	if c := form.Get("category"); c != "" && c != unset {
		f.Category = query.Ptr(c)
	}
	switch s := form.Get("inStock"); s {
	case "", unset:
	default:
		f.InStock = query.Ptr(s == "true")
	}

	minPrice, minOK := parsePrice(form.Get("minPrice"))
	maxPrice, maxOK := parsePrice(form.Get("maxPrice"))
	f.PriceRange = query.PriceRange{Min: minPrice, Max: maxPrice}
	if minOK && maxOK {
		if err := f.PriceRange.Validate(); err != nil {
			return query.FilterCriteria{}, err
		}
	} else if minPrice > maxPrice {
		f.PriceRange = query.PriceRange{}
	}
	return f, nil
}

// parsePrice converts a form price. Empty input is 0. Unparsable or
// non-finite input is 0 and reported as not ok.
func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseListQuery reads the query string of a listing request. Unlike
// ParseFilterForm it rejects malformed values.
func ParseListQuery(q url.Values) (Request, error) {
	var req Request

	if s := q.Get("q"); s != "" {
		req.Filter.SearchText = query.Ptr(s)
	}
	if c := q.Get("category"); c != "" {
		req.Filter.Category = query.Ptr(c)
	}
	if s := q.Get("in_stock"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Request{}, fmt.Errorf("%w: in_stock %q", ErrInvalidParam, s)
		}
		req.Filter.InStock = query.Ptr(b)
	}

	var err error
	if req.Filter.PriceRange.Min, err = floatParam(q, "min_price"); err != nil {
		return Request{}, err
	}
	if req.Filter.PriceRange.Max, err = floatParam(q, "max_price"); err != nil {
		return Request{}, err
	}

	req.Sort = query.SortCriteria{
		Column: query.Field(q.Get("sort")),
		Order:  query.Order(q.Get("order")),
	}
	if req.Sort.Column != "" && req.Sort.Order == "" {
		req.Sort.Order = query.Ascending
	}

	if req.Page, err = intParam(q, "page"); err != nil {
		return Request{}, err
	}
	if req.PageSize, err = intParam(q, "page_size"); err != nil {
		return Request{}, err
	}
	return req, nil
}

func floatParam(q url.Values, key string) (float64, error) {
	s := q.Get(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidParam, key, s)
	}
	return v, nil
}

func intParam(q url.Values, key string) (int, error) {
	s := q.Get(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidParam, key, s)
	}
	return v, nil
}
