package query

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/HerbHall/shelfview/pkg/models"
)

// ErrInvalidPriceRange is returned when a submitted price range has a
// minimum above its maximum.
var ErrInvalidPriceRange = errors.New("minimum price cannot exceed maximum price")

// PriceRange is an inclusive price bound. The zero value means "no bound".
// The range only constrains results when Min >= 0 and Max > 0, so any range
// with Max <= 0 is unconstrained.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Active reports whether the range constrains results.
func (r PriceRange) Active() bool {
	return r.Min >= 0 && r.Max > 0
}

// Validate rejects ranges whose minimum exceeds the maximum. NaN bounds are
// not compared.
func (r PriceRange) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return nil
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %v > max %v", ErrInvalidPriceRange, r.Min, r.Max)
	}
	return nil
}

// FilterCriteria holds the optional filter predicates. A nil pointer means
// "do not constrain on this field", which is distinct from a zero value.
type FilterCriteria struct {
	SearchText *string    `json:"searchText,omitempty"`
	Category   *string    `json:"category,omitempty"`
	PriceRange PriceRange `json:"priceRange"`
	InStock    *bool      `json:"inStock,omitempty"`
}

// Ptr returns a pointer to v. It is a convenience for building criteria.
func Ptr[T any](v T) *T {
	return &v
}

// Validate checks the criteria before they are applied.
func (f FilterCriteria) Validate() error {
	return f.PriceRange.Validate()
}

// IsZero reports whether no predicate is present.
func (f FilterCriteria) IsZero() bool {
	return (f.SearchText == nil || *f.SearchText == "") &&
		f.Category == nil && f.InStock == nil && !f.PriceRange.Active()
}

// key returns a canonical string for memoization. Criteria that filter
// identically do not necessarily share a key.
func (f FilterCriteria) key() string {
	var b strings.Builder
	b.WriteString("q=")
	if f.SearchText != nil {
		b.WriteString(strconv.Quote(*f.SearchText))
	}
	b.WriteString("|c=")
	if f.Category != nil {
		b.WriteString(strconv.Quote(*f.Category))
	}
	b.WriteString("|s=")
	if f.InStock != nil {
		b.WriteString(strconv.FormatBool(*f.InStock))
	}
	fmt.Fprintf(&b, "|p=%v,%v", f.PriceRange.Min, f.PriceRange.Max)
	return b.String()
}

// matcher is FilterCriteria compiled for one Filter call.
type matcher struct {
	crit   FilterCriteria
	lower  cases.Caser
	needle string
}

func newMatcher(f FilterCriteria) *matcher {
	m := &matcher{crit: f, lower: cases.Lower(language.Und)}
	if f.SearchText != nil {
		m.needle = m.lower.String(*f.SearchText)
	}
	return m
}

func (m *matcher) match(p models.Product) bool {
	if m.needle != "" && !strings.Contains(m.lower.String(p.Name), m.needle) {
		return false
	}
	if m.crit.Category != nil && p.Category != *m.crit.Category {
		return false
	}
	if m.crit.InStock != nil && p.InStock != *m.crit.InStock {
		return false
	}
	if r := m.crit.PriceRange; r.Active() && (p.Price < r.Min || p.Price > r.Max) {
		return false
	}
	return true
}

// Filter returns the products that satisfy every present predicate, in
// input order. The input slice is not modified.
func Filter(products []models.Product, f FilterCriteria) []models.Product {
	m := newMatcher(f)
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if m.match(products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}
