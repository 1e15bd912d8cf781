package query

import (
	"errors"
	"fmt"
	"slices"

	"github.com/HerbHall/shelfview/pkg/models"
)

// ErrInvalidSort is returned for sort criteria naming an unknown column or
// direction, or setting only one of the two.
var ErrInvalidSort = errors.New("invalid sort criteria")

// Field names a product attribute that can be sorted on.
type Field string

const (
	FieldID       Field = "id"
	FieldName     Field = "name"
	FieldCategory Field = "category"
	FieldPrice    Field = "price"
	FieldInStock  Field = "inStock"
)

// accessors maps every sortable field to its typed value getter.
var accessors = map[Field]func(models.Product) Value{
	FieldID:       func(p models.Product) Value { return Number(float64(p.ID)) },
	FieldName:     func(p models.Product) Value { return Text(p.Name) },
	FieldCategory: func(p models.Product) Value { return Text(p.Category) },
	FieldPrice:    func(p models.Product) Value { return Number(p.Price) },
	FieldInStock:  func(p models.Product) Value { return Bool(p.InStock) },
}

// IsValid reports whether f is a known field.
func (f Field) IsValid() bool {
	_, ok := accessors[f]
	return ok
}

// Order is a sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// IsValid reports whether o is a known direction.
func (o Order) IsValid() bool {
	return o == Ascending || o == Descending
}

// SortCriteria selects the sort column and direction. Both are empty (no
// explicit sort) or both are set.
type SortCriteria struct {
	Column Field `json:"column,omitempty"`
	Order  Order `json:"order,omitempty"`
}

// DefaultSort is the ordering used when no explicit sort is set.
var DefaultSort = SortCriteria{Column: FieldID, Order: Ascending}

// IsZero reports whether no explicit sort is set.
func (s SortCriteria) IsZero() bool {
	return s.Column == "" && s.Order == ""
}

// Validate checks that the criteria are either empty or fully specified with
// a known column and direction.
func (s SortCriteria) Validate() error {
	if s.IsZero() {
		return nil
	}
	if s.Column == "" || s.Order == "" {
		return fmt.Errorf("%w: column and order must be set together", ErrInvalidSort)
	}
	if !s.Column.IsValid() {
		return fmt.Errorf("%w: unknown column %q", ErrInvalidSort, s.Column)
	}
	if !s.Order.IsValid() {
		return fmt.Errorf("%w: unknown order %q", ErrInvalidSort, s.Order)
	}
	return nil
}

func (s SortCriteria) String() string {
	if s.IsZero() {
		return "none"
	}
	return string(s.Column) + ":" + string(s.Order)
}

// Sort returns a stably sorted copy of products. Incomplete or unknown
// criteria fall back to DefaultSort. The input slice is never reordered.
func Sort(products []models.Product, s SortCriteria) []models.Product {
	if s.Column == "" || s.Order == "" {
		s = DefaultSort
	}
	get, ok := accessors[s.Column]
	if !ok {
		s = DefaultSort
		get = accessors[FieldID]
	}

	out := slices.Clone(products)
	cmp := NewComparator()
	slices.SortStableFunc(out, func(a, b models.Product) int {
		r := cmp.Compare(get(a), get(b))
		if s.Order == Descending {
			return -r
		}
		return r
	})
	return out
}

// NextSort returns the criteria that follow current when the column header
// for field is clicked: a new column starts ascending, then the same column
// cycles ascending -> descending -> none. Non-sortable fields leave current
// unchanged.
func NextSort(current SortCriteria, field string) SortCriteria {
	col, ok := models.ColumnFor(field)
	if !ok || !col.Sortable {
		return current
	}
	f := Field(col.Field)
	if current.Column != f {
		return SortCriteria{Column: f, Order: Ascending}
	}
	switch current.Order {
	case Ascending:
		return SortCriteria{Column: f, Order: Descending}
	case Descending:
		return SortCriteria{}
	default:
		return SortCriteria{Column: f, Order: Ascending}
	}
}
