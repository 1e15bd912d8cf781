package query

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Value is a single product field value as seen by the Comparator.
// Booleans are carried as numbers (false=0, true=1).
type Value struct {
	text   string
	num    float64
	isText bool
}

// Text wraps a string field value.
func Text(s string) Value { return Value{text: s, isText: true} }

// Number wraps a numeric field value.
func Number(n float64) Value { return Value{num: n} }

// Bool wraps a boolean field value.
func Bool(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

// Comparator orders field values. Text is compared with a numeric-aware
// collation so "item2" sorts before "item10"; everything else numerically.
//
// A Comparator is not safe for concurrent use.
type Comparator struct {
	col *collate.Collator
}

// NewComparator returns a Comparator using the root locale.
func NewComparator() *Comparator {
	return &Comparator{col: collate.New(language.Und, collate.Numeric)}
}

// Compare returns a negative number when a sorts before b, a positive number
// when it sorts after, and zero when they are equal.
func (c *Comparator) Compare(a, b Value) int {
	if a.isText && b.isText {
		return c.col.CompareString(a.text, b.text)
	}
	return cmp.Compare(a.num, b.num)
}
