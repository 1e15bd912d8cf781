package models

// Column describes one product attribute as shown in a listing.
// Sortable columns participate in the header click sort cycle.
type Column struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

// ProductColumns is the default column layout for product listings.
var ProductColumns = []Column{
	{Field: "name", Label: "Name", Sortable: true},
	{Field: "category", Label: "Category", Sortable: true},
	{Field: "price", Label: "Price", Sortable: true},
	{Field: "inStock", Label: "In Stock"},
}

// ColumnFor returns the column for field, or false if none exists.
func ColumnFor(field string) (Column, bool) {
	for i := range ProductColumns {
		if ProductColumns[i].Field == field {
			return ProductColumns[i], true
		}
	}
	return Column{}, false
}

// StockLabel renders the in-stock flag for display.
func StockLabel(inStock bool) string {
	if inStock {
		return "yes"
	}
	return "no"
}
