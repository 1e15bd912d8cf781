package models

import "testing"

func TestColumnFor(t *testing.T) {
	tests := []struct {
		field    string
		found    bool
		sortable bool
	}{
		{field: "name", found: true, sortable: true},
		{field: "category", found: true, sortable: true},
		{field: "price", found: true, sortable: true},
		{field: "inStock", found: true, sortable: false},
		{field: "id", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			col, ok := ColumnFor(tt.field)
			if ok != tt.found {
				t.Fatalf("ColumnFor(%q) found = %v, want %v", tt.field, ok, tt.found)
			}
			if col.Sortable != tt.sortable {
				t.Errorf("ColumnFor(%q).Sortable = %v, want %v", tt.field, col.Sortable, tt.sortable)
			}
		})
	}
}

func TestStockLabel(t *testing.T) {
	if got := StockLabel(true); got != "yes" {
		t.Errorf("StockLabel(true) = %q, want %q", got, "yes")
	}
	if got := StockLabel(false); got != "no" {
		t.Errorf("StockLabel(false) = %q, want %q", got, "no")
	}
}
