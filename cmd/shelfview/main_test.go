package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/HerbHall/shelfview/internal/query"
	"github.com/HerbHall/shelfview/internal/view"
	"github.com/HerbHall/shelfview/pkg/models"
)

func TestPrintPage(t *testing.T) {
	snap := view.Snapshot{
		Products: []models.Product{
			{ID: 0, Name: "Apple", Category: "Fruit", Price: 10, InStock: true},
			{ID: 2, Name: "Carrot", Category: "Veg", Price: 3},
		},
		Total: 2,
		Page:  view.PageState{Page: 1, PageSize: 10, LastPage: 1},
		Sort:  query.SortCriteria{Column: query.FieldName, Order: query.Ascending},
	}

	var buf bytes.Buffer
	printPage(&buf, snap)
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	for _, want := range []string{"Name", "Category", "Price", "In Stock"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "Apple") || !strings.Contains(lines[1], "10.00") || !strings.Contains(lines[1], "yes") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Carrot") || !strings.Contains(lines[2], "no") {
		t.Errorf("row 2 = %q", lines[2])
	}
	if lines[4] != "page 1 of 1 (2 products, sort name:asc)" {
		t.Errorf("footer = %q", lines[4])
	}
}
