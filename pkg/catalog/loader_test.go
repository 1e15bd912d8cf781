package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HerbHall/shelfview/internal/testutil"
	"github.com/HerbHall/shelfview/pkg/models"
)

func TestNewCatalog_EmbeddedDataset(t *testing.T) {
	cat := NewCatalog()
	products, err := cat.Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected embedded products")
	}
	for i := range products {
		if products[i].ID != i {
			t.Errorf("products[%d].ID = %d, want %d", i, products[i].ID, i)
		}
		if products[i].Name == "" || products[i].Category == "" {
			t.Errorf("products[%d] has empty name or category: %+v", i, products[i])
		}
	}
	if cat.Len() != len(products) {
		t.Errorf("Len() = %d, want %d", cat.Len(), len(products))
	}
}

func TestCatalog_ProductsReturnsCopy(t *testing.T) {
	cat := NewCatalog()
	first, err := cat.Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	first[0].Name = "mutated"

	second, _ := cat.Products()
	if second[0].Name == "mutated" {
		t.Error("mutating a returned slice changed the catalog")
	}
}

func TestFromProducts_AssignsSequenceIDs(t *testing.T) {
	cat, err := FromProducts([]models.Product{
		{ID: 42, Name: "Apple", Category: "Fruit", Price: 10, InStock: true},
		{ID: 7, Name: "Carrot", Category: "Veg", Price: 3},
	})
	if err != nil {
		t.Fatalf("FromProducts: %v", err)
	}
	products, _ := cat.Products()
	if products[0].ID != 0 || products[1].ID != 1 {
		t.Errorf("IDs = %d, %d, want 0, 1", products[0].ID, products[1].ID)
	}
}

func TestFromProducts_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		wantErr string
	}{
		{name: "missing name", product: models.Product{Category: "Fruit"}, wantErr: "missing name"},
		{name: "missing category", product: models.Product{Name: "Apple"}, wantErr: "missing category"},
		{name: "negative price", product: models.Product{Name: "Apple", Category: "Fruit", Price: -1}, wantErr: "negative price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromProducts([]models.Product{tt.product})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.yaml")
	data := `products:
  - name: Apple
    category: Fruit
    price: 10
    inStock: true
  - name: Banana
    category: Fruit
    price: 5
    inStock: false
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cat, err := LoadYAMLFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLFile: %v", err)
	}
	products, _ := cat.Products()
	if len(products) != 2 {
		t.Fatalf("len = %d, want 2", len(products))
	}
	if products[1].Name != "Banana" || products[1].Price != 5 || products[1].InStock {
		t.Errorf("products[1] = %+v", products[1])
	}
}

func TestLoadYAMLFile_Missing(t *testing.T) {
	if _, err := LoadYAMLFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadYAMLFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("products: [\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadYAMLFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadSQLite(t *testing.T) {
	db := testutil.NewStore(t)
	ctx := context.Background()
	if err := db.ReplaceProducts(ctx, testutil.Produce()); err != nil {
		t.Fatalf("ReplaceProducts: %v", err)
	}

	c, err := LoadSQLite(ctx, db)
	if err != nil {
		t.Fatalf("LoadSQLite: %v", err)
	}
	products, err := c.Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("len = %d, want 3", len(products))
	}
	for i, p := range products {
		if p.ID != i {
			t.Errorf("products[%d].ID = %d, want %d", i, p.ID, i)
		}
	}
	if products[1].Name != "Banana" {
		t.Errorf("products[1].Name = %q, want Banana", products[1].Name)
	}
}

type brokenReader struct{}

func (brokenReader) LoadProducts(context.Context) ([]models.Product, error) {
	return nil, errors.New("disk on fire")
}

func TestLoadSQLite_ReaderError(t *testing.T) {
	if _, err := LoadSQLite(context.Background(), brokenReader{}); err == nil {
		t.Fatal("expected error from failing reader")
	}
}
