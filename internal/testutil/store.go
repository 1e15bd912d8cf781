package testutil

import (
	"context"
	"testing"

	"github.com/HerbHall/shelfview/internal/store"
)

// NewStore creates an in-memory SQLiteStore with the products table
// migrated. The store is automatically closed when the test completes.
func NewStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	db, err := store.New(":memory:")
	if err != nil {
		t.Fatalf("testutil.NewStore: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateProducts(context.Background()); err != nil {
		t.Fatalf("testutil.NewStore: migrate: %v", err)
	}
	return db
}
