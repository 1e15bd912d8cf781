package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HerbHall/shelfview/internal/config"
	"github.com/HerbHall/shelfview/internal/store"
	pkgcatalog "github.com/HerbHall/shelfview/pkg/catalog"
)

// Open loads the product dataset selected by catalog.source and
// catalog.path. SQLite datasets are read in full and the database is
// closed before returning.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pkgcatalog.Catalog, error) {
	source := cfg.GetString("catalog.source")
	path := cfg.GetString("catalog.path")

	var (
		cat *pkgcatalog.Catalog
		err error
	)
	switch source {
	case "", config.SourceEmbedded:
		cat = pkgcatalog.NewCatalog()
	case config.SourceYAML:
		cat, err = pkgcatalog.LoadYAMLFile(path)
	case config.SourceSQLite:
		cat, err = openSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("catalog loaded",
		zap.String("source", source),
		zap.String("path", path),
		zap.Int("products", cat.Len()),
	)
	return cat, nil
}

func openSQLite(ctx context.Context, path string) (*pkgcatalog.Catalog, error) {
	db, err := store.New(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.MigrateProducts(ctx); err != nil {
		return nil, fmt.Errorf("migrate products: %w", err)
	}
	return pkgcatalog.LoadSQLite(ctx, db)
}

// Import copies every product of cat into the SQLite database at path,
// replacing what was stored before. It returns the number of products
// written.
func Import(ctx context.Context, cat *pkgcatalog.Catalog, path string) (int, error) {
	products, err := cat.Products()
	if err != nil {
		return 0, err
	}

	db, err := store.New(path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := db.MigrateProducts(ctx); err != nil {
		return 0, fmt.Errorf("migrate products: %w", err)
	}
	if err := db.ReplaceProducts(ctx, products); err != nil {
		return 0, err
	}
	return len(products), nil
}
