package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/HerbHall/shelfview/pkg/models"
)

// productsSchema is the schema name used to track product migrations.
const productsSchema = "products"

// productMigrations creates the products table. Row order (position)
// defines product IDs.
var productMigrations = []Migration{
	{
		Version:     1,
		Description: "create products table",
		Up: func(tx *sql.Tx) error {
			stmts := []string{
				`CREATE TABLE products (
					position INTEGER PRIMARY KEY,
					name     TEXT    NOT NULL,
					category TEXT    NOT NULL,
					price    REAL    NOT NULL DEFAULT 0 CHECK (price >= 0),
					in_stock INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_products_category ON products(category)`,
			}
			for _, stmt := range stmts {
				if _, err := tx.Exec(stmt); err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// MigrateProducts creates the products table if it does not exist yet.
func (s *SQLiteStore) MigrateProducts(ctx context.Context) error {
	return s.Migrate(ctx, productsSchema, productMigrations)
}

// ReplaceProducts replaces the stored dataset with products, keeping their
// slice order.
func (s *SQLiteStore) ReplaceProducts(ctx context.Context, products []models.Product) error {
	return s.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
			return fmt.Errorf("clear products: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO products (position, name, category, price, in_stock) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		for i := range products {
			p := products[i]
			if _, err := stmt.ExecContext(ctx, i, p.Name, p.Category, p.Price, p.InStock); err != nil {
				return fmt.Errorf("insert product %d: %w", i, err)
			}
		}
		return nil
	})
}

// LoadProducts reads every product ordered by position. IDs are left for
// the catalog to assign.
func (s *SQLiteStore) LoadProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, category, price, in_stock FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.Name, &p.Category, &p.Price, &p.InStock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
