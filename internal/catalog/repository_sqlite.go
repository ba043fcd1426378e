package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteSource reads the catalog from a local SQLite database, which is handy
// for demos that should not need a Postgres server.
type SQLiteSource struct {
	db *sql.DB
}

func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

func (s *SQLiteSource) Load(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price, original_price, image, category, unit, organic
		FROM products
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := []Product{}
	for rows.Next() {
		var (
			r        productRow
			original sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Price, &original, &r.Image, &r.Category, &r.Unit, &r.Organic); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if original.Valid {
			r.OriginalPrice = &original.String
		}

		p, err := r.product()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Replace swaps the stored catalog for products in a single transaction.
func (s *SQLiteSource) Replace(ctx context.Context, products []Product) (retErr error) {
	if err := Validate(products); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (id, position, name, price, original_price, image, category, unit, organic)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, p := range products {
		r := rowFrom(p)
		if _, err := stmt.ExecContext(ctx, r.ID, i, r.Name, r.Price, r.OriginalPrice, r.Image, r.Category, r.Unit, r.Organic); err != nil {
			return fmt.Errorf("insert product %q: %w", p.ID, err)
		}
	}

	return tx.Commit()
}
