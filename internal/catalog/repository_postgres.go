package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the catalog from the products table.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

// --------------------------------------------------
// Load the catalog in display order
// --------------------------------------------------
func (s *PostgresSource) Load(ctx context.Context) ([]Product, error) {
	query := `
		SELECT
			id,
			name,
			price::text,
			original_price::text,
			image,
			category,
			unit,
			organic
		FROM products
		ORDER BY position, id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var r productRow
		if err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Price,
			&r.OriginalPrice,
			&r.Image,
			&r.Category,
			&r.Unit,
			&r.Organic,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}

		p, err := r.product()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// --------------------------------------------------
// Replace the catalog (used by catalogctl seed)
// --------------------------------------------------
func (s *PostgresSource) Replace(ctx context.Context, products []Product) error {
	if err := Validate(products); err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
			return fmt.Errorf("clear products: %w", err)
		}

		insert := `
			INSERT INTO products (
				id, position, name, price, original_price,
				image, category, unit, organic
			)
			VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6, $7, $8, $9)
		`
		for i, p := range products {
			r := rowFrom(p)
			if _, err := tx.Exec(ctx, insert,
				r.ID, i, r.Name, r.Price, r.OriginalPrice,
				r.Image, r.Category, r.Unit, r.Organic,
			); err != nil {
				return fmt.Errorf("insert product %q: %w", p.ID, err)
			}
		}
		return nil
	})
}
