package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMissingDSN = errors.New("DATABASE_URL not set")

// ConnectPostgres opens a pooled connection, pings it and makes sure the
// catalog schema exists.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err := InitSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// InitSchema creates the products table if it does not exist yet.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	// -------------------------------
	// PRODUCTS
	// -------------------------------
	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			position INTEGER NOT NULL,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			original_price NUMERIC(10,2) NULL,
			image VARCHAR(500) NOT NULL DEFAULT '',
			category VARCHAR(64) NOT NULL,
			unit VARCHAR(64) NOT NULL DEFAULT '',
			organic BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	if _, err := pool.Exec(ctx, productsSQL); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}

	indexSQL := `CREATE INDEX IF NOT EXISTS products_position_idx ON products (position)`
	if _, err := pool.Exec(ctx, indexSQL); err != nil {
		return fmt.Errorf("create products index: %w", err)
	}

	return nil
}
