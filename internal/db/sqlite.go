package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// OpenSQLite opens (creating if needed) a SQLite catalog database at path.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = "freshmart.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		price TEXT NOT NULL,
		original_price TEXT NULL,
		image TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		unit TEXT NOT NULL DEFAULT '',
		organic INTEGER NOT NULL DEFAULT 0
	)`); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create products table: %w", err)
	}

	return conn, nil
}
