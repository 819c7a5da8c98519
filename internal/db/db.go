// Package db provides PostgreSQL access for the mutable user-progress store.
// The reference catalog is file-backed and read-only; only user profiles and
// per-skill learning progress live here.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the users table if it does not exist. The progress
// column maps skill_id to learning status and is updated independently of the
// profile columns.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			user_id       TEXT PRIMARY KEY,
			name          TEXT NOT NULL DEFAULT '',
			email         TEXT NOT NULL DEFAULT '',
			degree        TEXT NOT NULL DEFAULT '',
			branch        TEXT NOT NULL DEFAULT '',
			semester      TEXT NOT NULL DEFAULT '',
			interests     JSONB NOT NULL DEFAULT '[]'::jsonb,
			skills        JSONB NOT NULL DEFAULT '{}'::jsonb,
			selected_role TEXT NOT NULL DEFAULT '',
			progress      JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure users schema: %w", err)
	}
	return nil
}
