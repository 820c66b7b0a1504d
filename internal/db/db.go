// Package db provides PostgreSQL storage for classification run history.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
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

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the run history tables if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS classification_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			file_name TEXT NOT NULL,
			locale TEXT NOT NULL,
			strategy TEXT,
			status TEXT NOT NULL DEFAULT 'running',
			question_count INT NOT NULL DEFAULT 0,
			avg_confidence DOUBLE PRECISION,
			adjusted_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS question_classifications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			run_id UUID NOT NULL REFERENCES classification_runs(id) ON DELETE CASCADE,
			position INT NOT NULL,
			question_text TEXT NOT NULL,
			category TEXT NOT NULL,
			category_name TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			ml_category TEXT NOT NULL,
			ml_confidence DOUBLE PRECISION NOT NULL,
			adjustment_reason TEXT NOT NULL,
			was_adjusted BOOLEAN NOT NULL,
			UNIQUE (run_id, position)
		);`)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
