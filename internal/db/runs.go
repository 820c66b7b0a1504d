package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// CreateRun creates a new classification run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, fileName, locale string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO classification_runs (file_name, locale, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		fileName, locale,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a run as completed and stores its summary
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, summary *types.RunSummary) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE classification_runs
		 SET status = $1, strategy = $2, question_count = $3,
		     avg_confidence = $4, adjusted_count = $5, completed_at = NOW()
		 WHERE id = $6`,
		status, summary.Strategy, summary.QuestionCount,
		summary.AvgConfidence, summary.AdjustedCount, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// FailRun marks a run as failed
func (db *DB) FailRun(ctx context.Context, runID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE classification_runs SET status = 'failed', completed_at = NOW() WHERE id = $1`,
		runID,
	)
	if err != nil {
		return fmt.Errorf("failed to fail run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID; nil when not found
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, file_name, locale, COALESCE(strategy, ''), status,
		        question_count, avg_confidence, adjusted_count, created_at, completed_at
		 FROM classification_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.FileName, &run.Locale, &run.Strategy, &run.Status,
		&run.QuestionCount, &run.AvgConfidence, &run.AdjustedCount, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// RunFilters holds optional filters for listing runs
type RunFilters struct {
	Locale string
	Status string
	Limit  int
}

// ListRuns retrieves recent runs with optional filters
func (db *DB) ListRuns(ctx context.Context, filters RunFilters) ([]Run, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, file_name, locale, COALESCE(strategy, ''), status,
	                 question_count, avg_confidence, adjusted_count, created_at, completed_at
	          FROM classification_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Locale != "" {
		query += fmt.Sprintf(" AND locale = $%d", argNum)
		args = append(args, filters.Locale)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.FileName, &run.Locale, &run.Strategy, &run.Status,
			&run.QuestionCount, &run.AvgConfidence, &run.AdjustedCount, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun deletes a run and its question rows (via cascade)
func (db *DB) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM classification_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}
