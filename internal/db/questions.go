package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// SaveQuestions stores all classified questions of a run in one round trip
func (db *DB) SaveQuestions(ctx context.Context, runID uuid.UUID, questions []types.ClassifiedQuestion) error {
	batch := &pgx.Batch{}
	for _, q := range questions {
		batch.Queue(
			`INSERT INTO question_classifications
			 (run_id, position, question_text, category, category_name, confidence,
			  ml_category, ml_confidence, adjustment_reason, was_adjusted)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (run_id, position) DO UPDATE SET
			   question_text = $3, category = $4, category_name = $5, confidence = $6,
			   ml_category = $7, ml_confidence = $8, adjustment_reason = $9, was_adjusted = $10`,
			runID, q.Position, q.Text,
			string(q.Result.Category), q.Result.CategoryName, q.Result.Confidence,
			string(q.Result.MLCategory), q.Result.MLConfidence,
			q.Result.AdjustmentReason, q.Result.WasAdjusted,
		)
	}

	results := db.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range questions {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save question: %w", err)
		}
	}
	return nil
}

// GetQuestions retrieves the classified questions of a run in position order
func (db *DB) GetQuestions(ctx context.Context, runID uuid.UUID) ([]QuestionRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, position, question_text, category, category_name, confidence,
		        ml_category, ml_confidence, adjustment_reason, was_adjusted
		 FROM question_classifications WHERE run_id = $1 ORDER BY position ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var records []QuestionRecord
	for rows.Next() {
		var r QuestionRecord
		if err := rows.Scan(&r.ID, &r.RunID, &r.Position, &r.QuestionText,
			&r.Category, &r.CategoryName, &r.Confidence,
			&r.MLCategory, &r.MLConfidence, &r.AdjustmentReason, &r.WasAdjusted); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		records = append(records, r)
	}
	return records, nil
}
