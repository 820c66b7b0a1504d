package db

import (
	"time"

	"github.com/google/uuid"
)

// Run is one classification run over a single document
type Run struct {
	ID            uuid.UUID  `json:"id"`
	FileName      string     `json:"file_name"`
	Locale        string     `json:"locale"`
	Strategy      string     `json:"strategy,omitempty"`
	Status        string     `json:"status"`
	QuestionCount int        `json:"question_count"`
	AvgConfidence *float64   `json:"avg_confidence,omitempty"`
	AdjustedCount int        `json:"adjusted_count"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// QuestionRecord is one classified question within a run
type QuestionRecord struct {
	ID               uuid.UUID `json:"id"`
	RunID            uuid.UUID `json:"run_id"`
	Position         int       `json:"position"`
	QuestionText     string    `json:"question_text"`
	Category         string    `json:"category"`
	CategoryName     string    `json:"category_name"`
	Confidence       float64   `json:"confidence"`
	MLCategory       string    `json:"ml_category"`
	MLConfidence     float64   `json:"ml_confidence"`
	AdjustmentReason string    `json:"adjustment_reason"`
	WasAdjusted      bool      `json:"was_adjusted"`
}
