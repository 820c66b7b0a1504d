package types

// CandidateList is one segmentation strategy's output: an ordered sequence of
// question strings tagged with its provenance and quality score. Candidate lists
// are owned by the pipeline invocation and discarded except for the winner.
type CandidateList struct {
	Strategy  string   `json:"strategy"`
	Questions []string `json:"questions"`
	Score     float64  `json:"score"`
}

// ValidationResult reports whether a segmented question list is usable downstream.
// Validation is a structured, inspectable result, not an error.
type ValidationResult struct {
	Valid     bool    `json:"valid"`
	Reason    string  `json:"reason,omitempty"`
	Count     int     `json:"count"`
	AvgLength float64 `json:"avg_length,omitempty"`
	Quality   string  `json:"quality,omitempty"`
}

// ClassifiedQuestion pairs a question with its final adjusted classification.
// Position is the question's index in segmentation order; results are always
// collected by position so that output order matches input order.
type ClassifiedQuestion struct {
	Position int              `json:"position"`
	Text     string           `json:"text"`
	Result   AdjustmentResult `json:"result"`
}

// RunSummary aggregates one classification run for reporting and persistence
type RunSummary struct {
	QuestionCount  int              `json:"question_count"`
	Strategy       string           `json:"strategy"`
	CategoryCounts map[Category]int `json:"category_counts"`
	AvgConfidence  float64          `json:"avg_confidence"`
	AdjustedCount  int              `json:"adjusted_count"`
}

// Summarize builds a RunSummary from classified questions
func Summarize(strategy string, questions []ClassifiedQuestion) RunSummary {
	summary := RunSummary{
		QuestionCount:  len(questions),
		Strategy:       strategy,
		CategoryCounts: make(map[Category]int),
	}

	total := 0.0
	for _, q := range questions {
		summary.CategoryCounts[q.Result.Category]++
		total += q.Result.Confidence
		if q.Result.WasAdjusted {
			summary.AdjustedCount++
		}
	}
	if len(questions) > 0 {
		summary.AvgConfidence = total / float64(len(questions))
	}

	return summary
}
