package extraction

import "github.com/jonathan/bloom-classifier/internal/types"

const minQuestionChars = 10

// ValidateQuestions sanity-checks a segmented question set before it is sent
// for classification. It never errors; an unusable set comes back with
// Valid=false and a reason.
func ValidateQuestions(questions []string) *types.ValidationResult {
	if len(questions) == 0 {
		return &types.ValidationResult{Valid: false, Reason: "no questions found"}
	}
	if len(questions) < 3 {
		return &types.ValidationResult{
			Valid:  false,
			Reason: "too few questions",
			Count:  len(questions),
		}
	}

	short := 0
	total := 0
	for _, q := range questions {
		total += len(q)
		if len(q) < minQuestionChars {
			short++
		}
	}
	avg := float64(total) / float64(len(questions))

	if short > len(questions)/2 {
		return &types.ValidationResult{
			Valid:     false,
			Reason:    "many questions too short",
			Count:     len(questions),
			AvgLength: avg,
		}
	}

	quality := "low"
	switch {
	case avg >= 30 && avg <= 200:
		quality = "high"
	case avg >= 20 && avg <= 300:
		quality = "medium"
	}

	return &types.ValidationResult{
		Valid:     true,
		Count:     len(questions),
		AvgLength: avg,
		Quality:   quality,
	}
}
