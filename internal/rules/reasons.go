package rules

import (
	"strings"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// Adjustment reason codes. Every result carries exactly one of these, or a
// per-category force/confirm code built below.
const (
	ReasonAbsoluteBlocker      = "absolute_c1_blocker"
	ReasonTechnicalTermBlocker = "technical_term_blocker"
	ReasonFalseCreate          = "block_false_c6_descriptive"
	ReasonFalseEvaluate        = "block_false_c5_criteria"
	ReasonDeclarative          = "declarative_downgrade"
	ReasonUncertain            = "downgrade_uncertain"
	ReasonMissingImperative    = "c6_missing_imperative"
	ReasonMLKept               = "ml_kept"
)

// forceReason yields codes like "force_c4_pattern"
func forceReason(c types.Category) string {
	return "force_" + strings.ToLower(string(c)) + "_pattern"
}

// confirmReason yields codes like "confirm_c4_boost"
func confirmReason(c types.Category) string {
	return "confirm_" + strings.ToLower(string(c)) + "_boost"
}
