package rules

import "github.com/jonathan/bloom-classifier/internal/types"

// Tuning holds the empirically set constants of the cascade. The values have
// no documented derivation; they are exposed as configuration so they can be
// recalibrated against a labeled corpus without code changes.
type Tuning struct {
	// UncertainCutoff is the ML confidence below which a higher-order
	// prediction without an imperative verb is downgraded.
	UncertainCutoff float64
	// UncertainConfidence is the fixed confidence assigned by that downgrade.
	UncertainConfidence float64
	// HighConfidenceCutoff is the ML confidence above which a forced category
	// earns an agreement bonus.
	HighConfidenceCutoff float64
	// MaxConfidence clamps every boosted confidence.
	MaxConfidence float64
	// AdjustedDelta is the confidence change beyond which a result counts as
	// adjusted even when the category is unchanged.
	AdjustedDelta float64
}

func DefaultTuning() Tuning {
	return Tuning{
		UncertainCutoff:      0.70,
		UncertainConfidence:  0.80,
		HighConfidenceCutoff: 0.70,
		MaxConfidence:        0.98,
		AdjustedDelta:        0.05,
	}
}

// baseConfidence is the per-category starting confidence for any forced or
// confirmed category
var baseConfidence = map[types.Category]float64{
	types.C1: 0.95,
	types.C2: 0.90,
	types.C3: 0.87,
	types.C4: 0.89,
	types.C5: 0.91,
	types.C6: 0.93,
}

// boostConfidence computes the confidence of a forced or confirmed category
// from its base plus agreement and signal-strength bonuses, clamped.
func boostConfidence(c types.Category, mlConfidence float64, patternCount, keywordCount int, t Tuning) float64 {
	confidence, ok := baseConfidence[c]
	if !ok {
		confidence = 0.85
	}

	if mlConfidence > t.HighConfidenceCutoff {
		confidence += 0.05
	}
	if patternCount >= 2 || keywordCount >= 3 {
		confidence += 0.03
	}
	if patternCount >= 1 && keywordCount >= 2 {
		confidence += 0.04
	}

	if confidence > t.MaxConfidence {
		confidence = t.MaxConfidence
	}
	return confidence
}
