package types

// LabelProbability is a single label's sigmoid output from the classification gateway
type LabelProbability struct {
	Probability float64 `json:"probability"`
	Predicted   bool    `json:"predicted"`
}

// MLPrediction is the raw output of the classification gateway for one question.
// It is read-only input to the rule engine; the engine never mutates it.
type MLPrediction struct {
	Category         Category                    `json:"category"`
	CategoryName     string                      `json:"category_name"`
	Confidence       float64                     `json:"confidence"`
	AllProbabilities map[string]LabelProbability `json:"all_probabilities"`
}

// AdjustmentResult is the rule engine's sole output type. It is always produced,
// never an error; when no rule fires it carries the ML prediction unchanged with
// WasAdjusted false.
type AdjustmentResult struct {
	Category         Category                    `json:"category"`
	CategoryName     string                      `json:"category_name"`
	Confidence       float64                     `json:"confidence"`
	AllProbabilities map[string]LabelProbability `json:"all_probabilities"`
	AdjustmentReason string                      `json:"adjustment_reason"`
	MLCategory       Category                    `json:"ml_category"`
	MLConfidence     float64                     `json:"ml_confidence"`
	WasAdjusted      bool                        `json:"was_adjusted"`
}
