package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/bloom-classifier/internal/types"
)

func prediction(c types.Category, confidence float64) *types.MLPrediction {
	return &types.MLPrediction{
		Category:     c,
		CategoryName: c.Name(),
		Confidence:   confidence,
	}
}

func TestAdjust_AbsoluteBlockerOverridesAnyPrediction(t *testing.T) {
	text := "The process by which plants make their own food is called ______."

	for _, c := range types.AllCategories() {
		result := Adjust(text, prediction(c, 0.90), English)
		assert.Equal(t, types.C1, result.Category, "predicted %s", c)
		assert.Equal(t, ReasonAbsoluteBlocker, result.AdjustmentReason)
		assert.GreaterOrEqual(t, result.Confidence, 0.96)
	}
}

func TestAdjust_BareDefinitionalQuestionForcedToRemember(t *testing.T) {
	result := Adjust("What is a variable?", prediction(types.C3, 0.55), English)
	assert.Equal(t, types.C1, result.Category)
	assert.Equal(t, "Remember", result.CategoryName)
	assert.Equal(t, ReasonAbsoluteBlocker, result.AdjustmentReason)
	assert.Equal(t, 0.96, result.Confidence)
	assert.True(t, result.WasAdjusted)
	assert.Equal(t, types.C3, result.MLCategory)
	assert.Equal(t, 0.55, result.MLConfidence)
}

func TestAdjust_TechnicalTermBlocker(t *testing.T) {
	// Definitional question about a technical term, misread as higher-order
	// by the ML model because of the domain vocabulary
	result := Adjust("What is a SQL injection and how is it performed?",
		prediction(types.C4, 0.80), English)
	assert.Equal(t, types.C1, result.Category)
	assert.Equal(t, ReasonTechnicalTermBlocker, result.AdjustmentReason)
	assert.True(t, result.WasAdjusted)
}

func TestAdjust_TechnicalTermBlockerWithUnderstandCue(t *testing.T) {
	result := Adjust("Explain why encryption is used to protect data in transit",
		prediction(types.C5, 0.80), English)
	assert.Equal(t, types.C2, result.Category)
	assert.Equal(t, ReasonTechnicalTermBlocker, result.AdjustmentReason)
}

func TestAdjust_TechnicalTermBlockerIgnoresLowerOrderPredictions(t *testing.T) {
	result := Adjust("What is a SQL injection and how is it performed?",
		prediction(types.C1, 0.90), English)
	assert.Equal(t, types.C1, result.Category)
	assert.Equal(t, ReasonMLKept, result.AdjustmentReason)
	assert.False(t, result.WasAdjusted)
}

func TestAdjust_FalseCreateGuard(t *testing.T) {
	// Passive description of an existing system, not a request to create one
	result := Adjust("The security system was designed to detect intrusions",
		prediction(types.C6, 0.85), English)
	assert.Equal(t, types.C1, result.Category)
	assert.Equal(t, ReasonFalseCreate, result.AdjustmentReason)
}

func TestAdjust_FalseEvaluateGuard(t *testing.T) {
	// Asking which criteria exist is recall, not evaluation
	result := Adjust("On what basis are metals grouped as heavy metals",
		prediction(types.C5, 0.85), English)
	assert.Equal(t, types.C1, result.Category)
	assert.Equal(t, ReasonFalseEvaluate, result.AdjustmentReason)
}

func TestAdjust_ForcesAnalyzeOnImperativePattern(t *testing.T) {
	result := Adjust("Analyze the following code snippet for bugs",
		prediction(types.C2, 0.80), English)
	assert.Equal(t, types.C4, result.Category)
	assert.Equal(t, "force_c4_pattern", result.AdjustmentReason)
	assert.True(t, result.WasAdjusted)
	assert.InDelta(t, 0.94, result.Confidence, 1e-9)
}

func TestAdjust_ForcesCreateOverLowOrderPrediction(t *testing.T) {
	result := Adjust("Design a mobile application for tracking daily expenses",
		prediction(types.C1, 0.90), English)
	assert.Equal(t, types.C6, result.Category)
	assert.Equal(t, "force_c6_pattern", result.AdjustmentReason)
	assert.InDelta(t, 0.98, result.Confidence, 1e-9)
}

func TestAdjust_AgreementOnlyBoostsConfidence(t *testing.T) {
	result := Adjust("Analyze the following code snippet for bugs",
		prediction(types.C4, 0.75), English)
	assert.Equal(t, types.C4, result.Category)
	assert.Equal(t, "confirm_c4_boost", result.AdjustmentReason)
	assert.InDelta(t, 0.94, result.Confidence, 1e-9)
	// Category unchanged but the confidence moved by more than the delta
	assert.True(t, result.WasAdjusted)
}

func TestAdjust_AgreementNeverLowersConfidence(t *testing.T) {
	result := Adjust("Analyze the following code snippet for bugs",
		prediction(types.C4, 0.97), English)
	assert.Equal(t, types.C4, result.Category)
	assert.Equal(t, ReasonMLKept, result.AdjustmentReason)
	assert.Equal(t, 0.97, result.Confidence)
	assert.False(t, result.WasAdjusted)
}

func TestAdjust_CompareAndContrastForcesAnalyze(t *testing.T) {
	// "compare and contrast" is an analysis task even though "compare" alone
	// would read as understanding
	result := Adjust("Compare and contrast the merge sort and quick sort approaches",
		prediction(types.C2, 0.80), English)
	assert.Equal(t, types.C4, result.Category)
	assert.Equal(t, "force_c4_pattern", result.AdjustmentReason)
}

func TestAdjust_DeclarativeDowngrade(t *testing.T) {
	result := Adjust("Photosynthesis is defined as the process plants use to make food",
		prediction(types.C4, 0.85), English)
	assert.Equal(t, types.C1, result.Category)
	assert.Equal(t, ReasonDeclarative, result.AdjustmentReason)
}

func TestAdjust_UncertainHigherOrderDowngradesToUnderstand(t *testing.T) {
	result := Adjust("The committee reviewed the annual budget proposal carefully",
		prediction(types.C5, 0.55), English)
	assert.Equal(t, types.C2, result.Category)
	assert.Equal(t, ReasonUncertain, result.AdjustmentReason)
	assert.Equal(t, 0.80, result.Confidence)
}

func TestAdjust_CreateWithoutCreativeVerbFallsBack(t *testing.T) {
	result := Adjust("The novel approach transformed the testing workflow significantly",
		prediction(types.C6, 0.85), English)
	assert.Equal(t, types.C1, result.Category)
	assert.Equal(t, ReasonMissingImperative, result.AdjustmentReason)
}

func TestAdjust_KeepsMLPredictionWhenNothingFires(t *testing.T) {
	pred := prediction(types.C2, 0.88)
	pred.AllProbabilities = map[string]types.LabelProbability{
		"Understand": {Probability: 0.88, Predicted: true},
	}

	result := Adjust("Students enjoy reading about marine biology during summer break",
		pred, English)
	assert.Equal(t, types.C2, result.Category)
	assert.Equal(t, ReasonMLKept, result.AdjustmentReason)
	assert.Equal(t, 0.88, result.Confidence)
	assert.False(t, result.WasAdjusted)
	assert.Equal(t, pred.AllProbabilities, result.AllProbabilities)
}

func TestAdjust_NeverMutatesPrediction(t *testing.T) {
	pred := prediction(types.C3, 0.55)
	original := *pred

	Adjust("What is a variable?", pred, English)
	assert.Equal(t, original, *pred)
}

// Re-feeding an adjusted result as the prediction must not change the category
// again; the cascade is stable under its own output.
func TestAdjust_Idempotent(t *testing.T) {
	cases := []struct {
		text string
		pred *types.MLPrediction
	}{
		{"What is a variable?", prediction(types.C3, 0.55)},
		{"Analyze the following code snippet for bugs", prediction(types.C2, 0.80)},
		{"Design a mobile application for tracking daily expenses", prediction(types.C1, 0.90)},
		{"What is a SQL injection and how is it performed?", prediction(types.C4, 0.80)},
		{"Photosynthesis is defined as the process plants use to make food", prediction(types.C4, 0.85)},
		{"The committee reviewed the annual budget proposal carefully", prediction(types.C5, 0.55)},
		{"The novel approach transformed the testing workflow significantly", prediction(types.C6, 0.85)},
		{"Students enjoy reading about marine biology during summer break", prediction(types.C2, 0.88)},
	}
	for _, tc := range cases {
		first := Adjust(tc.text, tc.pred, English)
		second := Adjust(tc.text, prediction(first.Category, first.Confidence), English)
		require.Equal(t, first.Category, second.Category, "text %q", tc.text)
	}
}
