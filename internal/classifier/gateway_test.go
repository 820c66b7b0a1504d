package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/bloom-classifier/internal/types"
)

func TestPredictionFromProbabilities_ArgmaxAndThreshold(t *testing.T) {
	pred := PredictionFromProbabilities(map[string]float64{
		"Remember":   0.10,
		"Understand": 0.20,
		"Apply":      0.15,
		"Analyze":    0.82,
		"Evaluate":   0.55,
		"Create":     0.05,
	})

	assert.Equal(t, types.C4, pred.Category)
	assert.Equal(t, "Analyze", pred.CategoryName)
	assert.Equal(t, 0.82, pred.Confidence)
	require.Len(t, pred.AllProbabilities, 6)

	assert.True(t, pred.AllProbabilities["Analyze"].Predicted)
	assert.True(t, pred.AllProbabilities["Evaluate"].Predicted)
	assert.False(t, pred.AllProbabilities["Understand"].Predicted)
}

func TestPredictionFromProbabilities_IgnoresUnknownLabels(t *testing.T) {
	pred := PredictionFromProbabilities(map[string]float64{
		"Remember": 0.30,
		"Invent":   0.99,
	})

	assert.Equal(t, types.C1, pred.Category)
	assert.Equal(t, 0.30, pred.Confidence)
	require.Len(t, pred.AllProbabilities, 1)
}

func TestPredictionFromProbabilities_EmptyDefaultsToRemember(t *testing.T) {
	pred := PredictionFromProbabilities(nil)

	assert.Equal(t, types.C1, pred.Category)
	assert.Equal(t, 0.0, pred.Confidence)
	assert.Empty(t, pred.AllProbabilities)
}
