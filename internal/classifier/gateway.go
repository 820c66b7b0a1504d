// Package classifier defines the classification gateway contract and its
// Gemini-backed implementation. The gateway returns a probability distribution
// over the six taxonomy labels for each question; interpreting or correcting
// that distribution is the rule engine's job, not the gateway's.
package classifier

import (
	"context"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// Threshold is the per-label probability above which a label counts as
// predicted.
const Threshold = 0.5

// DefaultBatchSize bounds how many questions go to the backend per request.
const DefaultBatchSize = 8

// Gateway is the external classification dependency. Implementations have an
// explicit load/ready lifecycle and must preserve input order in batch calls.
type Gateway interface {
	// Load prepares the backend. It must be called before Classify.
	Load(ctx context.Context) error
	// Ready reports whether Load has succeeded.
	Ready() bool
	// Classify returns the label distribution for one question.
	Classify(ctx context.Context, text string) (*types.MLPrediction, error)
	// ClassifyBatch classifies texts in order; result i corresponds to texts[i].
	ClassifyBatch(ctx context.Context, texts []string) ([]*types.MLPrediction, error)
	// Close releases backend resources.
	Close() error
}

// PredictionFromProbabilities builds a prediction from a label→probability
// map: the primary category is the argmax label and each entry is flagged
// predicted at the threshold. Unknown labels are ignored.
func PredictionFromProbabilities(probs map[string]float64) *types.MLPrediction {
	all := make(map[string]types.LabelProbability, len(probs))

	best := types.C1
	bestProb := -1.0
	for label, p := range probs {
		c, ok := types.CategoryForLabel(label)
		if !ok {
			continue
		}
		all[label] = types.LabelProbability{
			Probability: p,
			Predicted:   p >= Threshold,
		}
		if p > bestProb {
			best = c
			bestProb = p
		}
	}
	if bestProb < 0 {
		bestProb = 0
	}

	return &types.MLPrediction{
		Category:         best,
		CategoryName:     best.Name(),
		Confidence:       bestProb,
		AllProbabilities: all,
	}
}
