package extraction

import (
	"fmt"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// Tuning holds the empirically calibrated segmentation constants. The values
// carry no derived justification; they were preserved from manual calibration
// runs and are exposed as named, overridable configuration rather than being
// re-inferred.
type Tuning struct {
	// DuplicateTriggerRatio is the fraction of non-empty lines that must qualify
	// as half-duplicated before the cleaning transform applies globally.
	DuplicateTriggerRatio float64
	// HalfSimilarity is the character-position similarity above which the two
	// halves of a line count as duplicates.
	HalfSimilarity float64
	// MinDuplicateLineLen is the minimum line length considered for half-splitting.
	MinDuplicateLineLen int

	// MinQuestionLen is the minimum accepted question length for the numbered
	// strategies; MinQuestionLenLoose applies to the looser strategies.
	MinQuestionLen      int
	MinQuestionLenLoose int
	// MinParagraphLen and MaxParagraphLen bound the paragraph strategy
	// (exclusive on both ends).
	MinParagraphLen int
	MaxParagraphLen int

	// ShortQuestionLen and LongQuestionLen bound the scoring penalty for
	// suspiciously short or long questions.
	ShortQuestionLen int
	LongQuestionLen  int
}

// DefaultTuning returns the calibrated defaults
func DefaultTuning() Tuning {
	return Tuning{
		DuplicateTriggerRatio: 0.30,
		HalfSimilarity:        0.90,
		MinDuplicateLineLen:   20,
		MinQuestionLen:        15,
		MinQuestionLenLoose:   20,
		MinParagraphLen:       20,
		MaxParagraphLen:       500,
		ShortQuestionLen:      15,
		LongQuestionLen:       500,
	}
}

// Segmenter carves raw document text into an ordered list of question strings.
// All regular expressions are compiled once at package init; a Segmenter is
// cheap, immutable after construction, and safe for concurrent use.
type Segmenter struct {
	tuning Tuning
}

// NewSegmenter creates a Segmenter with the given tuning
func NewSegmenter(tuning Tuning) *Segmenter {
	return &Segmenter{tuning: tuning}
}

// Result is the outcome of segmenting one document
type Result struct {
	Questions []string `json:"questions"`
	Strategy  string   `json:"strategy"`
	Score     float64  `json:"score"`
	// Warnings records strategies that failed internally; a failed strategy is
	// skipped, never fatal.
	Warnings []string `json:"warnings,omitempty"`
}

// Segment runs duplicate cleaning, then all four strategies, and selects the
// best-scoring candidate list. Selection is deterministic: strategies are
// evaluated in a fixed order and only a strictly higher score displaces the
// current winner, so ties keep the earlier strategy.
func (s *Segmenter) Segment(text string) *Result {
	cleaned := s.CleanDuplicateLines(text)

	result := &Result{}
	first := true
	for _, strat := range s.strategies() {
		questions, err := s.runStrategy(strat, cleaned)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("strategy %s failed: %v", strat.name, err))
			continue
		}

		candidate := types.CandidateList{
			Strategy:  strat.name,
			Questions: questions,
			Score:     s.Score(questions),
		}
		if first || candidate.Score > result.Score {
			result.Questions = candidate.Questions
			result.Strategy = candidate.Strategy
			result.Score = candidate.Score
			first = false
		}
	}

	return result
}

// runStrategy executes one strategy, converting panics into ordinary errors so
// a faulty strategy cannot abort selection of a working one
func (s *Segmenter) runStrategy(strat strategy, text string) (questions []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			questions = nil
			err = fmt.Errorf("strategy panicked: %v", r)
		}
	}()
	return strat.fn(text), nil
}
