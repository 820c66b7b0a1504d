package rules

import (
	"math"
	"strings"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// Adjust runs the cascade for one question. It is a pure function of its
// inputs: the prediction is never mutated and a result is always produced,
// even for pathological text, so one bad question cannot abort a batch.
//
// Stage order, first match wins:
//  1. absolute blockers force C1 outright
//  2. technical-term blockers route a higher-order prediction to C1 or C2
//  3. false-create and false-evaluate guards force C1
//  4. per-category force patterns, in the profile's category order, each
//     disqualified by its anti patterns and, where the profile gates higher
//     categories, by a missing imperative verb
//  5. declarative sentences downgrade a higher-order prediction to C1
//  6. uncertain higher-order predictions without an imperative downgrade to
//     C1 or C2
//  7. a surviving C6 without a creative verb falls back to C1
//  8. the ML prediction is kept
func Adjust(text string, pred *types.MLPrediction, p *Profile) *types.AdjustmentResult {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, b := range p.absoluteBlockers {
		if b.re.MatchString(lower) {
			return p.result(types.C1, b.confidence, ReasonAbsoluteBlocker, pred)
		}
	}

	if isHigherOrder(pred.Category) && anyMatch(p.technicalBlockers, lower) {
		target := types.C1
		if anyMatch(p.understandCues, lower) {
			target = types.C2
		}
		return p.result(target, baseConfidence[target], ReasonTechnicalTermBlocker, pred)
	}

	if pred.Category == types.C6 && anyMatch(p.falseCreate, lower) {
		return p.result(types.C1, baseConfidence[types.C1], ReasonFalseCreate, pred)
	}
	if (pred.Category == types.C5 || pred.Category == types.C6) && anyMatch(p.falseEvaluate, lower) {
		return p.result(types.C1, baseConfidence[types.C1], ReasonFalseEvaluate, pred)
	}

	if r := p.checkCategories(lower, pred); r != nil {
		return r
	}

	declarative := anyMatch(p.declarative, lower)

	if isHigherOrder(pred.Category) && declarative {
		return p.result(types.C1, baseConfidence[types.C1], ReasonDeclarative, pred)
	}

	if isHigherOrder(pred.Category) && pred.Confidence < p.tuning.UncertainCutoff && !p.hasImperative(lower) {
		target := types.C2
		if declarative {
			target = types.C1
		}
		return p.result(target, p.tuning.UncertainConfidence, ReasonUncertain, pred)
	}

	if pred.Category == types.C6 && !p.hasCreativeVerb(lower) {
		return p.result(types.C1, baseConfidence[types.C1], ReasonMissingImperative, pred)
	}

	return &types.AdjustmentResult{
		Category:         pred.Category,
		CategoryName:     pred.Category.Name(),
		Confidence:       pred.Confidence,
		AllProbabilities: pred.AllProbabilities,
		AdjustmentReason: ReasonMLKept,
		MLCategory:       pred.Category,
		MLConfidence:     pred.Confidence,
		WasAdjusted:      false,
	}
}

// checkCategories walks the profile's category order. A nil return means no
// category fired and the cascade continues.
func (p *Profile) checkCategories(lower string, pred *types.MLPrediction) *types.AdjustmentResult {
	for _, cr := range p.categories {
		if anyMatch(cr.anti, lower) {
			continue
		}

		patterns := countMatches(cr.force, lower)
		keywords := countKeywords(cr.keywords, lower)
		if patterns < 1 && keywords < 3 {
			continue
		}

		if p.imperativeGate && isHigherOrder(cr.category) && !p.hasImperative(lower) {
			continue
		}

		if pred.Category == cr.category {
			// Agreement never changes the category; it may only raise the
			// confidence.
			if keywords >= 1 {
				confidence := boostConfidence(cr.category, pred.Confidence, patterns, keywords, p.tuning)
				if confidence > pred.Confidence {
					return p.result(cr.category, confidence, confirmReason(cr.category), pred)
				}
			}
			return nil
		}

		confidence := boostConfidence(cr.category, pred.Confidence, patterns, keywords, p.tuning)
		return p.result(cr.category, confidence, forceReason(cr.category), pred)
	}
	return nil
}

func (p *Profile) hasImperative(lower string) bool {
	return p.imperativeRe != nil && p.imperativeRe.MatchString(lower)
}

func (p *Profile) hasCreativeVerb(lower string) bool {
	return p.creativeRe != nil && p.creativeRe.MatchString(lower)
}

func countKeywords(keywords []string, lower string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func (p *Profile) result(c types.Category, confidence float64, reason string, pred *types.MLPrediction) *types.AdjustmentResult {
	adjusted := c != pred.Category ||
		math.Abs(confidence-pred.Confidence) > p.tuning.AdjustedDelta

	return &types.AdjustmentResult{
		Category:         c,
		CategoryName:     c.Name(),
		Confidence:       confidence,
		AllProbabilities: pred.AllProbabilities,
		AdjustmentReason: reason,
		MLCategory:       pred.Category,
		MLConfidence:     pred.Confidence,
		WasAdjusted:      adjusted,
	}
}
