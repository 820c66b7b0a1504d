// Package rules implements the taxonomy rule-adjustment engine: a per-locale,
// priority-ordered cascade of linguistic rules that corrects systematic
// keyword-trap misclassifications in the ML gateway's output. The engine is a
// pure function over immutable compiled profiles and never errors.
package rules

import (
	"regexp"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// blockerRule is an absolute blocker: a pattern that unconditionally forces C1
// at its own fixed confidence, pre-empting every later stage.
type blockerRule struct {
	re         *regexp.Regexp
	confidence float64
}

// categoryRules groups the force patterns, anti patterns, and soft keywords of
// one category. Anti patterns disqualify the category even when a force
// pattern also matches.
type categoryRules struct {
	category types.Category
	force    []*regexp.Regexp
	anti     []*regexp.Regexp
	keywords []string
}

// Profile is the compiled rule set for one locale. Profiles are built once at
// process start and shared read-only across concurrent adjustments.
type Profile struct {
	Locale string

	absoluteBlockers  []blockerRule
	technicalBlockers []*regexp.Regexp
	understandCues    []*regexp.Regexp
	falseCreate       []*regexp.Regexp
	falseEvaluate     []*regexp.Regexp

	// categories holds the per-category force/anti groups in the locale's
	// evaluation order.
	categories []categoryRules

	// imperativeGate requires an imperative verb before any of C3..C6 can be
	// forced. Imperative matching uses imperativeRe; the C6 safety net uses
	// creativeRe.
	imperativeGate bool
	imperativeRe   *regexp.Regexp
	creativeRe     *regexp.Regexp

	declarative []*regexp.Regexp

	tuning Tuning
}

var profiles = map[string]*Profile{
	"en": English,
	"id": Indonesian,
}

// ForLocale returns the compiled profile for a locale code ("en", "id").
func ForLocale(locale string) (*Profile, bool) {
	p, ok := profiles[locale]
	return p, ok
}

// WithTuning returns a copy of the profile carrying the given tuning. The
// compiled pattern groups are shared with the receiver.
func (p *Profile) WithTuning(t Tuning) *Profile {
	clone := *p
	clone.tuning = t
	return &clone
}

// Locales lists the locale codes with a registered profile.
func Locales() []string {
	codes := make([]string, 0, len(profiles))
	for code := range profiles {
		codes = append(codes, code)
	}
	return codes
}

func compileAll(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?i)` + p)
	}
	return res
}

func anyMatch(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func countMatches(res []*regexp.Regexp, text string) int {
	n := 0
	for _, re := range res {
		if re.MatchString(text) {
			n++
		}
	}
	return n
}

func isHigherOrder(c types.Category) bool {
	switch c {
	case types.C3, types.C4, types.C5, types.C6:
		return true
	}
	return false
}
