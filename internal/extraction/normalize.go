package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	leadingNumRe  = regexp.MustCompile(`^\s*\d+\s*[.)]\s*`)
	digitsOnlyRe  = regexp.MustCompile(`^\d+$`)
	pageMarkerRe  = regexp.MustCompile(`(?i)^(?:page|halaman)\s+\d+`)
	pageRatioRe   = regexp.MustCompile(`^\d+\s*/\s*\d+$`)
	pageOfRe      = regexp.MustCompile(`(?i)^\d+\s+of\s+\d+$`)
	boilerplateRe = regexp.MustCompile(`(?i)(?:©|copyright|header|footer|nama\s*:|kelas\s*:)`)
)

// NormalizeQuestion canonicalizes one question string: whitespace runs collapse
// to single spaces, leading "N." / "N)" numbering is stripped, and trailing
// punctuation is removed except for '?', ')' and ']'.
func NormalizeQuestion(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = leadingNumRe.ReplaceAllString(text, "")
	text = strings.TrimRightFunc(text, func(r rune) bool {
		if r == '?' || r == ')' || r == ']' {
			return false
		}
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
	return strings.TrimSpace(text)
}

// IsHeaderFooter reports whether a line or paragraph is layout noise rather than
// question content: bare page numbers, "page N" / "N/M" markers, all-caps
// headings, boilerplate markers, or anything shorter than 5 characters.
func IsHeaderFooter(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < 5 {
		return true
	}
	if digitsOnlyRe.MatchString(line) {
		return true
	}
	if pageMarkerRe.MatchString(line) || pageRatioRe.MatchString(line) || pageOfRe.MatchString(line) {
		return true
	}
	if boilerplateRe.MatchString(line) {
		return true
	}
	return isAllCapsRun(line)
}

// isAllCapsRun reports whether the line is an uppercase heading: at least five
// letters, none of them lowercase
func isAllCapsRun(line string) bool {
	letters := 0
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 5
}

// dedupeCaseInsensitive removes later case-insensitive duplicates, preserving order
func dedupeCaseInsensitive(questions []string) []string {
	seen := make(map[string]bool, len(questions))
	result := make([]string, 0, len(questions))
	for _, q := range questions {
		key := strings.ToLower(q)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, q)
	}
	return result
}
