package extraction

import "strings"

// CleanDuplicateLines collapses doubled text runs produced by faulty extraction.
// Some PDF extractors emit every line twice, concatenated: "What is X?What is X?".
// For each non-empty line of at least MinDuplicateLineLen characters the line is
// split in half; when the halves are byte-identical, or their character-position
// similarity exceeds HalfSimilarity, the line qualifies as duplicated and is
// replaced by its first half. The transform applies globally only when more than
// DuplicateTriggerRatio of non-empty lines qualify, so naturally repetitive but
// non-duplicated documents pass through untouched.
func (s *Segmenter) CleanDuplicateLines(text string) string {
	lines := strings.Split(text, "\n")

	nonEmpty := 0
	duplicated := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if s.isHalfDuplicated(trimmed) {
			duplicated++
		}
	}

	if nonEmpty == 0 || float64(duplicated)/float64(nonEmpty) <= s.tuning.DuplicateTriggerRatio {
		return text
	}

	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && s.isHalfDuplicated(trimmed) {
			half := []rune(trimmed)
			cleaned = append(cleaned, strings.TrimSpace(string(half[:len(half)/2])))
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}

// isHalfDuplicated reports whether the line's first half repeats as its second half
func (s *Segmenter) isHalfDuplicated(line string) bool {
	runes := []rune(line)
	if len(runes) < s.tuning.MinDuplicateLineLen {
		return false
	}

	mid := len(runes) / 2
	first, second := runes[:mid], runes[mid:]
	if string(first) == string(second) {
		return true
	}
	return positionSimilarity(first, second) > s.tuning.HalfSimilarity
}

// positionSimilarity is the count of matching characters at equal positions
// divided by the longer half's length
func positionSimilarity(a, b []rune) float64 {
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	if longer == 0 {
		return 0
	}

	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	matches := 0
	for i := 0; i < shorter; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(longer)
}
