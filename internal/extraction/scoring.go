package extraction

import (
	"regexp"
	"strings"
)

// questionWordRe matches the interrogative words counted by the scorer,
// English and Indonesian
var questionWordRe = regexp.MustCompile(`\b(?:what|how|why|when|where|who|which|apa|bagaimana|mengapa|kapan|dimana|siapa)\b`)

// Score rates a candidate list so competing strategies can be compared.
// Components: candidate volume, mean length in a plausible exam-question band,
// length variety, a penalty for very short or very long candidates, and the
// fraction of candidates containing an interrogative word.
func (s *Segmenter) Score(questions []string) float64 {
	if len(questions) == 0 {
		return 0
	}

	count := float64(len(questions))
	score := count / 10
	if score > 5 {
		score = 5
	}

	var total int
	lengths := make(map[int]struct{}, len(questions))
	short, long := 0, 0
	interrogative := 0

	for _, q := range questions {
		n := len(q)
		total += n
		lengths[n] = struct{}{}
		if n < s.tuning.ShortQuestionLen {
			short++
		}
		if n > s.tuning.LongQuestionLen {
			long++
		}
		if questionWordRe.MatchString(strings.ToLower(q)) {
			interrogative++
		}
	}

	mean := float64(total) / count
	switch {
	case mean >= 30 && mean <= 200:
		score += 3.0
	case mean >= 20 && mean <= 300:
		score += 1.5
	}

	if float64(len(lengths)) > count/2 {
		score += 2.0
	}

	score -= 0.5 * float64(short+long)
	score += 2.0 * float64(interrogative) / count

	return score
}
