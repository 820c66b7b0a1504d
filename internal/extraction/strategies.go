package extraction

import (
	"regexp"
	"strings"
)

// Strategy names double as provenance tags on candidate lists
const (
	StrategyNumberedAnswers = "numbered_with_answers"
	StrategyNumberedSimple  = "numbered_simple"
	StrategyQuestionMarks   = "question_marks"
	StrategyParagraphs      = "paragraphs"
)

var (
	numberedLineRe  = regexp.MustCompile(`(?m)^\s*\d{1,3}[.)]\s+`)
	numberedStartRe = regexp.MustCompile(`^\s*\d{1,3}[.)]\s+`)
	answerMarkerRe  = regexp.MustCompile(`(?i)\b(?:jawaban|answer)\s*:`)
	choiceLineRe    = regexp.MustCompile(`(?i)^\s*[a-e][.)]\s`)
	inlineChoiceRe  = regexp.MustCompile(`(?i)\s[a-e][.)]\s`)
	questionRunRe   = regexp.MustCompile(`[^.!?]+\?`)
	paragraphGapRe  = regexp.MustCompile(`\n\s*\n`)
)

type strategy struct {
	name string
	fn   func(string) []string
}

// strategies returns the four strategies in evaluation order. The order is part
// of the selection contract: score ties keep the earlier strategy.
func (s *Segmenter) strategies() []strategy {
	return []strategy{
		{StrategyNumberedAnswers, s.numberedWithAnswers},
		{StrategyNumberedSimple, s.numberedSimple},
		{StrategyQuestionMarks, s.questionMarkDelimited},
		{StrategyParagraphs, s.paragraphSplit},
	}
}

// numberedWithAnswers matches leading "N." / "N)" items and captures text up to
// the next numbered item, stripping any trailing answer-choice block and
// "Answer:" / "Jawaban:" tail.
func (s *Segmenter) numberedWithAnswers(text string) []string {
	starts := numberedLineRe.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return nil
	}

	var questions []string
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := text[loc[1]:end]

		if m := answerMarkerRe.FindStringIndex(block); m != nil {
			block = block[:m[0]]
		}
		block = stripChoiceBlock(block)

		q := NormalizeQuestion(block)
		if s.accept(q, s.tuning.MinQuestionLen) {
			questions = append(questions, q)
		}
	}
	return dedupeCaseInsensitive(questions)
}

// stripChoiceBlock removes answer-choice lines ("A." – "E.") and cuts the block
// at the first inline choice marker
func stripChoiceBlock(block string) string {
	lines := strings.Split(block, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if choiceLineRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	joined := strings.Join(kept, "\n")

	if m := inlineChoiceRe.FindStringIndex(joined); m != nil {
		joined = joined[:m[0]]
	}
	return joined
}

// numberedSimple is line-oriented: a line starting with "N." / "N)" begins a new
// question and subsequent lines are space-joined onto it. Choice lines and
// header/footer noise are skipped rather than merged.
func (s *Segmenter) numberedSimple(text string) []string {
	var questions []string
	var current strings.Builder
	active := false

	flush := func() {
		if !active {
			return
		}
		q := NormalizeQuestion(current.String())
		if s.accept(q, s.tuning.MinQuestionLen) {
			questions = append(questions, q)
		}
		current.Reset()
		active = false
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case numberedStartRe.MatchString(line):
			flush()
			current.WriteString(numberedStartRe.ReplaceAllString(line, ""))
			active = true
		case choiceLineRe.MatchString(line):
			continue
		case IsHeaderFooter(line):
			continue
		case active:
			current.WriteString(" ")
			current.WriteString(line)
		}
	}
	flush()

	return dedupeCaseInsensitive(questions)
}

// questionMarkDelimited splits on maximal runs of non-terminator characters
// ending in '?'
func (s *Segmenter) questionMarkDelimited(text string) []string {
	var questions []string
	for _, run := range questionRunRe.FindAllString(text, -1) {
		q := NormalizeQuestion(run)
		if s.accept(q, s.tuning.MinQuestionLenLoose) {
			questions = append(questions, q)
		}
	}
	return dedupeCaseInsensitive(questions)
}

// paragraphSplit treats blank-line separated paragraphs as questions, accepting
// only mid-sized paragraphs. A paragraph holding several numbered items is a
// question list, not one question, and is left to the numbered strategies.
func (s *Segmenter) paragraphSplit(text string) []string {
	var questions []string
	for _, para := range paragraphGapRe.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" || IsHeaderFooter(para) {
			continue
		}
		if len(numberedLineRe.FindAllStringIndex(para, -1)) >= 2 {
			continue
		}
		q := NormalizeQuestion(para)
		if len(q) > s.tuning.MinParagraphLen && len(q) < s.tuning.MaxParagraphLen {
			questions = append(questions, q)
		}
	}
	return dedupeCaseInsensitive(questions)
}

// accept is the shared per-question filter for the non-paragraph strategies
func (s *Segmenter) accept(q string, minLen int) bool {
	return len(q) > minLen && !IsHeaderFooter(q)
}
