package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const numberedExam = "1. What is a variable? a. x b. y\n" +
	"2. Explain the difference between X and Y\n" +
	"3. Analyze the following code snippet for bugs"

func TestSegment_NumberedExamWithChoices(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	result := s.Segment(numberedExam)
	require.Len(t, result.Questions, 3)
	assert.Equal(t, StrategyNumberedAnswers, result.Strategy)
	assert.Empty(t, result.Warnings)

	// The choice block "a. x b. y" is stripped from the first question
	assert.Equal(t, "What is a variable?", result.Questions[0])
	assert.Equal(t, "Explain the difference between X and Y", result.Questions[1])
	assert.Equal(t, "Analyze the following code snippet for bugs", result.Questions[2])
}

func TestSegment_Deterministic(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	first := s.Segment(numberedExam)
	second := s.Segment(numberedExam)
	assert.Equal(t, first, second)
}

func TestNumberedWithAnswers_CutsAnswerMarker(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	text := "1. What is the capital of France?\nJawaban: Paris\n" +
		"2. Explain how rivers shape valleys over time"
	questions := s.numberedWithAnswers(text)
	require.Len(t, questions, 2)
	assert.Equal(t, "What is the capital of France?", questions[0])
	assert.Equal(t, "Explain how rivers shape valleys over time", questions[1])
}

func TestNumberedSimple_JoinsContinuationLines(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	text := "1. Explain the difference between\nsupervised and unsupervised learning\n" +
		"A. option one\n" +
		"2. Describe how gradient descent works"
	questions := s.numberedSimple(text)
	require.Len(t, questions, 2)
	assert.Equal(t, "Explain the difference between supervised and unsupervised learning", questions[0])
	assert.Equal(t, "Describe how gradient descent works", questions[1])
}

func TestQuestionMarkDelimited(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	text := "Some intro sentence. What causes seasonal temperature changes? " +
		"How does ocean current affect climate? The end."
	questions := s.questionMarkDelimited(text)
	require.Len(t, questions, 2)
	assert.Equal(t, "What causes seasonal temperature changes?", questions[0])
	assert.Equal(t, "How does ocean current affect climate?", questions[1])
}

func TestParagraphSplit(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	text := "Describe the process of cellular respiration in detail\n\n" +
		"PAGE HEADER\n\n" +
		"Compare the structures of plant and animal cells"
	questions := s.paragraphSplit(text)
	require.Len(t, questions, 2)
	assert.Equal(t, "Describe the process of cellular respiration in detail", questions[0])
	assert.Equal(t, "Compare the structures of plant and animal cells", questions[1])
}

func TestParagraphSplit_SkipsEmbeddedNumberedList(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	// A numbered list without blank lines is one paragraph block but not one question
	questions := s.paragraphSplit(numberedExam)
	assert.Empty(t, questions)
}

func TestSegment_CleansDoubledLinesBeforeSplitting(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	text := "1. What is an operating system kernel?1. What is an operating system kernel?\n" +
		"2. Explain how the scheduler allocates time2. Explain how the scheduler allocates time\n" +
		"3. Describe what virtual memory provides3. Describe what virtual memory provides"
	result := s.Segment(text)
	require.Len(t, result.Questions, 3)
	assert.Equal(t, "What is an operating system kernel?", result.Questions[0])
	assert.Equal(t, "Explain how the scheduler allocates time", result.Questions[1])
	assert.Equal(t, "Describe what virtual memory provides", result.Questions[2])
}
