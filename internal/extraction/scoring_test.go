package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyListIsZero(t *testing.T) {
	s := NewSegmenter(DefaultTuning())
	assert.Equal(t, 0.0, s.Score(nil))
	assert.Equal(t, 0.0, s.Score([]string{}))
}

func TestScore_RewardsIdealLengthBand(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	// 3 questions, mean length in [30, 200], distinct lengths, all interrogative
	ideal := []string{
		"What is the difference between a stack and a queue?",
		"How does a hash table resolve collisions internally?",
		"Why is binary search faster than linear search here?",
	}
	// Same count, but each question is far too long
	long := []string{
		strings.Repeat("analyze the following scenario and ", 20),
		strings.Repeat("evaluate the proposed architecture for ", 20),
		strings.Repeat("design a complete replacement system to ", 20),
	}
	assert.Greater(t, s.Score(ideal), s.Score(long))
}

func TestScore_PenalizesShortQuestions(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	clean := []string{
		"Explain the process of photosynthesis step by step",
		"Describe the function of mitochondria in a cell today",
		"Compare plant and animal cell structures in detail",
	}
	withShort := append([]string{"x?", "y?"}, clean...)
	assert.Greater(t, s.Score(clean), s.Score(withShort))
}

func TestScore_CountsInterrogativeWordsAnywhere(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	interrogative := []string{
		"Explain what a compiler does during the parsing stage",
		"Describe how a linker resolves external symbol references",
	}
	declarative := []string{
		"Explain a compiler during its main text parsing stage.",
		"Describe a linker resolving external symbol references",
	}
	assert.Greater(t, s.Score(interrogative), s.Score(declarative))
}

func TestScore_BilingualInterrogatives(t *testing.T) {
	s := NewSegmenter(DefaultTuning())

	indonesian := []string{
		"Jelaskan bagaimana tumbuhan menghasilkan energi dari cahaya",
		"Uraikan mengapa daun berubah warna pada musim gugur",
	}
	plain := []string{
		"Jelaskan proses tumbuhan menghasilkan energi dari cahaya.",
		"Uraikan proses daun berubah warna pada musim gugur itu",
	}
	assert.Greater(t, s.Score(indonesian), s.Score(plain))
}
