package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses whitespace runs", "What  is \t a\nvariable?", "What is a variable?"},
		{"strips leading dot numbering", "12. Explain the difference between X and Y", "Explain the difference between X and Y"},
		{"strips leading paren numbering", " 3) Describe the process", "Describe the process"},
		{"keeps question mark", "What is recursion?", "What is recursion?"},
		{"trims trailing punctuation", "Explain the algorithm.,", "Explain the algorithm"},
		{"keeps closing bracket", "Evaluate the expression (a+b]", "Evaluate the expression (a+b]"},
		{"indonesian question", "5. Apa yang dimaksud dengan fotosintesis?", "Apa yang dimaksud dengan fotosintesis?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeQuestion(tt.input))
		})
	}
}

func TestIsHeaderFooter(t *testing.T) {
	noise := []string{
		"42",
		"Page 3",
		"Halaman 12",
		"3/10",
		"3 of 10",
		"UJIAN AKHIR SEMESTER",
		"© 2024 Example University",
		"Nama: ____",
		"abc",
	}
	for _, line := range noise {
		assert.True(t, IsHeaderFooter(line), "expected noise: %q", line)
	}

	content := []string{
		"What is a variable?",
		"Jelaskan proses fotosintesis pada tumbuhan",
		"Explain WHY the result differs",
	}
	for _, line := range content {
		assert.False(t, IsHeaderFooter(line), "expected content: %q", line)
	}
}

func TestDedupeCaseInsensitive(t *testing.T) {
	questions := []string{
		"What is a variable?",
		"WHAT IS A VARIABLE?",
		"Explain the difference",
		"What is a variable?",
	}
	assert.Equal(t, []string{"What is a variable?", "Explain the difference"},
		dedupeCaseInsensitive(questions))
}
