package extraction

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedExtension(t *testing.T) {
	assert.True(t, IsSupportedExtension(".pdf"))
	assert.True(t, IsSupportedExtension(".DOCX"))
	assert.True(t, IsSupportedExtension(".txt"))
	assert.True(t, IsSupportedExtension(".csv"))
	assert.False(t, IsSupportedExtension(".doc"))
	assert.False(t, IsSupportedExtension(""))
}

func TestAcquireText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam.txt")
	content := "1. What is a variable?\n2. Explain the difference between X and Y\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := AcquireText(path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestAcquireText_Latin1Fallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam.txt")
	// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0o644))

	text, err := AcquireText(path)
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestAcquireText_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam.csv")
	content := "1,What is a variable?\n2,Explain the difference between X and Y\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := AcquireText(path)
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1 What is a variable?", lines[0])
	assert.Equal(t, "2 Explain the difference between X and Y", lines[1])
}

func TestAcquireText_UnsupportedFormat(t *testing.T) {
	_, err := AcquireText("exam.doc")
	require.Error(t, err)

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ".doc", formatErr.Extension)
}

func TestExtractDOCXParagraphs(t *testing.T) {
	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>1. What is a variable?</w:t></w:r></w:p>
    <w:p><w:r><w:t>2. Explain the difference </w:t></w:r><w:r><w:t>between X and Y</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := extractDOCXParagraphs(strings.NewReader(document))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1. What is a variable?", lines[0])
	assert.Equal(t, "2. Explain the difference between X and Y", lines[1])
}
