package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// SupportedExtensions lists the document formats the acquirer can decode
var SupportedExtensions = []string{".pdf", ".docx", ".txt", ".csv"}

// IsSupportedExtension reports whether ext (with leading dot, any case) is a
// decodable document format.
func IsSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// AcquireText decodes a supported document into raw text. The raw text is
// immutable once produced; everything downstream works on copies or slices.
// Unknown extensions fail with *UnsupportedFormatError, decode failures with
// *ExtractionError.
func AcquireText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return acquirePDF(path)
	case ".docx":
		return acquireDOCX(path)
	case ".txt":
		return acquirePlainText(path)
	case ".csv":
		return acquireCSV(path)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

// acquirePDF extracts the concatenated plain text of all pages
func acquirePDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Message: "failed to extract PDF text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", &ExtractionError{Message: "failed to read PDF text", Cause: err}
	}
	return buf.String(), nil
}

// acquirePlainText reads a text file as UTF-8, falling back to Latin-1 when the
// bytes are not valid UTF-8. The fallback is the one built-in decode retry.
func acquirePlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Message: "failed to read text file", Cause: err}
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", &ExtractionError{Message: "failed to decode text file as Latin-1", Cause: err}
	}
	return string(decoded), nil
}

// acquireCSV joins each record's fields with spaces, one record per line
func acquireCSV(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ExtractionError{Message: "failed to open CSV file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // exam exports are rarely rectangular

	var lines []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &ExtractionError{Message: "failed to parse CSV file", Cause: err}
		}
		line := strings.TrimSpace(strings.Join(record, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// acquireDOCX walks the OOXML document part and emits one line per paragraph
func acquireDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", &ExtractionError{Message: "failed to open DOCX archive", Cause: err}
	}
	defer func() { _ = archive.Close() }()

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", &ExtractionError{Message: "DOCX archive is missing word/document.xml"}
	}

	rc, err := document.Open()
	if err != nil {
		return "", &ExtractionError{Message: "failed to open DOCX document part", Cause: err}
	}
	defer func() { _ = rc.Close() }()

	return extractDOCXParagraphs(rc)
}

// extractDOCXParagraphs collects the character data of w:t runs, inserting a
// newline at each w:p paragraph boundary
func extractDOCXParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &ExtractionError{Message: "failed to parse DOCX XML", Cause: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
