// Package extraction turns uploaded exam documents into a clean, ordered list of
// discrete question strings: format decoding, duplicate-text cleaning, multi-strategy
// segmentation with quality scoring, and final validation.
package extraction

import "fmt"

// UnsupportedFormatError indicates a document extension the acquirer cannot decode.
// It is fatal for the document; there is no retry.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return "unsupported format: file has no extension"
	}
	return fmt.Sprintf("unsupported format: %s", e.Extension)
}

// ExtractionError indicates a document that matched a supported extension but
// could not be decoded (corrupt archive, unreadable encoding, broken PDF).
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
