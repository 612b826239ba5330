// Package ingestion extracts job-posting text from heterogeneous sources:
// URLs, PDFs, screenshots (OCR), text files, and raw text.
package ingestion

import "fmt"

// Sentinel errors for the URL ingestion path.
var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
	// ErrEmptySource is returned when the source descriptor is empty.
	ErrEmptySource = fmt.Errorf("empty source")
)

// ExtractionError represents a failure to extract text from a source.
type ExtractionError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Source, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
