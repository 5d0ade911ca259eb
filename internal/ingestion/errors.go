package ingestion

import "fmt"

// ExtractionError indicates a resume document could not be parsed
// (corrupt, encrypted, or not a PDF at all).
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("PDF extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("PDF extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
