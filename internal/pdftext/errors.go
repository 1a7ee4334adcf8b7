package pdftext

import (
	"errors"
	"fmt"
)

// Sentinel errors for inputs rejected before extraction is attempted, and
// for documents that extract to nothing.
var (
	ErrUnsupportedFormat = errors.New("only PDF files are accepted")
	ErrEmptyInput        = errors.New("empty file")
	ErrNoTextContent     = errors.New("no text content found in PDF")
)

// ExtractionError wraps a failure inside the PDF reader itself, as opposed
// to a rejected input.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf extraction: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf extraction: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
