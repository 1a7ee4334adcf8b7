// Package pdftext extracts plain text from uploaded PDF resumes.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF")

// Extractor pulls plain text out of an uploaded document.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}

// PDFExtractor reads text content from PDF bytes. The zero value is ready
// to use.
type PDFExtractor struct{}

// NewPDFExtractor returns a ready-to-use PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText returns the concatenated plain text of every page. Inputs that
// are empty or lack the PDF signature are rejected up front; documents whose
// pages yield no text at all return ErrNoTextContent.
func (e *PDFExtractor) ExtractText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", ErrEmptyInput
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return "", ErrUnsupportedFormat
	}

	// The underlying reader panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Message: fmt.Sprintf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to open document", Cause: err}
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single damaged page should not sink the document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	extracted := strings.TrimSpace(sb.String())
	if extracted == "" {
		return "", ErrNoTextContent
	}
	return extracted, nil
}
