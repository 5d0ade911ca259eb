// Package ingestion converts resume documents into cleaned plain text and
// isolates labeled sections from it.
package ingestion

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText extracts text from every page of a PDF document and
// returns it cleaned. Pages that yield no text contribute an empty string.
// A document that cannot be parsed produces an ExtractionError.
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "unreadable document", Cause: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return CleanText(strings.Join(pages, "\n")), nil
}
