package ingestion

import (
	"github.com/ledongthuc/pdf"
)

// extractFromPDF extracts text from a PDF job posting.
func extractFromPDF(path string) (*Result, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &ExtractionError{Source: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = file.Close() }()

	var text string
	totalPages := reader.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text += content + "\n"
	}

	return &Result{
		Text:   CleanText(text),
		Kind:   SourcePDF,
		Method: "PDF text extraction",
	}, nil
}
