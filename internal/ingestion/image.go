package ingestion

import (
	"context"
	"log"
)

// extractFromScreenshot OCRs a job posting screenshot.
func extractFromScreenshot(ctx context.Context, path string, opts Options) (*Result, error) {
	extractor := opts.OCR
	if extractor == nil {
		extractor = NewOCRExtractor(OCRConfig{}, nil)
	}

	if opts.Verbose {
		log.Printf("[VERBOSE] Running OCR on screenshot: %s", path)
	}

	text, err := extractor.ExtractText(ctx, path)
	if err != nil {
		return nil, &ExtractionError{Source: path, Message: "OCR failed", Cause: err}
	}

	return &Result{
		Text:   text,
		Kind:   SourceScreenshot,
		Method: "OCR",
	}, nil
}
