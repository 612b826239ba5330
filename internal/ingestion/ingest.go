package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// SourceKind identifies how a source descriptor was interpreted.
type SourceKind string

// Source kinds.
const (
	SourceURL        SourceKind = "url"
	SourceScreenshot SourceKind = "screenshot"
	SourcePDF        SourceKind = "pdf"
	SourceTextFile   SourceKind = "text_file"
	SourceRawText    SourceKind = "raw_text"
)

var screenshotExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
}

var textExtensions = map[string]bool{
	".txt": true, ".md": true,
}

// Result is the extracted job-posting text plus source metadata. Downstream
// components consume Text only; Company and Position are cosmetic hints.
type Result struct {
	Text     string     `json:"text"`
	Kind     SourceKind `json:"source_kind"`
	Method   string     `json:"method"`
	Company  string     `json:"company_hint,omitempty"`
	Position string     `json:"position_hint,omitempty"`
}

// Options configures source extraction.
type Options struct {
	// UseBrowser enables headless-browser fallback for SPA job boards.
	UseBrowser bool
	// Verbose logs extraction details.
	Verbose bool
	// OCR overrides the default OCR extractor (tests inject a fake runner).
	OCR *OCRExtractor
}

// ExtractFromSource detects the source type of the descriptor and extracts
// job-posting text from it. A URL is fetched and stripped to readable text;
// an existing file is read by extension (screenshot, PDF, or plain text);
// anything else is treated as raw job text. The extracted text is cleaned
// and annotated with company/position hints.
func ExtractFromSource(ctx context.Context, source string, opts Options) (*Result, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptySource
	}

	var result *Result
	var err error

	switch {
	case isURL(source):
		result, err = extractFromURL(ctx, source, opts)
	case isFile(source):
		ext := strings.ToLower(filepath.Ext(source))
		switch {
		case screenshotExtensions[ext]:
			result, err = extractFromScreenshot(ctx, source, opts)
		case ext == ".pdf":
			result, err = extractFromPDF(source)
		case textExtensions[ext]:
			result, err = extractFromTextFile(source)
		default:
			return nil, &ExtractionError{
				Source:  source,
				Message: "unsupported file extension " + ext,
			}
		}
	default:
		result = &Result{
			Text:   CleanText(source),
			Kind:   SourceRawText,
			Method: "direct input",
		}
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(result.Text) == "" {
		return nil, &ExtractionError{Source: source, Message: "no text content extracted"}
	}

	result.Company = ExtractCompanyHint(result.Text)
	result.Position = ExtractPositionHint(result.Text)
	return result, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func isFile(source string) bool {
	info, err := os.Stat(source)
	return err == nil && !info.IsDir()
}

// extractFromTextFile reads a plain text or markdown file.
func extractFromTextFile(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractionError{Source: path, Message: "failed to read file", Cause: err}
	}
	return &Result{
		Text:   CleanText(string(content)),
		Kind:   SourceTextFile,
		Method: "direct file read",
	}, nil
}
