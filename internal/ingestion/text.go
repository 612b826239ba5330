package ingestion

import (
	"regexp"
	"strings"
)

var (
	excessBlankLines = regexp.MustCompile(`\n\n\n+`)
	multiSpace       = regexp.MustCompile(`[ \t]+`)
	anyWhitespace    = regexp.MustCompile(`\s+`)
)

// CleanText normalizes extracted text while preserving line structure:
// line endings become LF, runs of spaces collapse, and blank-line runs are
// capped at two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, multiSpace.ReplaceAllString(strings.TrimSpace(line), " "))
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// CleanOCRText cleans noisy OCR output. OCR text arrives with arbitrary line
// breaks mid-sentence, so all whitespace is collapsed to single spaces.
func CleanOCRText(text string) string {
	return strings.TrimSpace(anyWhitespace.ReplaceAllString(text, " "))
}
