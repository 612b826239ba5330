package observability

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nworkman/resume-retool/internal/ingestion"
	"github.com/nworkman/resume-retool/internal/types"
)

func TestPrintExtraction_ShowsSourceAndHints(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintExtraction(&ingestion.Result{
		Text:     "Lead delivery teams across the org.",
		Kind:     ingestion.SourceURL,
		Method:   "HTTP + HTML extraction",
		Company:  "Centene",
		Position: "Program Director",
	})

	output := buf.String()
	assert.Contains(t, output, "JOB POSTING EXTRACTED")
	assert.Contains(t, output, "Company:  Centene")
	assert.Contains(t, output, "Position: Program Director")
	assert.Contains(t, output, "35 chars")
}

func TestPrintExtraction_UnknownHints(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintExtraction(&ingestion.Result{Text: "posting", Kind: ingestion.SourceRawText, Method: "direct input"})

	assert.Contains(t, buf.String(), "Company:  Unknown")
	assert.Contains(t, buf.String(), "Position: Unknown")
}

func TestPrintExtraction_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExtraction(nil)
	assert.Empty(t, buf.String())
}

func TestPrintKeywords_ShowsCategories(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintKeywords(&types.CategorizedKeywords{
		Required: []string{"program management", "vendor management"},
		Tools:    []string{"jira"},
	})

	output := buf.String()
	assert.Contains(t, output, "EXTRACTED KEYWORDS")
	assert.Contains(t, output, "Total keywords: 3")
	assert.Contains(t, output, "Required:")
	assert.Contains(t, output, "• program management")
	assert.Contains(t, output, "Tools:")
	assert.NotContains(t, output, "Preferred:")
}

func TestPrintKeywords_TruncatesLongCategories(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	required := make([]string, 8)
	for i := range required {
		required[i] = fmt.Sprintf("skill-%d", i)
	}
	printer.PrintKeywords(&types.CategorizedKeywords{Required: required})

	output := buf.String()
	assert.Contains(t, output, "• skill-4")
	assert.NotContains(t, output, "• skill-5")
	assert.Contains(t, output, "... and 3 more")
}

func TestPrintKeywords_EmptyKeywords(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords(&types.CategorizedKeywords{})
	assert.Empty(t, buf.String())
}

func TestPrintReport_FullSummary(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintReport(&types.OptimizationReport{
		TotalKeywords:   4,
		MatchedKeywords: 1,
		MatchRate:       0.25,
		Matches: []types.KeywordMatch{
			{Keyword: "program management", Evidence: "Program Management", Kind: types.MatchExact, Confidence: 1.0},
		},
		UnmatchedForbidden: []types.RejectedKeyword{
			{Keyword: "PMP", Reason: "No direct experience - cannot fabricate"},
		},
		Suggestions: []types.Suggestion{
			{MissingKeyword: "budget", Guidance: "Quantify budget ownership in a bullet."},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "OPTIMIZATION SUMMARY")
	assert.Contains(t, output, "Match rate: 25% (1 of 4 keywords)")
	assert.Contains(t, output, "program management → Program Management")
	assert.Contains(t, output, "For 'budget'")
	assert.Contains(t, output, "Cannot add (no experience):")
	assert.Contains(t, output, "PMP: No direct experience - cannot fabricate")
	assert.Contains(t, output, "Integrity check")
}

func TestPrintReport_NilReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)
	assert.Empty(t, buf.String())
}
