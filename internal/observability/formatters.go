// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/nworkman/resume-retool/internal/ingestion"
	"github.com/nworkman/resume-retool/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction outputs a summary of the ingested job posting.
func (p *Printer) PrintExtraction(result *ingestion.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s (%s)\n", result.Kind, result.Method))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", orUnknown(result.Company)))
	sb.WriteString(fmt.Sprintf("Position: %s\n", orUnknown(result.Position)))
	sb.WriteString(fmt.Sprintf("Length:   %d chars", len(result.Text)))

	p.printBox("JOB POSTING EXTRACTED", sb.String())
}

// PrintKeywords outputs the categorized keywords pulled from the posting.
func (p *Printer) PrintKeywords(keywords *types.CategorizedKeywords) {
	if keywords == nil || keywords.Total() == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n", keywords.Total()))
	writeCategory(&sb, "Required", keywords.Required)
	writeCategory(&sb, "Preferred", keywords.Preferred)
	writeCategory(&sb, "Responsibilities", keywords.Responsibilities)
	writeCategory(&sb, "Tools", keywords.Tools)
	writeCategory(&sb, "Industry", keywords.Industry)

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the optimization summary: matched keywords with their
// evidence, positioning suggestions, and keywords that cannot be claimed.
func (p *Printer) PrintReport(report *types.OptimizationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match rate: %.0f%% (%d of %d keywords)\n",
		report.MatchRate*100, report.MatchedKeywords, report.TotalKeywords))

	if len(report.Matches) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(report.Matches), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := report.Matches[i]
			sb.WriteString(fmt.Sprintf("  • %s → %s\n", m.Keyword, m.Evidence))
		}
		if len(report.Matches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Matches)-maxItemsToShow))
		}
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(report.Suggestions), 3)
		for i := 0; i < count; i++ {
			s := report.Suggestions[i]
			sb.WriteString(fmt.Sprintf("  • For '%s': %s\n", s.MissingKeyword, s.Guidance))
		}
	}

	if len(report.UnmatchedForbidden) > 0 {
		sb.WriteString("\nCannot add (no experience):\n")
		count := min(len(report.UnmatchedForbidden), 3)
		for i := 0; i < count; i++ {
			r := report.UnmatchedForbidden[i]
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", r.Keyword, r.Reason))
		}
	}

	sb.WriteString("\nIntegrity check: all content is based on the verified record")

	p.printBox("OPTIMIZATION SUMMARY", sb.String())
}

func writeCategory(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
