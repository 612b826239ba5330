package ingestion

import (
	"regexp"
	"strings"
)

// companyPatterns, in priority order. The first match wins.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Company|Employer|Organization)[\s:]+([A-Z][A-Za-z\s&,]+)`),
	regexp.MustCompile(`About\s+([A-Z][A-Za-z\s&,]+)`),
	regexp.MustCompile(`Join\s+([A-Z][A-Za-z\s&,]+)`),
	regexp.MustCompile(`([A-Z][A-Za-z\s&,]+)\s+is\s+(?:seeking|hiring|looking)`),
}

var companySuffix = regexp.MustCompile(`\s+(Inc|LLC|Ltd|Corp|Corporation)\.?$`)

// positionPatterns, in priority order.
var positionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Position|Title|Role)[\s:]+([A-Za-z\s,\-]+)`),
	regexp.MustCompile(`(?:Job\s+Title)[\s:]+([A-Za-z\s,\-]+)`),
	regexp.MustCompile(`(?m)^([A-Z][A-Za-z\s,\-]+)(?:\n|$)`),
	regexp.MustCompile(`(?:Seeking|Hiring)\s+(?:a\s+)?([A-Z][A-Za-z\s,\-]+)`),
}

// ExtractCompanyHint scans job text for a company name. Returns "" when no
// pattern matches.
func ExtractCompanyHint(text string) string {
	for _, pattern := range companyPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			company := strings.TrimSpace(match[1])
			company = companySuffix.ReplaceAllString(company, "")
			return company
		}
	}
	return ""
}

// ExtractPositionHint scans job text for a position title. Candidates
// shorter than 6 or longer than 99 characters are skipped as artifacts.
func ExtractPositionHint(text string) string {
	for _, pattern := range positionPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			position := strings.TrimSpace(strings.ReplaceAll(match[1], "\n", " "))
			if len(position) > 5 && len(position) < 100 {
				return position
			}
		}
	}
	return ""
}
