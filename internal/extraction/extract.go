package extraction

import (
	"regexp"
	"strings"

	"github.com/nworkman/resume-retool/internal/types"
)

// Action verbs that tag a sentence as a responsibility.
var actionVerbs = []string{
	"lead", "manage", "develop", "implement", "oversee", "drive",
	"coordinate", "collaborate", "design", "execute", "monitor",
}

// Industry terms recorded verbatim wherever they occur, independent of
// section boundaries.
var industryTerms = []string{
	"healthcare", "health care", "medicaid", "medicare", "duals",
	"health plan", "managed care", "clinical", "regulatory", "cms",
}

// Tool terms recorded verbatim, same mechanism as industry terms.
var toolTerms = []string{
	"jira", "workfront", "smartsheet", "monday.com", "microsoft office",
	"excel", "powerpoint", "tableau",
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// Extract scans job-posting text and returns categorized candidate keywords.
// It is deterministic and read-only over its input; categories with no hits
// are empty slices, never nil. Overlapping sections may duplicate phrases
// across categories; deduplication is the matcher's responsibility.
func Extract(jobText string) *types.CategorizedKeywords {
	keywords := &types.CategorizedKeywords{
		Required:         []string{},
		Preferred:        []string{},
		Responsibilities: []string{},
		Tools:            []string{},
		Industry:         []string{},
	}
	if strings.TrimSpace(jobText) == "" {
		return keywords
	}

	lower := strings.ToLower(jobText)

	for _, pattern := range requiredSections {
		keywords.Required = append(keywords.Required, sectionItems(pattern, lower)...)
	}
	for _, pattern := range preferredSections {
		keywords.Preferred = append(keywords.Preferred, sectionItems(pattern, lower)...)
	}

	keywords.Responsibilities = responsibilitySentences(jobText)
	keywords.Tools = termScan(lower, toolTerms)
	keywords.Industry = termScan(lower, industryTerms)

	return keywords
}

// sectionItems captures a section and splits it into discrete phrases on
// bullet markers, normalizing stray whitespace.
func sectionItems(pattern sectionPattern, lowerText string) []string {
	section := pattern.capture(lowerText)
	if section == "" {
		return nil
	}

	var items []string
	for _, m := range bulletItem.FindAllStringSubmatch(section, -1) {
		item := normalizeSpace(m[1])
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// responsibilitySentences splits the text into period-delimited sentences and
// records each sentence containing an action verb. A sentence is recorded
// once even when several verbs hit.
func responsibilitySentences(jobText string) []string {
	sentences := []string{}
	for _, sentence := range strings.Split(jobText, ".") {
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				sentences = append(sentences, trimmed)
				break
			}
		}
	}
	return sentences
}

// termScan records each fixed term present anywhere in the lowercased text.
func termScan(lowerText string, terms []string) []string {
	hits := []string{}
	for _, term := range terms {
		if strings.Contains(lowerText, term) {
			hits = append(hits, term)
		}
	}
	return hits
}

func normalizeSpace(s string) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}
