package selection

import (
	"strings"

	"github.com/nworkman/resume-retool/internal/types"
)

// ComposeSummary synthesizes the professional-summary paragraph from the
// fixed clause set, keyed on whether trigger terms appear among the top-N
// matched keywords. The clause set is finite, so output is always one of a
// small enumerable set of variants.
func ComposeSummary(clauses types.SummaryClauses, matches []types.KeywordMatch, topN int) string {
	if clauses.Opening == "" {
		return ""
	}

	top := topKeywords(matches, topN)

	var sb strings.Builder
	sb.WriteString(clauses.Opening)

	if containsTrigger(top, clauses.StrategicTrigger) {
		sb.WriteString(clauses.Strategic)
	}

	if containsTrigger(top, clauses.HealthTrigger) {
		sb.WriteString(clauses.Healthcare)
	} else {
		sb.WriteString(clauses.DefaultFocus)
	}

	sb.WriteString(clauses.Core)

	if containsTrigger(top, clauses.ChangeTrigger) {
		sb.WriteString(clauses.Change)
	} else {
		sb.WriteString(clauses.DefaultClose)
	}

	return sb.String()
}

// topKeywords returns the lowercased keywords of the first n matches.
func topKeywords(matches []types.KeywordMatch, n int) []string {
	if n <= 0 || n > len(matches) {
		n = len(matches)
	}
	keywords := make([]string, 0, n)
	for _, m := range matches[:n] {
		keywords = append(keywords, strings.ToLower(m.Keyword))
	}
	return keywords
}

func containsTrigger(keywords []string, trigger string) bool {
	trigger = strings.ToLower(strings.TrimSpace(trigger))
	if trigger == "" {
		return false
	}
	for _, keyword := range keywords {
		if strings.Contains(keyword, trigger) {
			return true
		}
	}
	return false
}
