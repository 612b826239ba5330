// Package report aggregates match decisions into the per-run optimization report.
package report

import (
	"strings"

	"github.com/nworkman/resume-retool/internal/matching"
	"github.com/nworkman/resume-retool/internal/types"
)

// ReasonForbidden is the fixed reason recorded for keywords the candidate
// must not claim.
const ReasonForbidden = "No direct experience - cannot fabricate"

// Assemble builds the optimization report for one run. Counts tie out:
// matched + forbidden + suggested + silently dropped equals the candidate
// total, and the match rate is always within [0, 1] (denominator floor of 1
// guards empty extractions).
func Assemble(keywords *types.CategorizedKeywords, matches []types.KeywordMatch, matcher *matching.Matcher, suggestions []types.SuggestionRule) *types.OptimizationReport {
	rep := &types.OptimizationReport{
		Matches:            matches,
		UnmatchedForbidden: []types.RejectedKeyword{},
		Suggestions:        []types.Suggestion{},
	}
	if matches == nil {
		rep.Matches = []types.KeywordMatch{}
	}
	if keywords == nil {
		keywords = &types.CategorizedKeywords{}
	}

	rep.TotalKeywords = keywords.Total()
	rep.MatchedKeywords = len(rep.Matches)
	rep.MatchRate = float64(rep.MatchedKeywords) / float64(max(1, rep.TotalKeywords))

	matchedSet := map[string]bool{}
	for _, m := range rep.Matches {
		matchedSet[m.Keyword] = true
	}

	for _, candidate := range keywords.All() {
		normalized := strings.ToLower(strings.TrimSpace(candidate.Text))
		if matchedSet[normalized] {
			continue
		}
		if matcher != nil && matcher.IsForbidden(normalized) {
			rep.UnmatchedForbidden = append(rep.UnmatchedForbidden, types.RejectedKeyword{
				Keyword: candidate.Text,
				Reason:  ReasonForbidden,
			})
			continue
		}
		if guidance, ok := lookupSuggestion(normalized, suggestions); ok {
			rep.Suggestions = append(rep.Suggestions, types.Suggestion{
				MissingKeyword: candidate.Text,
				Guidance:       guidance,
			})
		}
		// No suggestion on file: dropped.
	}

	return rep
}

// lookupSuggestion finds guidance whose keyword fragment occurs in the
// candidate keyword. First rule in table order wins.
func lookupSuggestion(lowerKeyword string, suggestions []types.SuggestionRule) (string, bool) {
	for _, rule := range suggestions {
		fragment := strings.ToLower(strings.TrimSpace(rule.Keyword))
		if fragment != "" && strings.Contains(lowerKeyword, fragment) {
			return rule.Guidance, true
		}
	}
	return "", false
}
