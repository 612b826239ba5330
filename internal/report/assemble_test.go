package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nworkman/resume-retool/internal/matching"
	"github.com/nworkman/resume-retool/internal/types"
)

func reportMatcher() *matching.Matcher {
	record := &types.ExperienceRecord{
		Skills: []string{"project management"},
		Roles: []types.Role{
			{Bullets: []string{"Managed healthcare programs"}},
		},
	}
	tables := &types.PolicyTables{
		Forbidden: map[string][]string{
			"specific_certs": {"PMP"},
		},
	}
	return matching.New(record, tables, matching.DefaultOptions())
}

var reportSuggestions = []types.SuggestionRule{
	{Keyword: "budget", Guidance: "Highlight portfolio P&L responsibility"},
	{Keyword: "data", Guidance: "Emphasize data analysis experience"},
}

func TestAssemble_CountsAndRate(t *testing.T) {
	keywords := &types.CategorizedKeywords{
		Required: []string{"project management", "PMP", "budget forecasting", "kubernetes"},
	}
	matcher := reportMatcher()
	matches := matcher.MatchAll(keywords)

	rep := Assemble(keywords, matches, matcher, reportSuggestions)

	assert.Equal(t, 4, rep.TotalKeywords)
	assert.Equal(t, 1, rep.MatchedKeywords)
	assert.InDelta(t, 0.25, rep.MatchRate, 1e-9)

	require.Len(t, rep.UnmatchedForbidden, 1)
	assert.Equal(t, "PMP", rep.UnmatchedForbidden[0].Keyword)
	assert.Equal(t, ReasonForbidden, rep.UnmatchedForbidden[0].Reason)

	require.Len(t, rep.Suggestions, 1)
	assert.Equal(t, "budget forecasting", rep.Suggestions[0].MissingKeyword)
	assert.Equal(t, "Highlight portfolio P&L responsibility", rep.Suggestions[0].Guidance)

	// "kubernetes" has no match, no forbidden hit, and no suggestion; it is
	// dropped from the report.
}

func TestAssemble_EmptyKeywords(t *testing.T) {
	matcher := reportMatcher()
	rep := Assemble(&types.CategorizedKeywords{}, nil, matcher, nil)

	assert.Equal(t, 0, rep.TotalKeywords)
	assert.Equal(t, 0, rep.MatchedKeywords)
	assert.Equal(t, 0.0, rep.MatchRate)
	assert.NotNil(t, rep.Matches)
	assert.NotNil(t, rep.UnmatchedForbidden)
	assert.NotNil(t, rep.Suggestions)
}

func TestAssemble_NilInputs(t *testing.T) {
	rep := Assemble(nil, nil, nil, nil)

	assert.Equal(t, 0, rep.TotalKeywords)
	assert.Equal(t, 0.0, rep.MatchRate)
	assert.Empty(t, rep.Matches)
}

func TestAssemble_MatchRateWithinBounds(t *testing.T) {
	keywords := &types.CategorizedKeywords{
		Required: []string{"project management"},
		Tools:    []string{"project management"},
	}
	matcher := reportMatcher()
	matches := matcher.MatchAll(keywords)

	rep := Assemble(keywords, matches, matcher, nil)
	assert.GreaterOrEqual(t, rep.MatchRate, 0.0)
	assert.LessOrEqual(t, rep.MatchRate, 1.0)
}

func TestAssemble_SuggestionFirstRuleWins(t *testing.T) {
	suggestions := []types.SuggestionRule{
		{Keyword: "data", Guidance: "first"},
		{Keyword: "data analysis", Guidance: "second"},
	}
	keywords := &types.CategorizedKeywords{Required: []string{"data analysis"}}
	matcher := reportMatcher()

	rep := Assemble(keywords, nil, matcher, suggestions)
	require.Len(t, rep.Suggestions, 1)
	assert.Equal(t, "first", rep.Suggestions[0].Guidance)
}
