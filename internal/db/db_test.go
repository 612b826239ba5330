package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nworkman/resume-retool/internal/types"
)

// Round-trip tests for the JSONB report payload. Database operations are
// covered by the integration tests.

func TestReportPayload_RoundTrip(t *testing.T) {
	report := &types.OptimizationReport{
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
	}

	jsonBytes, err := json.Marshal(report)
	require.NoError(t, err)

	var loaded types.OptimizationReport
	require.NoError(t, json.Unmarshal(jsonBytes, &loaded))

	assert.Equal(t, report.MatchRate, loaded.MatchRate)
	require.Len(t, loaded.Matches, 1)
	assert.Equal(t, types.MatchExact, loaded.Matches[0].Kind)
	require.Len(t, loaded.UnmatchedForbidden, 1)
	assert.Equal(t, "No direct experience - cannot fabricate", loaded.UnmatchedForbidden[0].Reason)
}

func TestReportPayload_FieldNames(t *testing.T) {
	jsonBytes, err := json.Marshal(&types.OptimizationReport{
		Matches:            []types.KeywordMatch{{Keyword: "k", Evidence: "e", Kind: types.MatchDomain, Confidence: 0.8}},
		UnmatchedForbidden: []types.RejectedKeyword{},
		Suggestions:        []types.Suggestion{},
	})
	require.NoError(t, err)

	payload := string(jsonBytes)
	assert.Contains(t, payload, `"matched_evidence"`)
	assert.Contains(t, payload, `"match_kind":"domain"`)
	assert.Contains(t, payload, `"unmatched_forbidden"`)
	assert.Contains(t, payload, `"suggestions"`)
}
