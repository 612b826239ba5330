//nolint:revive // types is a standard Go package name pattern
package types

// RejectedKeyword records a job keyword the candidate must not claim.
type RejectedKeyword struct {
	Keyword string `json:"keyword"`
	Reason  string `json:"reason"`
}

// Suggestion records guidance for positioning existing experience toward a
// job keyword that did not match.
type Suggestion struct {
	MissingKeyword string `json:"missing_keyword"`
	Guidance       string `json:"guidance_text"`
}

// OptimizationReport aggregates the match decisions for one job-posting run.
// It is derived data: built once, then read-only.
type OptimizationReport struct {
	TotalKeywords      int               `json:"total_keywords"`
	MatchedKeywords    int               `json:"matched_keywords"`
	MatchRate          float64           `json:"match_rate"`
	Matches            []KeywordMatch    `json:"matches"`
	UnmatchedForbidden []RejectedKeyword `json:"unmatched_forbidden"`
	Suggestions        []Suggestion      `json:"suggestions"`
}
