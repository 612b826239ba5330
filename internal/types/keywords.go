//nolint:revive // types is a standard Go package name pattern
package types

// KeywordCategory classifies where in a job posting a candidate keyword was found.
type KeywordCategory string

// Keyword categories produced by the extractor.
const (
	CategoryRequired       KeywordCategory = "required_skills"
	CategoryPreferred      KeywordCategory = "preferred_skills"
	CategoryResponsibility KeywordCategory = "responsibilities"
	CategoryTool           KeywordCategory = "tools"
	CategoryIndustry       KeywordCategory = "industry_specific"
)

// CandidateKeyword is a word or short phrase discovered in a job posting,
// pending a match decision. Transient; scoped to one run.
type CandidateKeyword struct {
	Text     string          `json:"text"`
	Category KeywordCategory `json:"category"`
}

// CategorizedKeywords holds extractor output grouped by category. Slices are
// always non-nil; a category with no hits is an empty slice.
type CategorizedKeywords struct {
	Required         []string `json:"required_skills"`
	Preferred        []string `json:"preferred_skills"`
	Responsibilities []string `json:"responsibilities"`
	Tools            []string `json:"tools"`
	Industry         []string `json:"industry_specific"`
}

// All flattens the categorized keywords into a single ordered sequence,
// category by category in declaration order.
func (c *CategorizedKeywords) All() []CandidateKeyword {
	out := make([]CandidateKeyword, 0, c.Total())
	for _, s := range c.Required {
		out = append(out, CandidateKeyword{Text: s, Category: CategoryRequired})
	}
	for _, s := range c.Preferred {
		out = append(out, CandidateKeyword{Text: s, Category: CategoryPreferred})
	}
	for _, s := range c.Responsibilities {
		out = append(out, CandidateKeyword{Text: s, Category: CategoryResponsibility})
	}
	for _, s := range c.Tools {
		out = append(out, CandidateKeyword{Text: s, Category: CategoryTool})
	}
	for _, s := range c.Industry {
		out = append(out, CandidateKeyword{Text: s, Category: CategoryIndustry})
	}
	return out
}

// Total returns the number of candidate keywords across all categories.
// Duplicates count; deduplication is the matcher's concern.
func (c *CategorizedKeywords) Total() int {
	return len(c.Required) + len(c.Preferred) + len(c.Responsibilities) +
		len(c.Tools) + len(c.Industry)
}

// MatchKind identifies which matching rule produced a KeywordMatch.
type MatchKind string

// Match kinds in decreasing order of confidence.
const (
	MatchExact   MatchKind = "exact"
	MatchDomain  MatchKind = "domain"
	MatchSynonym MatchKind = "synonym"
)

// KeywordMatch is a decision that a keyword is truthfully supported by the
// experience record, with the evidence that justifies the claim.
type KeywordMatch struct {
	Keyword    string    `json:"keyword"`
	Evidence   string    `json:"matched_evidence"`
	Kind       MatchKind `json:"match_kind"`
	Confidence float64   `json:"confidence"`
}
