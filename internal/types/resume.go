//nolint:revive // types is a standard Go package name pattern
package types

// CustomizedContent is the selector/rewriter output: the subset of the
// experience record chosen for this job posting, with rewritten bullet text.
// Every token either appears verbatim in the record or is the replacement
// half of a fixed substitution.
type CustomizedContent struct {
	Summary string   `json:"summary"`
	Skills  []string `json:"skills"`
	Roles   []Role   `json:"experience"`
}

// ResumeDocument is the structured record handed to rendering. Rendering is
// responsible for layout only and must not alter any text content.
type ResumeDocument struct {
	FullName  string           `json:"full_name"`
	Contact   string           `json:"contact"`
	Title     string           `json:"title"`
	Summary   string           `json:"summary"`
	Skills    []string         `json:"skills"`
	Roles     []Role           `json:"experience"`
	Education []EducationEntry `json:"education"`
}
