//nolint:revive // types is a standard Go package name pattern
package types

// PolicyTables holds the curated, read-only vocabulary tables that bound what
// the system may assert about the candidate. They are plain data so they can
// be audited and extended without touching matching logic.
type PolicyTables struct {
	// VerifiedDomains maps a domain name to vocabulary phrases the candidate
	// may truthfully claim even when they do not appear verbatim in a bullet.
	VerifiedDomains map[string][]string `json:"verified_domains"`

	// Forbidden maps a forbidden-category name to phrases that must never be
	// asserted, regardless of job-posting pressure.
	Forbidden map[string][]string `json:"forbidden"`

	// Synonyms maps a canonical term to interchangeable terms. Membership is
	// resolved bidirectionally.
	Synonyms map[string][]string `json:"synonyms"`

	// Substitutions are safe, meaning-preserving rewrites applied to bullet
	// text. Order matters: earlier entries are applied first.
	Substitutions []Substitution `json:"substitutions"`

	// Suggestions maps a missing job keyword (substring match) to guidance on
	// positioning existing experience for it.
	Suggestions []SuggestionRule `json:"suggestions"`

	// RoleTriggers pull specific roles into the rendered resume when their
	// keywords appear among the matches. First trigger in table order wins on
	// overlap.
	RoleTriggers []RoleTrigger `json:"role_triggers"`

	// SummaryClauses are the fixed clause set for summary synthesis.
	SummaryClauses SummaryClauses `json:"summary_clauses"`
}

// Substitution is a whole-word, case-insensitive lexical replacement. The
// replacement half must never introduce a noun, number, or scope claim absent
// from the original text.
type Substitution struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SuggestionRule maps a keyword fragment to fixed guidance text.
type SuggestionRule struct {
	Keyword  string `json:"keyword"`
	Guidance string `json:"guidance"`
}

// RoleTrigger selects a role by organization identifier when any of its
// trigger keywords is matched.
type RoleTrigger struct {
	// Keywords that activate this trigger (case-insensitive substring against
	// matched keywords).
	Keywords []string `json:"keywords"`
	// Organization is matched case-insensitively as a substring of the role's
	// organization name.
	Organization string `json:"organization"`
}

// SummaryClauses holds the finite clause set used to synthesize the
// professional summary. Output is always a composition of these strings.
type SummaryClauses struct {
	Opening          string `json:"opening"`
	Strategic        string `json:"strategic"`
	Healthcare       string `json:"healthcare"`
	DefaultFocus     string `json:"default_focus"`
	Core             string `json:"core"`
	Change           string `json:"change"`
	DefaultClose     string `json:"default_close"`
	StrategicTrigger string `json:"strategic_trigger"`
	HealthTrigger    string `json:"health_trigger"`
	ChangeTrigger    string `json:"change_trigger"`
}
