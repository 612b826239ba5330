package selection

import (
	"github.com/nworkman/resume-retool/internal/rewriting"
	"github.com/nworkman/resume-retool/internal/types"
)

// Display limits applied when the caller does not override them.
const (
	DefaultMaxSkills  = 12
	DefaultMinRoles   = 2
	DefaultMaxRoles   = 3
	DefaultTopMatches = 3
)

// Options bounds how much content the selector surfaces.
type Options struct {
	MaxSkills  int
	MinRoles   int
	MaxRoles   int
	TopMatches int
}

// DefaultOptions returns the reference display limits.
func DefaultOptions() Options {
	return Options{
		MaxSkills:  DefaultMaxSkills,
		MinRoles:   DefaultMinRoles,
		MaxRoles:   DefaultMaxRoles,
		TopMatches: DefaultTopMatches,
	}
}

// Select builds the customized content for one run: reordered skills,
// trigger-selected roles with rewritten bullets, and a synthesized summary.
// The record and tables are read-only; all output is freshly allocated.
// With no matches, output falls back to the record's own ordering and text.
func Select(record *types.ExperienceRecord, tables *types.PolicyTables, matches []types.KeywordMatch, opts Options) *types.CustomizedContent {
	if opts.MaxSkills == 0 {
		opts.MaxSkills = DefaultMaxSkills
	}
	if opts.MinRoles == 0 {
		opts.MinRoles = DefaultMinRoles
	}
	if opts.MaxRoles == 0 {
		opts.MaxRoles = DefaultMaxRoles
	}
	if opts.TopMatches == 0 {
		opts.TopMatches = DefaultTopMatches
	}

	rewriter := rewriting.New(tables.Substitutions)

	roles := SelectRoles(record.Roles, matches, tables.RoleTriggers, opts.MinRoles, opts.MaxRoles)
	for i := range roles {
		roles[i].Bullets = rewriter.RewriteAll(roles[i].Bullets)
	}

	summary := ComposeSummary(tables.SummaryClauses, matches, opts.TopMatches)
	if summary == "" {
		summary = record.Summary
	}

	return &types.CustomizedContent{
		Summary: summary,
		Skills:  ReorderSkills(record.Skills, matches, opts.MaxSkills),
		Roles:   roles,
	}
}
