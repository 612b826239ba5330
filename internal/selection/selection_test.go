package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nworkman/resume-retool/internal/types"
)

func matchesFor(keywords ...string) []types.KeywordMatch {
	matches := make([]types.KeywordMatch, 0, len(keywords))
	for _, keyword := range keywords {
		matches = append(matches, types.KeywordMatch{
			Keyword:    keyword,
			Evidence:   "Direct experience",
			Kind:       types.MatchExact,
			Confidence: 1.0,
		})
	}
	return matches
}

func selectionRecord() *types.ExperienceRecord {
	return &types.ExperienceRecord{
		FullName: "Test Candidate",
		Summary:  "Baseline summary from the record.",
		Skills: []string{
			"Program Management", "Vendor Negotiation", "Agile Delivery",
			"Budget Oversight", "Team Leadership",
		},
		Roles: []types.Role{
			{Organization: "TBWA WH, NEW YORK, NY", Title: "SVP", Bullets: []string{"Managed production teams"}},
			{Organization: "ACCENTURE, NEW YORK, NY", Title: "Manager", Bullets: []string{"Delivered healthcare programs"}},
			{Organization: "SMALLCO", Title: "Lead", Bullets: []string{"Ran internal tooling"}},
		},
	}
}

func selectionTables() *types.PolicyTables {
	return &types.PolicyTables{
		Substitutions: []types.Substitution{
			{From: "managed", To: "strategically led"},
		},
		RoleTriggers: []types.RoleTrigger{
			{Keywords: []string{"healthcare"}, Organization: "accenture"},
			{Keywords: []string{"leadership"}, Organization: "tbwa"},
		},
		SummaryClauses: types.SummaryClauses{
			Opening:          "Executive with 20+ years driving ",
			Strategic:        "strategic initiatives and ",
			Healthcare:       "transformation in healthcare. ",
			DefaultFocus:     "operational excellence. ",
			Core:             "Proven track record. ",
			Change:           "Expert change agent.",
			DefaultClose:     "Expert in deployment.",
			StrategicTrigger: "strategic",
			HealthTrigger:    "healthcare",
			ChangeTrigger:    "change",
		},
	}
}

func TestReorderSkills_PrioritizesMatched(t *testing.T) {
	skills := []string{"Program Management", "Vendor Negotiation", "Agile Delivery"}
	matches := matchesFor("agile")

	out := ReorderSkills(skills, matches, 12)
	assert.Equal(t, []string{"Agile Delivery", "Program Management", "Vendor Negotiation"}, out)
}

func TestReorderSkills_PreservesRelativeOrder(t *testing.T) {
	skills := []string{"A management", "B design", "C management", "D design"}
	matches := matchesFor("management")

	out := ReorderSkills(skills, matches, 12)
	assert.Equal(t, []string{"A management", "C management", "B design", "D design"}, out)
}

func TestReorderSkills_Truncates(t *testing.T) {
	skills := []string{"one", "two", "three", "four"}
	out := ReorderSkills(skills, nil, 2)
	assert.Equal(t, []string{"one", "two"}, out)
}

func TestSelectRoles_AlwaysIncludesMostRecent(t *testing.T) {
	roles := selectionRecord().Roles

	out := SelectRoles(roles, nil, nil, 1, 3)
	require.NotEmpty(t, out)
	assert.Equal(t, "TBWA WH, NEW YORK, NY", out[0].Organization)
}

func TestSelectRoles_TriggerPullsRole(t *testing.T) {
	roles := selectionRecord().Roles
	triggers := selectionTables().RoleTriggers

	out := SelectRoles(roles, matchesFor("healthcare clients"), triggers, 2, 3)
	require.Len(t, out, 2)
	assert.Equal(t, "TBWA WH, NEW YORK, NY", out[0].Organization)
	assert.Equal(t, "ACCENTURE, NEW YORK, NY", out[1].Organization)
}

func TestSelectRoles_BackfillsToMinimum(t *testing.T) {
	roles := selectionRecord().Roles

	out := SelectRoles(roles, nil, nil, 2, 3)
	require.Len(t, out, 2)
	assert.Equal(t, "TBWA WH, NEW YORK, NY", out[0].Organization)
	assert.Equal(t, "ACCENTURE, NEW YORK, NY", out[1].Organization)
}

func TestSelectRoles_RespectsMaximum(t *testing.T) {
	roles := selectionRecord().Roles
	triggers := selectionTables().RoleTriggers
	matches := matchesFor("healthcare clients", "team leadership")

	out := SelectRoles(roles, matches, triggers, 1, 2)
	assert.Len(t, out, 2)
}

func TestSelectRoles_OutputIsDeepCopy(t *testing.T) {
	roles := selectionRecord().Roles

	out := SelectRoles(roles, nil, nil, 1, 1)
	require.NotEmpty(t, out)
	out[0].Bullets[0] = "mutated"
	assert.Equal(t, "Managed production teams", roles[0].Bullets[0])
}

func TestSelectRoles_EmptyInput(t *testing.T) {
	assert.Empty(t, SelectRoles(nil, nil, nil, 2, 3))
}

func TestComposeSummary_DefaultVariant(t *testing.T) {
	clauses := selectionTables().SummaryClauses

	out := ComposeSummary(clauses, matchesFor("vendor"), 3)
	assert.Equal(t,
		"Executive with 20+ years driving operational excellence. Proven track record. Expert in deployment.",
		out)
}

func TestComposeSummary_AllTriggers(t *testing.T) {
	clauses := selectionTables().SummaryClauses
	matches := matchesFor("strategic planning", "healthcare operations", "change management")

	out := ComposeSummary(clauses, matches, 3)
	assert.Equal(t,
		"Executive with 20+ years driving strategic initiatives and transformation in healthcare. Proven track record. Expert change agent.",
		out)
}

func TestComposeSummary_TopNBoundsTriggerScan(t *testing.T) {
	clauses := selectionTables().SummaryClauses
	matches := matchesFor("vendor", "budget", "delivery", "healthcare operations")

	// "healthcare operations" is the fourth match and outside the top 3.
	out := ComposeSummary(clauses, matches, 3)
	assert.Contains(t, out, "operational excellence")
	assert.NotContains(t, out, "transformation in healthcare")
}

func TestComposeSummary_EmptyClauses(t *testing.T) {
	assert.Equal(t, "", ComposeSummary(types.SummaryClauses{}, nil, 3))
}

func TestSelect_RewritesBulletsInSelectedRoles(t *testing.T) {
	record := selectionRecord()
	tables := selectionTables()

	content := Select(record, tables, matchesFor("healthcare clients"), DefaultOptions())
	require.NotEmpty(t, content.Roles)
	assert.Equal(t, "strategically led production teams", content.Roles[0].Bullets[0])

	// Record bullets stay untouched.
	assert.Equal(t, "Managed production teams", record.Roles[0].Bullets[0])
}

func TestSelect_SummaryFallsBackToRecord(t *testing.T) {
	record := selectionRecord()
	tables := selectionTables()
	tables.SummaryClauses = types.SummaryClauses{}

	content := Select(record, tables, nil, DefaultOptions())
	assert.Equal(t, record.Summary, content.Summary)
}

func TestSelect_ZeroOptionsUseDefaults(t *testing.T) {
	record := selectionRecord()
	tables := selectionTables()

	content := Select(record, tables, nil, Options{})
	assert.LessOrEqual(t, len(content.Skills), DefaultMaxSkills)
	assert.GreaterOrEqual(t, len(content.Roles), DefaultMinRoles)
	assert.LessOrEqual(t, len(content.Roles), DefaultMaxRoles)
}
