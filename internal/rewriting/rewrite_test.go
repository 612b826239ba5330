package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nworkman/resume-retool/internal/types"
)

var testSubs = []types.Substitution{
	{From: "managed", To: "strategically led"},
	{From: "led", To: "spearheaded"},
	{From: "helped", To: "enabled"},
}

func TestRewriteBullet_AppliesSubstitution(t *testing.T) {
	r := New(testSubs)

	out := r.RewriteBullet("Managed the department budget")
	assert.Equal(t, "strategically led the department budget", out)
}

func TestRewriteBullet_WholeWordOnly(t *testing.T) {
	r := New(testSubs)

	// "mismanaged" must not trigger the "managed" substitution.
	out := r.RewriteBullet("Recovered a mismanaged portfolio")
	assert.Equal(t, "Recovered a mismanaged portfolio", out)
}

func TestRewriteBullet_SkipsWhenTargetPresent(t *testing.T) {
	r := New([]types.Substitution{{From: "managed", To: "strategically led"}})

	// The replacement text is already in the bullet; substituting again
	// would duplicate it.
	out := r.RewriteBullet("Strategically led and managed three teams")
	assert.Equal(t, "Strategically led and managed three teams", out)
}

func TestRewriteBullet_NoCascadeBetweenSubstitutions(t *testing.T) {
	r := New(testSubs)

	// "strategically led" is introduced by the first substitution; the
	// led→spearheaded rule must not fire on it.
	out := r.RewriteBullet("Managed the department")
	assert.Equal(t, "strategically led the department", out)
}

func TestRewriteBullet_NoSubstitutionApplies(t *testing.T) {
	r := New(testSubs)

	out := r.RewriteBullet("Delivered the annual report on time")
	assert.Equal(t, "Delivered the annual report on time", out)
}

func TestRewriteBullet_EmptyInput(t *testing.T) {
	r := New(testSubs)
	assert.Equal(t, "", r.RewriteBullet(""))
}

func TestRewriteAll_PreservesOrderAndCount(t *testing.T) {
	r := New(testSubs)

	bullets := []string{
		"Managed vendor relationships",
		"Reviewed quarterly metrics",
		"Helped launch the new platform",
	}
	out := r.RewriteAll(bullets)

	assert.Len(t, out, 3)
	assert.Equal(t, "strategically led vendor relationships", out[0])
	assert.Equal(t, "Reviewed quarterly metrics", out[1])
	assert.Equal(t, "enabled launch the new platform", out[2])
}

func TestNew_SkipsEmptyEntries(t *testing.T) {
	r := New([]types.Substitution{
		{From: "", To: "something"},
		{From: "something", To: ""},
		{From: "managed", To: "strategically led"},
	})

	out := r.RewriteBullet("Managed the rollout")
	assert.Equal(t, "strategically led the rollout", out)
}

func TestVerifyRewrite_AcceptsSubstitutedTokens(t *testing.T) {
	ok := VerifyRewrite(
		"Managed the department",
		"strategically led the department",
		testSubs,
	)
	assert.True(t, ok)
}

func TestVerifyRewrite_RejectsFabricatedTokens(t *testing.T) {
	ok := VerifyRewrite(
		"Managed the department",
		"strategically led the department of twelve nurses",
		testSubs,
	)
	assert.False(t, ok)
}

func TestVerifyRewrite_RejectsSubstitutionWithoutSource(t *testing.T) {
	// "enabled" only becomes legal when "helped" was in the original.
	ok := VerifyRewrite(
		"Managed the department",
		"enabled the department",
		testSubs,
	)
	assert.False(t, ok)
}

func TestVerifyRewrite_IdenticalTextAlwaysPasses(t *testing.T) {
	ok := VerifyRewrite("Any text at all", "Any text at all", nil)
	assert.True(t, ok)
}
