// Package rewriting applies safe, meaning-preserving lexical substitutions to
// existing bullet text. It never synthesizes sentences: only whole-word
// replacements drawn from a fixed table are permitted.
package rewriting

import (
	"regexp"
	"strings"

	"github.com/nworkman/resume-retool/internal/types"
)

// compiledSub is a substitution with its whole-word matcher prebuilt.
type compiledSub struct {
	from    string // lowercased
	to      string
	toLower string
	pattern *regexp.Regexp
}

// Rewriter applies a fixed substitution table to bullet text. Read-only after
// construction; safe for concurrent use.
type Rewriter struct {
	subs []compiledSub
}

// New compiles the substitution table in order. Earlier entries apply first.
// Entries with an empty half are skipped.
func New(subs []types.Substitution) *Rewriter {
	compiled := make([]compiledSub, 0, len(subs))
	for _, sub := range subs {
		from := strings.ToLower(strings.TrimSpace(sub.From))
		if from == "" || strings.TrimSpace(sub.To) == "" {
			continue
		}
		compiled = append(compiled, compiledSub{
			from:    from,
			to:      sub.To,
			toLower: strings.ToLower(sub.To),
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(from) + `\b`),
		})
	}
	return &Rewriter{subs: compiled}
}

// RewriteBullet rewrites one bullet, replacing each substitution's original
// phrase (whole word, case-insensitive) with its replacement, only when the
// replacement is not already present. The rewrite is discarded in favor of
// the original whenever it would violate the non-fabrication invariant.
func (r *Rewriter) RewriteBullet(bullet string) string {
	lowerOriginal := strings.ToLower(bullet)
	rewritten := bullet
	for _, sub := range r.subs {
		// Gate on the original text so one substitution's output never
		// triggers another.
		if !strings.Contains(lowerOriginal, sub.from) ||
			strings.Contains(strings.ToLower(rewritten), sub.toLower) {
			continue
		}
		rewritten = sub.pattern.ReplaceAllString(rewritten, sub.to)
	}

	if !VerifyRewrite(bullet, rewritten, r.substitutions()) {
		return bullet
	}
	return rewritten
}

// RewriteAll rewrites a sequence of bullets, preserving order and count.
func (r *Rewriter) RewriteAll(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	for _, bullet := range bullets {
		out = append(out, r.RewriteBullet(bullet))
	}
	return out
}

// substitutions returns the compiled table in its plain data form.
func (r *Rewriter) substitutions() []types.Substitution {
	subs := make([]types.Substitution, 0, len(r.subs))
	for _, sub := range r.subs {
		subs = append(subs, types.Substitution{From: sub.from, To: sub.to})
	}
	return subs
}
