package matching

import (
	"strings"

	"github.com/nworkman/resume-retool/internal/types"
)

// decision is the outcome of evaluating one rule against one keyword.
type decision int

const (
	// decisionPass means the rule does not apply; try the next rule.
	decisionPass decision = iota
	// decisionReject means the keyword must not be asserted (hard stop).
	decisionReject
	// decisionMatch means the rule produced a positive match.
	decisionMatch
)

type outcome struct {
	decision decision
	match    *types.KeywordMatch
}

// rule is one predicate→outcome step in the matcher's dispatch sequence.
// Rules are evaluated in order and short-circuit on the first non-pass
// outcome, which is what makes the precedence invariant auditable: the
// forbidden rule sits first, and confidence tiers follow declaration order.
type rule struct {
	name  string
	apply func(lowerKeyword string) outcome
}

func pass() outcome   { return outcome{decision: decisionPass} }
func reject() outcome { return outcome{decision: decisionReject} }

func matched(m types.KeywordMatch) outcome {
	return outcome{decision: decisionMatch, match: &m}
}

// buildRules assembles the ordered rule list. The ordering is load-bearing:
// it determines which confidence tier a borderline phrase receives.
func (m *Matcher) buildRules() []rule {
	return []rule{
		{name: "forbidden", apply: m.forbiddenRule},
		{name: "exact", apply: m.exactRule},
		{name: "domain", apply: m.domainRule},
		{name: "synonym", apply: m.synonymRule},
	}
}

// forbiddenRule rejects keywords containing any forbidden phrase,
// independent of every other rule.
func (m *Matcher) forbiddenRule(lowerKeyword string) outcome {
	if m.IsForbidden(lowerKeyword) {
		return reject()
	}
	return pass()
}

// exactRule matches keywords present verbatim in the flattened experience
// vocabulary.
func (m *Matcher) exactRule(lowerKeyword string) outcome {
	if !m.vocab.Contains(lowerKeyword) {
		return pass()
	}
	return matched(types.KeywordMatch{
		Keyword:    lowerKeyword,
		Evidence:   "Direct experience",
		Kind:       types.MatchExact,
		Confidence: m.opts.ExactConfidence,
	})
}

// domainRule matches keywords related to a verified-domain phrase by
// substring containment in either direction.
func (m *Matcher) domainRule(lowerKeyword string) outcome {
	for _, entry := range m.domains {
		if strings.Contains(entry.phrase, lowerKeyword) || strings.Contains(lowerKeyword, entry.phrase) {
			return matched(types.KeywordMatch{
				Keyword:    lowerKeyword,
				Evidence:   "Related experience: " + entry.phrase,
				Kind:       types.MatchDomain,
				Confidence: m.opts.DomainConfidence,
			})
		}
	}
	return pass()
}

// synonymRule matches keywords whose synonyms appear in the experience
// vocabulary.
func (m *Matcher) synonymRule(lowerKeyword string) outcome {
	for _, synonym := range m.resolveSynonyms(lowerKeyword) {
		if m.vocab.Contains(synonym) {
			return matched(types.KeywordMatch{
				Keyword:    lowerKeyword,
				Evidence:   "Similar experience: " + synonym,
				Kind:       types.MatchSynonym,
				Confidence: m.opts.SynonymConfidence,
			})
		}
	}
	return pass()
}
