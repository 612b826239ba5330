// Package matching decides, per job-posting keyword, whether it may be
// asserted about the candidate, at what confidence, and on what evidence.
package matching

import (
	"sort"
	"strings"

	"github.com/nworkman/resume-retool/internal/profile"
	"github.com/nworkman/resume-retool/internal/types"
)

// Confidence tiers in the reference policy. Recalibration is allowed through
// Options, but the strict exact > domain > synonym ordering is load-bearing.
const (
	ConfidenceExact   = 1.0
	ConfidenceDomain  = 0.8
	ConfidenceSynonym = 0.7
)

// Options configures matcher confidence scores.
type Options struct {
	ExactConfidence   float64
	DomainConfidence  float64
	SynonymConfidence float64
}

// DefaultOptions returns the reference confidence policy.
func DefaultOptions() Options {
	return Options{
		ExactConfidence:   ConfidenceExact,
		DomainConfidence:  ConfidenceDomain,
		SynonymConfidence: ConfidenceSynonym,
	}
}

// normalized enforces the confidence ordering invariant. Any configuration
// that is not strictly decreasing, or that leaves the (0,1] range, falls back
// to the reference policy.
func (o Options) normalized() Options {
	ordered := o.ExactConfidence > o.DomainConfidence &&
		o.DomainConfidence > o.SynonymConfidence
	inRange := o.ExactConfidence <= 1.0 && o.SynonymConfidence > 0
	if !ordered || !inRange {
		return DefaultOptions()
	}
	return o
}

// domainPhrase is one verified-domain vocabulary entry, flattened for
// deterministic iteration.
type domainPhrase struct {
	domain string
	phrase string // lowercased
}

// Matcher holds the read-only lookup structures for one experience record and
// policy table set. Safe for concurrent use; nothing is mutated after New.
type Matcher struct {
	vocab     profile.Vocabulary
	forbidden []string
	domains   []domainPhrase
	synonyms  map[string][]string
	synKeys   []string
	opts      Options
	rules     []rule
}

// New builds a Matcher from an experience record and policy tables. Policy
// maps are flattened into sorted slices so that repeated matching over the
// same input yields identical sequences.
func New(record *types.ExperienceRecord, tables *types.PolicyTables, opts Options) *Matcher {
	m := &Matcher{
		vocab:    profile.BuildVocabulary(record),
		synonyms: map[string][]string{},
		opts:     opts.normalized(),
	}

	if tables != nil {
		m.forbidden = flattenPhrases(tables.Forbidden)

		domainNames := make([]string, 0, len(tables.VerifiedDomains))
		for name := range tables.VerifiedDomains {
			domainNames = append(domainNames, name)
		}
		sort.Strings(domainNames)
		for _, name := range domainNames {
			for _, phrase := range tables.VerifiedDomains[name] {
				m.domains = append(m.domains, domainPhrase{
					domain: name,
					phrase: strings.ToLower(phrase),
				})
			}
		}

		for canonical, members := range tables.Synonyms {
			lowered := make([]string, 0, len(members))
			for _, member := range members {
				lowered = append(lowered, strings.ToLower(member))
			}
			m.synonyms[strings.ToLower(canonical)] = lowered
		}
		for key := range m.synonyms {
			m.synKeys = append(m.synKeys, key)
		}
		sort.Strings(m.synKeys)
	}

	m.rules = m.buildRules()
	return m
}

// flattenPhrases lowers and flattens a category→phrases map in sorted
// category order.
func flattenPhrases(byCategory map[string][]string) []string {
	categories := make([]string, 0, len(byCategory))
	for name := range byCategory {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var phrases []string
	for _, name := range categories {
		for _, phrase := range byCategory[name] {
			phrases = append(phrases, strings.ToLower(phrase))
		}
	}
	return phrases
}

// IsForbidden reports whether the keyword contains or equals any forbidden
// phrase. The check is a case-insensitive substring match and takes absolute
// precedence over every positive-match rule.
func (m *Matcher) IsForbidden(keyword string) bool {
	lower := strings.ToLower(strings.TrimSpace(keyword))
	if lower == "" {
		return false
	}
	for _, phrase := range m.forbidden {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Match evaluates the ordered rule list for one keyword and returns the first
// outcome, or ok=false when the keyword cannot be asserted. Empty or
// whitespace-only keywords simply fail to match; malformed input is never an
// error.
func (m *Matcher) Match(keyword string) (types.KeywordMatch, bool) {
	lower := strings.ToLower(strings.TrimSpace(keyword))
	if lower == "" {
		return types.KeywordMatch{}, false
	}

	for _, r := range m.rules {
		outcome := r.apply(lower)
		switch outcome.decision {
		case decisionReject:
			return types.KeywordMatch{}, false
		case decisionMatch:
			return *outcome.match, true
		}
	}
	return types.KeywordMatch{}, false
}

// MatchAll evaluates every candidate keyword in category order and returns
// the matches. Forbidden keywords and unmatched keywords are dropped here;
// the report assembler routes them separately.
func (m *Matcher) MatchAll(keywords *types.CategorizedKeywords) []types.KeywordMatch {
	matches := []types.KeywordMatch{}
	if keywords == nil {
		return matches
	}
	for _, candidate := range keywords.All() {
		if match, ok := m.Match(candidate.Text); ok {
			matches = append(matches, match)
		}
	}
	return matches
}

// resolveSynonyms returns the terms interchangeable with keyword, resolved
// bidirectionally in sorted canonical-key order.
func (m *Matcher) resolveSynonyms(lowerKeyword string) []string {
	var synonyms []string
	for _, key := range m.synKeys {
		members := m.synonyms[key]
		if strings.Contains(lowerKeyword, key) {
			synonyms = append(synonyms, members...)
			continue
		}
		for _, member := range members {
			if member == lowerKeyword {
				synonyms = append(synonyms, key)
				for _, other := range members {
					if other != lowerKeyword {
						synonyms = append(synonyms, other)
					}
				}
				break
			}
		}
	}
	return synonyms
}
