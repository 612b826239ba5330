package rewriting

import (
	"regexp"
	"strings"

	"github.com/nworkman/resume-retool/internal/types"
)

var alphaToken = regexp.MustCompile(`[A-Za-z]+`)

// VerifyRewrite checks the non-fabrication invariant: every maximal
// alphabetic token of the rewritten text must either appear in the original
// or be part of the replacement half of a substitution whose original half
// was present in the original. Comparison is case-insensitive.
func VerifyRewrite(original, rewritten string, subs []types.Substitution) bool {
	allowed := tokenSet(original)

	lowerOriginal := strings.ToLower(original)
	for _, sub := range subs {
		if sub.From == "" {
			continue
		}
		if strings.Contains(lowerOriginal, strings.ToLower(sub.From)) {
			for token := range tokenSet(sub.To) {
				allowed[token] = struct{}{}
			}
		}
	}

	for token := range tokenSet(rewritten) {
		if _, ok := allowed[token]; !ok {
			return false
		}
	}
	return true
}

// tokenSet extracts the lowercased maximal alphabetic tokens of s.
func tokenSet(s string) map[string]struct{} {
	tokens := map[string]struct{}{}
	for _, token := range alphaToken.FindAllString(s, -1) {
		tokens[strings.ToLower(token)] = struct{}{}
	}
	return tokens
}
