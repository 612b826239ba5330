// Package selection chooses which stored experience to surface for a job
// posting: skill ordering, role selection, and summary synthesis. It only
// reorders and filters verified content; it never creates any.
package selection

import (
	"strings"

	"github.com/nworkman/resume-retool/internal/types"
)

// ReorderSkills partitions the fixed skill list into skills that share
// vocabulary with a matched keyword and the rest, preserving original
// relative order within each partition, then truncates to maxSkills.
func ReorderSkills(skills []string, matches []types.KeywordMatch, maxSkills int) []string {
	keywords := make([]string, 0, len(matches))
	for _, m := range matches {
		keywords = append(keywords, strings.ToLower(m.Keyword))
	}

	prioritized := []string{}
	remaining := []string{}
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		if containsAny(lower, keywords) {
			prioritized = append(prioritized, skill)
		} else {
			remaining = append(remaining, skill)
		}
	}

	ordered := append(prioritized, remaining...)
	if maxSkills > 0 && len(ordered) > maxSkills {
		ordered = ordered[:maxSkills]
	}
	return ordered
}

func containsAny(s string, fragments []string) bool {
	for _, fragment := range fragments {
		if fragment != "" && strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}
