package selection

import (
	"strings"

	"github.com/nworkman/resume-retool/internal/types"
)

// SelectRoles chooses which roles to surface. The most recent role is always
// included; triggers pull in further roles when their keywords were matched;
// remaining roles backfill in original order until minRoles is met, capped at
// maxRoles. On overlapping triggers, the first trigger in table order wins.
// Output preserves the record's original role order and deep-copies each
// selected role so callers may rewrite bullets without touching the record.
func SelectRoles(roles []types.Role, matches []types.KeywordMatch, triggers []types.RoleTrigger, minRoles, maxRoles int) []types.Role {
	if len(roles) == 0 {
		return []types.Role{}
	}
	if maxRoles <= 0 || maxRoles > len(roles) {
		maxRoles = len(roles)
	}
	if minRoles <= 0 {
		minRoles = 1
	}
	if minRoles > maxRoles {
		minRoles = maxRoles
	}

	selected := map[int]bool{0: true} // most recent role, always

	for _, trigger := range triggers {
		if len(selected) >= maxRoles {
			break
		}
		if !triggerFires(trigger, matches) {
			continue
		}
		if idx, ok := findRole(roles, trigger.Organization); ok && !selected[idx] {
			selected[idx] = true
		}
	}

	for idx := range roles {
		if len(selected) >= minRoles {
			break
		}
		selected[idx] = true
	}

	out := make([]types.Role, 0, len(selected))
	for idx, role := range roles {
		if selected[idx] {
			out = append(out, copyRole(role))
		}
	}
	return out
}

// triggerFires reports whether any matched keyword contains any of the
// trigger's keywords, case-insensitively.
func triggerFires(trigger types.RoleTrigger, matches []types.KeywordMatch) bool {
	for _, keyword := range trigger.Keywords {
		lower := strings.ToLower(keyword)
		if lower == "" {
			continue
		}
		for _, m := range matches {
			if strings.Contains(strings.ToLower(m.Keyword), lower) {
				return true
			}
		}
	}
	return false
}

// findRole returns the first role whose organization contains the identifier,
// case-insensitively.
func findRole(roles []types.Role, organization string) (int, bool) {
	needle := strings.ToLower(strings.TrimSpace(organization))
	if needle == "" {
		return 0, false
	}
	for idx, role := range roles {
		if strings.Contains(strings.ToLower(role.Organization), needle) {
			return idx, true
		}
	}
	return 0, false
}

func copyRole(role types.Role) types.Role {
	bullets := make([]string, len(role.Bullets))
	copy(bullets, role.Bullets)
	role.Bullets = bullets
	return role
}
