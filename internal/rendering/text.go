package rendering

import (
	"fmt"
	"strings"

	"github.com/nworkman/resume-retool/internal/types"
)

// RenderText lays out a resume document as plain text with fixed section
// headers. Content passes through untouched.
func RenderText(doc *types.ResumeDocument) string {
	var b strings.Builder

	b.WriteString(doc.FullName + "\n")
	b.WriteString(doc.Contact + "\n\n")
	b.WriteString(doc.Title + "\n\n")

	b.WriteString("PROFESSIONAL SUMMARY\n")
	b.WriteString(doc.Summary)
	b.WriteString("\n\n")

	b.WriteString("CORE COMPETENCIES\n")
	for _, skill := range doc.Skills {
		b.WriteString("• " + skill + "\n")
	}
	b.WriteString("\n")

	b.WriteString("PROFESSIONAL EXPERIENCE\n\n")
	for _, role := range doc.Roles {
		b.WriteString(fmt.Sprintf("%-50s %20s\n", role.Organization, role.Dates))
		b.WriteString(role.Title + "\n")
		for _, bullet := range role.Bullets {
			b.WriteString("• " + bullet + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("EDUCATION\n")
	for _, edu := range doc.Education {
		b.WriteString(edu.Degree + " | " + edu.Institution + "\n")
	}

	return b.String()
}
