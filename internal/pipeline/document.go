package pipeline

import (
	"github.com/nworkman/resume-retool/internal/types"
)

// BuildDocument assembles the rendered-resume input from the verified record
// and the customized content. The title line leads with the target position
// when an ingestion hint found one.
func BuildDocument(record *types.ExperienceRecord, content *types.CustomizedContent, position string) *types.ResumeDocument {
	title := record.Title
	if position != "" {
		title = position + " Candidate | " + record.Title
	}

	return &types.ResumeDocument{
		FullName:  record.FullName,
		Contact:   record.Contact,
		Title:     title,
		Summary:   content.Summary,
		Skills:    content.Skills,
		Roles:     content.Roles,
		Education: record.Education,
	}
}
