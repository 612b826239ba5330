// Package types provides type definitions for structured data used throughout the resume-retool system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceRecord is the verified, immutable record of a candidate's skills,
// roles, and accomplishments. It is loaded once at process start and never
// mutated; every claim in a rendered resume must trace back to it.
type ExperienceRecord struct {
	FullName  string           `json:"full_name"`
	Contact   string           `json:"contact"`
	Title     string           `json:"title"`
	Summary   string           `json:"summary"`
	Skills    []string         `json:"skills"`
	Roles     []Role           `json:"experience"`
	Education []EducationEntry `json:"education"`
}

// Role represents a single held position with its accomplishment bullets.
// Roles are ordered most recent first.
type Role struct {
	Organization string   `json:"company"`
	Dates        string   `json:"dates"`
	Title        string   `json:"title"`
	Bullets      []string `json:"bullets"`
}

// EducationEntry represents a degree earned at an institution.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"school"`
}
