package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nworkman/resume-retool/internal/types"
)

// artifactStamp builds the file-name fragment shared by a run's artifacts:
// the company hint with spaces underscored, plus a timestamp.
func artifactStamp(company string, now time.Time) string {
	if company == "" {
		company = "unknown"
	}
	return strings.ReplaceAll(company, " ", "_") + "_" + now.Format("20060102_150405")
}

// SaveResumeText writes the rendered resume to
// <outputDir>/resume_<company>_<timestamp>.txt and returns the path.
func SaveResumeText(outputDir, company, resumeText string, now time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, "resume_"+artifactStamp(company, now)+".txt")
	if err := os.WriteFile(path, []byte(resumeText), 0644); err != nil {
		return "", fmt.Errorf("failed to write resume: %w", err)
	}
	return path, nil
}

// SaveAnalysis writes the optimization report to
// <outputDir>/analysis_<company>_<timestamp>.json and returns the path.
func SaveAnalysis(outputDir, company string, report *types.OptimizationReport, now time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	path := filepath.Join(outputDir, "analysis_"+artifactStamp(company, now)+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write analysis: %w", err)
	}
	return path, nil
}

// SaveLaTeX writes the rendered LaTeX source to
// <outputDir>/resume_<company>_<timestamp>.tex and returns the path.
func SaveLaTeX(outputDir, company, texSource string, now time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, "resume_"+artifactStamp(company, now)+".tex")
	if err := os.WriteFile(path, []byte(texSource), 0644); err != nil {
		return "", fmt.Errorf("failed to write LaTeX source: %w", err)
	}
	return path, nil
}
