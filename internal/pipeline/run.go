// Package pipeline provides the high-level orchestration of a resume
// optimization run: ingest a posting, extract keywords, match them against
// the verified record, select content, and render the artifacts.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nworkman/resume-retool/internal/db"
	"github.com/nworkman/resume-retool/internal/extraction"
	"github.com/nworkman/resume-retool/internal/ingestion"
	"github.com/nworkman/resume-retool/internal/matching"
	"github.com/nworkman/resume-retool/internal/observability"
	"github.com/nworkman/resume-retool/internal/rendering"
	"github.com/nworkman/resume-retool/internal/report"
	"github.com/nworkman/resume-retool/internal/selection"
	"github.com/nworkman/resume-retool/internal/types"
)

// RunOptions holds configuration for a single optimization run.
type RunOptions struct {
	Source string

	Record *types.ExperienceRecord
	Tables *types.PolicyTables

	TemplatePath string
	OutputDir    string

	UseBrowser  bool
	Verbose     bool
	RenderLaTeX bool
	DatabaseURL string

	MatchOptions  matching.Options
	SelectOptions selection.Options

	// OCR overrides the default screenshot extractor.
	OCR *ingestion.OCRExtractor
}

// RunResult holds everything produced by one optimization run.
type RunResult struct {
	Source     string
	Extraction *ingestion.Result
	Keywords   *types.CategorizedKeywords
	Report     *types.OptimizationReport
	Document   *types.ResumeDocument
	ResumeText string

	ResumePath   string
	AnalysisPath string
	TexPath      string
	PDFPath      string

	RunID uuid.UUID
}

// Run executes the full optimization pipeline for one job-posting source.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else if err := database.EnsureSchema(ctx); err != nil {
			fmt.Printf("Warning: Failed to apply database schema: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database.Close()
			database = nil
		} else {
			defer database.Close()
		}
	}

	fmt.Printf("Step 1/5: Extracting job posting from source...\n")
	extracted, err := ingestion.ExtractFromSource(ctx, opts.Source, ingestion.Options{
		UseBrowser: opts.UseBrowser,
		Verbose:    opts.Verbose,
		OCR:        opts.OCR,
	})
	if err != nil {
		return nil, fmt.Errorf("job ingestion failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintExtraction(extracted)
	}

	if database != nil {
		runID, err = database.CreateRun(ctx, opts.Source, extracted.Company, extracted.Position)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
			runID = uuid.Nil
		}
	}

	fmt.Printf("Step 2/5: Extracting keywords...\n")
	keywords := extraction.Extract(extracted.Text)
	if opts.Verbose {
		printer.PrintKeywords(keywords)
	}

	fmt.Printf("Step 3/5: Matching keywords against verified experience...\n")
	matcher := matching.New(opts.Record, opts.Tables, opts.MatchOptions)
	matches := matcher.MatchAll(keywords)
	optimizationReport := report.Assemble(keywords, matches, matcher, opts.Tables.Suggestions)

	fmt.Printf("Step 4/5: Selecting resume content...\n")
	content := selection.Select(opts.Record, opts.Tables, matches, opts.SelectOptions)
	document := BuildDocument(opts.Record, content, extracted.Position)
	resumeText := rendering.RenderText(document)

	fmt.Printf("Step 5/5: Saving artifacts...\n")
	now := time.Now()
	result := &RunResult{
		Source:     opts.Source,
		Extraction: extracted,
		Keywords:   keywords,
		Report:     optimizationReport,
		Document:   document,
		ResumeText: resumeText,
		RunID:      runID,
	}

	if opts.OutputDir != "" {
		result.ResumePath, err = SaveResumeText(opts.OutputDir, extracted.Company, resumeText, now)
		if err != nil {
			return nil, err
		}
		result.AnalysisPath, err = SaveAnalysis(opts.OutputDir, extracted.Company, optimizationReport, now)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Resume saved to: %s\n", result.ResumePath)
		fmt.Printf("Analysis saved to: %s\n", result.AnalysisPath)

		if opts.RenderLaTeX {
			texSource, rerr := rendering.RenderLaTeX(document, opts.TemplatePath)
			if rerr != nil {
				return nil, fmt.Errorf("LaTeX rendering failed: %w", rerr)
			}
			result.TexPath, err = SaveLaTeX(opts.OutputDir, extracted.Company, texSource, now)
			if err != nil {
				return nil, err
			}
			fmt.Printf("LaTeX saved to: %s\n", result.TexPath)

			// pdflatex can emit a usable PDF alongside errors; keep it either way.
			pdfPath, _, cerr := rendering.CompileLaTeX(result.TexPath, opts.OutputDir)
			if cerr != nil {
				fmt.Printf("Warning: PDF compilation failed: %v\n", cerr)
			}
			if pdfPath != "" {
				result.PDFPath = pdfPath
				_ = rendering.CleanupCompilationArtifacts(opts.OutputDir, result.TexPath)
				fmt.Printf("PDF saved to: %s\n", result.PDFPath)
			}
		}
	}

	if database != nil && runID != uuid.Nil {
		if err := database.SaveReport(ctx, runID, optimizationReport); err != nil {
			fmt.Printf("Warning: Failed to save report: %v\n", err)
		}
		if err := database.SaveResumeText(ctx, runID, resumeText); err != nil {
			fmt.Printf("Warning: Failed to save resume text: %v\n", err)
		}
		if err := database.CompleteRun(ctx, runID, "completed"); err != nil {
			fmt.Printf("Warning: Failed to complete run: %v\n", err)
		}
	}

	printer.PrintReport(optimizationReport)

	return result, nil
}
