package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nworkman/resume-retool/internal/extraction"
	"github.com/nworkman/resume-retool/internal/ingestion"
	"github.com/nworkman/resume-retool/internal/matching"
	"github.com/nworkman/resume-retool/internal/observability"
	"github.com/nworkman/resume-retool/internal/profile"
	"github.com/nworkman/resume-retool/internal/report"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze [source]",
	Short: "Report keyword matches without generating a resume",
	Long:  `Extracts keywords from a job-posting source and reports which ones the verified experience record can support, without writing any resume artifacts.`,
	Args:  cobra.ExactArgs(1),
	RunE:  analyzeCmd,
}

var (
	analyzeRecord     string
	analyzePolicy     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeJSON       bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeRecord, "record", "r", "", "Path to experience record JSON (required)")
	analyzeCommand.Flags().StringVarP(&analyzePolicy, "policy", "p", "", "Path to policy tables JSON (default uses the built-in tables)")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON instead of the summary box")
	_ = analyzeCommand.MarkFlagRequired("record")

	rootCmd.AddCommand(analyzeCommand)
}

func analyzeCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	record, err := profile.LoadRecord(analyzeRecord)
	if err != nil {
		return fmt.Errorf("failed to load experience record: %w", err)
	}

	tables := profile.DefaultPolicy()
	if analyzePolicy != "" {
		tables, err = profile.LoadPolicy(analyzePolicy)
		if err != nil {
			return fmt.Errorf("failed to load policy tables: %w", err)
		}
	}

	extracted, err := ingestion.ExtractFromSource(ctx, args[0], ingestion.Options{
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
	})
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	keywords := extraction.Extract(extracted.Text)
	matcher := matching.New(record, tables, matching.DefaultOptions())
	matches := matcher.MatchAll(keywords)
	optimizationReport := report.Assemble(keywords, matches, matcher, tables.Suggestions)

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(optimizationReport)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintExtraction(extracted)
	printer.PrintKeywords(keywords)
	printer.PrintReport(optimizationReport)
	return nil
}
