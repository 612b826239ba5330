package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nworkman/resume-retool/internal/config"
	"github.com/nworkman/resume-retool/internal/matching"
	"github.com/nworkman/resume-retool/internal/pipeline"
	"github.com/nworkman/resume-retool/internal/profile"
	"github.com/nworkman/resume-retool/internal/selection"
	"github.com/nworkman/resume-retool/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run [sources...]",
	Short: "Run the full optimization pipeline for one or more job postings",
	Long: `Extracts keywords from each job-posting source (URL, screenshot, PDF, text file, or raw text), matches them against the verified experience record, and writes a customized resume plus an analysis report per source.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runRecord      string
	runPolicy      string
	runTemplate    string
	runOutput      string
	runUseBrowser  bool
	runVerbose     bool
	runLaTeX       bool
	runDatabaseURL string
	runMaxSkills   int
	runMinRoles    int
	runMaxRoles    int
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runRecord, "record", "r", "", "Path to experience record JSON")
	runCommand.Flags().StringVarP(&runPolicy, "policy", "p", "", "Path to policy tables JSON (default uses the built-in tables)")
	runCommand.Flags().StringVarP(&runTemplate, "template", "t", "", "Path to LaTeX template (default uses the built-in template)")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Output directory (default: output)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().BoolVar(&runLaTeX, "latex", false, "Also render a LaTeX source file")
	runCommand.Flags().IntVar(&runMaxSkills, "max-skills", 0, "Maximum skills in the rendered resume")
	runCommand.Flags().IntVar(&runMinRoles, "min-roles", 0, "Minimum roles in the rendered resume")
	runCommand.Flags().IntVar(&runMaxRoles, "max-roles", 0, "Maximum roles in the rendered resume")

	// Database URL for run persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(cmd, args)
	if err != nil {
		return err
	}

	record, tables, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	opts := pipeline.RunOptions{
		Record:       record,
		Tables:       tables,
		TemplatePath: cfg.Template,
		OutputDir:    cfg.Output,
		UseBrowser:   cfg.UseBrowser,
		Verbose:      cfg.Verbose,
		RenderLaTeX:  cfg.RenderLaTeX,
		DatabaseURL:  cfg.DatabaseURL,
		MatchOptions: matching.Options{
			ExactConfidence:   cfg.ExactConfidence,
			DomainConfidence:  cfg.DomainConfidence,
			SynonymConfidence: cfg.SynonymConfidence,
		},
		SelectOptions: selection.Options{
			MaxSkills: cfg.MaxSkills,
			MinRoles:  cfg.MinRoles,
			MaxRoles:  cfg.MaxRoles,
		},
	}

	if len(cfg.Sources) == 1 {
		opts.Source = cfg.Sources[0]
		_, err = pipeline.Run(ctx, opts)
		return err
	}

	results, err := pipeline.RunBatch(ctx, cfg.Sources, opts)
	if err != nil {
		return err
	}
	fmt.Printf("\nProcessed %d job postings.\n", len(results))
	return nil
}

// mergedConfig builds the effective config: file values, then explicit flag
// overrides, then defaults.
func mergedConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Positional sources take priority over config-file sources
	if len(args) > 0 {
		cfg.Sources = args
	}

	if cmd.Flags().Changed("record") {
		cfg.Record = runRecord
	}
	if cmd.Flags().Changed("policy") {
		cfg.Policy = runPolicy
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = runTemplate
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("latex") {
		cfg.RenderLaTeX = runLaTeX
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("max-skills") {
		cfg.MaxSkills = runMaxSkills
	}
	if cmd.Flags().Changed("min-roles") {
		cfg.MinRoles = runMinRoles
	}
	if cmd.Flags().Changed("max-roles") {
		cfg.MaxRoles = runMaxRoles
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Output: "output",
	})

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if len(cfg.Sources) == 0 {
		return cfg, fmt.Errorf("at least one job-posting source is required (positional argument or config)")
	}
	if cfg.Record == "" {
		return cfg, fmt.Errorf("--record is required (via flag or config)")
	}

	return cfg, nil
}

// loadProfile loads the experience record and the policy tables named by the
// config. An empty policy path uses the built-in tables.
func loadProfile(cfg config.Config) (*types.ExperienceRecord, *types.PolicyTables, error) {
	record, err := profile.LoadRecord(cfg.Record)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load experience record: %w", err)
	}

	tables := profile.DefaultPolicy()
	if cfg.Policy != "" {
		tables, err = profile.LoadPolicy(cfg.Policy)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load policy tables: %w", err)
		}
	}

	return record, tables, nil
}
