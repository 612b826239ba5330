package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nworkman/resume-retool/internal/db"
	"github.com/nworkman/resume-retool/internal/observability"
)

var reportCommand = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Show the stored optimization report for a past run",
	Long:  `Looks up a persisted optimization run by its ID and prints the stored report. Requires the database persistence used by the run command.`,
	Args:  cobra.ExactArgs(1),
	RunE:  reportCmd,
}

var (
	reportDatabaseURL string
	reportJSON        bool
)

func init() {
	reportCommand.Flags().StringVar(&reportDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	reportCommand.Flags().BoolVar(&reportJSON, "json", false, "Print the report as JSON instead of the summary box")

	rootCmd.AddCommand(reportCommand)
}

func reportCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	runID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid run ID %q: %w", args[0], err)
	}

	databaseURL := reportDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("a database URL is required (--db-url or DATABASE_URL)")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	storedReport, err := database.GetReport(ctx, runID)
	if err != nil {
		return err
	}
	if storedReport == nil {
		return fmt.Errorf("no report stored for run %s", runID)
	}

	if reportJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(storedReport)
	}

	observability.NewPrinter(os.Stdout).PrintReport(storedReport)
	return nil
}
