// Package main provides the entry point for the resume-retool CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_retool",
	Short: "Keyword-optimized resume builder grounded in verified experience",
	Long:  "resume_retool extracts keywords from a job posting, matches them against a verified experience record, and renders a customized resume that never claims anything outside the record.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
