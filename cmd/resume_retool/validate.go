package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nworkman/resume-retool/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate [kind] [file]",
	Short: "Validate a JSON artifact against its schema",
	Long:  `Validates an experience record, policy tables file, or optimization report against the corresponding JSON Schema. Kind is one of: record, policy, report.`,
	Args:  cobra.ExactArgs(2),
	RunE:  validateCmd,
}

func init() {
	rootCmd.AddCommand(validateCommand)
}

func validateCmd(_ *cobra.Command, args []string) error {
	kind, path := args[0], args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch kind {
	case "record":
		err = schemas.ValidateExperienceRecord(string(content))
	case "policy":
		err = schemas.ValidatePolicyTables(string(content))
	case "report":
		err = schemas.ValidateOptimizationReport(string(content))
	default:
		return fmt.Errorf("unknown kind %q (expected record, policy, or report)", kind)
	}

	if err != nil {
		return err
	}

	fmt.Printf("%s is a valid %s\n", path, kind)
	return nil
}
