package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joanrios/insultari/internal/insults"
)

type ReportMode string

func (m *ReportMode) Set(val string) error {
	for _, mode := range allReportModes {
		if val == string(mode) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("invalid report mode: %s", val)
}

func (m ReportMode) String() string {
	return string(m)
}

func (m *ReportMode) Type() string {
	return "ReportMode"
}

const (
	ReportModeFull       ReportMode = "full"
	ReportModeErrorsOnly ReportMode = "errors"
)

var (
	_              pflag.Value = (*ReportMode)(nil)
	allReportModes             = []ReportMode{ReportModeFull, ReportModeErrorsOnly}
)

func newValidateCommand() *cobra.Command {
	var file string

	report := ReportModeFull
	command := &cobra.Command{
		Use:   "validate",
		Short: "Validate the collection for duplicates and broken records",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file
			if path == "" {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("loadConfig() > %w", err)
				}
				path = cfg.Insults.File
			}

			collection, err := insults.NewJSONInsultRepository(path).Load()
			if err != nil {
				return fmt.Errorf("repository.Load > %w", err)
			}

			result := insults.NewValidator(collection).Validate()
			if report == ReportModeErrorsOnly {
				result.Warnings = nil
			}
			displayValidationResults(result)

			if result.HasErrors() {
				return fmt.Errorf("validation failed with %d error(s)",
					len(result.DuplicateErrors)+len(result.RecordErrors))
			}
			return nil
		},
	}

	command.Flags().StringVar(&file, "file", "", "insults document path")
	command.Flags().Var(&report, "report", fmt.Sprintf("Report mode. Possible values are %v", allReportModes))

	return command
}

func displayValidationResults(result *insults.ValidationResult) {
	fmt.Println("\n=== Validation Results ===")

	if len(result.DuplicateErrors) > 0 {
		fmt.Printf("✗ Duplicate words (%d):\n", len(result.DuplicateErrors))
		for _, err := range result.DuplicateErrors {
			fmt.Printf("  - [%s] %s\n", err.Severity, err.Error())
		}
		fmt.Println()
	}

	if len(result.RecordErrors) > 0 {
		fmt.Printf("✗ Broken records (%d):\n", len(result.RecordErrors))
		for _, err := range result.RecordErrors {
			fmt.Printf("  - [%s] %s\n", err.Severity, err.Error())
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("⚠ Warnings (%d):\n", len(result.Warnings))
		for _, warn := range result.Warnings {
			fmt.Printf("  - [%s] %s\n", warn.Severity, warn.Error())
		}
		fmt.Println()
	}

	fmt.Println("=== Summary ===")
	if !result.HasErrors() && len(result.Warnings) == 0 {
		fmt.Println("✓ All validations passed!")
	} else {
		if result.HasErrors() {
			fmt.Printf("✗ Total errors: %d\n", len(result.DuplicateErrors)+len(result.RecordErrors))
		}
		if len(result.Warnings) > 0 {
			fmt.Printf("⚠ Total warnings: %d\n", len(result.Warnings))
		}
	}
	fmt.Println()
}
