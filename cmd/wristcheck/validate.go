package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wristcheck/internal/config"
	"wristcheck/internal/driver"
	"wristcheck/internal/reportfmt"
)

var validateCmd = &cobra.Command{
	Use:   "validate <project>",
	Short: "Validate the structure and configuration of a watchface project",
	Long: `Validate walks a watchface project directory and applies a fixed battery of
structural, schema and source-heuristic checks: manifest fields, source tree
layout, risky code patterns, resource presence. The exit status is 0 when no
error-severity finding was produced and 1 otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// runValidate executes the "validate" command: it resolves output settings
// from flags and an optional wristcheck.toml, runs the validators over the
// given project path, renders the report, and exits non-zero when any
// finding carries error severity.
func runValidate(cmd *cobra.Command, args []string) error {
	projectPath := args[0]

	cfg, err := config.Discover(projectPath)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		if format, err = cmd.Flags().GetString("format"); err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	colorMode := cfg.Output.Color
	if cmd.Root().PersistentFlags().Changed("color") {
		if colorMode, err = cmd.Root().PersistentFlags().GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	switch colorMode {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("unknown color mode: %s", colorMode)
	}

	quiet := cfg.Output.Quiet
	if cmd.Root().PersistentFlags().Changed("quiet") {
		if quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
			return fmt.Errorf("failed to get quiet flag: %w", err)
		}
	}

	maxFindings := cfg.Output.MaxFindings
	if cmd.Root().PersistentFlags().Changed("max-findings") {
		if maxFindings, err = cmd.Root().PersistentFlags().GetInt("max-findings"); err != nil {
			return fmt.Errorf("failed to get max-findings flag: %w", err)
		}
	}

	result := driver.ValidateWithOptions(projectPath, driver.Options{MaxFindings: maxFindings})

	useColor := colorMode == "on" || (colorMode == "auto" && isTerminal(os.Stdout))
	switch format {
	case "pretty":
		opts := reportfmt.PrettyOpts{
			Color: useColor,
			Quiet: quiet,
		}
		reportfmt.Pretty(os.Stdout, result.ProjectPath, result.Report, opts)
	case "json":
		if err := reportfmt.JSON(os.Stdout, result.ProjectPath, result.Report, reportfmt.JSONOpts{Indent: true}); err != nil {
			return err
		}
	}

	if result.Report.HasErrors() {
		// Suppress cobra usage output; the findings already communicate the
		// failure.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}
