package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wristcheck/internal/finding"
	"wristcheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wristcheck",
	Short: "Pebble watchface project toolchain",
	Long:  `wristcheck scaffolds and validates Pebble watchface projects, catching structural and configuration mistakes before an expensive build or emulator cycle`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(uuidCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-findings", finding.DefaultMaxFindings, "maximum number of findings to collect")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
