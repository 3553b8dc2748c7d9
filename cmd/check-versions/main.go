package main

import (
	"fmt"
	"os"

	"github.com/kata-containers/check-versions/internal/common/logger"
	"github.com/kata-containers/check-versions/internal/common/output"
	"github.com/kata-containers/check-versions/internal/common/version"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "check-versions",
	Short: "Report components of a versions file that may need upgrading",
	Long: `Version checking utility to identify which project components may need upgrading
to the latest version. Only some types of components can be checked automatically;
the rest are skipped silently.

Examples:
  check-versions -v versions.yaml
  check-versions -v versions.yaml -o report.txt -q
  GITHUB_TOKEN=ghp_xxx check-versions -v versions.yaml`,
	Version:      version.Short(),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on flags
		if verbose {
			logger.SetVerbose(true)
		}
		if noColor {
			output.NoColor()
		}
	},
	Run: runCheck,
}

func init() {
	rootCmd.SetVersionTemplate(version.Info())

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
