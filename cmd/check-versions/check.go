package main

import (
	"os"

	"github.com/kata-containers/check-versions/internal/checker"
	"github.com/kata-containers/check-versions/internal/common/config"
	"github.com/kata-containers/check-versions/internal/common/logger"
	"github.com/kata-containers/check-versions/internal/manifest"
	"github.com/kata-containers/check-versions/internal/report"
	"github.com/spf13/cobra"
)

var (
	// checkVersionsFile is the manifest to audit
	checkVersionsFile string
	// checkOutfile receives a copy of every report line
	checkOutfile string
	// checkQuiet suppresses console report lines
	checkQuiet bool
	// checkGitHubToken authenticates GitHub API requests
	checkGitHubToken string
	// checkDryRun prints the classified upstream instead of querying it
	checkDryRun bool
	// checkConfigPath overrides the config file location
	checkConfigPath string
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&checkVersionsFile, "versions-file", "v", "", "The versions file listing components to check for updates")
	flags.StringVarP(&checkOutfile, "outfile", "o", "", "Also append output to the specified file")
	flags.BoolVarP(&checkQuiet, "quiet", "q", false, "Do not print output to the console (useful with --outfile)")
	flags.StringVarP(&checkGitHubToken, "github-token", "g", "", "GitHub token for more API requests per hour (overrides "+config.TokenEnvVar+")")
	flags.BoolVar(&checkDryRun, "dry-run", false, "Show which upstream each component would be checked against")
	flags.StringVar(&checkConfigPath, "config", "", "Path to the config file")

	rootCmd.MarkFlagRequired("versions-file")
}

// runCheck loads the versions file and reports every component
func runCheck(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}

	opts, err := cfg.Resolve(config.Flags{
		ManifestPath: checkVersionsFile,
		OutputFile:   checkOutfile,
		Quiet:        checkQuiet,
		GitHubToken:  checkGitHubToken,
	}, os.Getenv)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	logger.SetQuiet(opts.Quiet)

	versions, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	reporter, err := report.New(opts.OutputFile, report.WithQuiet(opts.Quiet))
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	defer reporter.Close()

	engine := checker.NewEngine(reporter,
		checker.WithGitHubToken(opts.GitHubToken),
		checker.WithDryRun(checkDryRun),
	)

	results, err := engine.Run(cmd.Context(), versions)
	if err != nil {
		logger.Error("unable to check versions in %s: %v", opts.ManifestPath, err)
		reporter.Close()
		os.Exit(1)
	}

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
	}
	logger.Debug("checked %d component(s), %d failed", len(results), failed)
}

func loadConfig() (*config.Config, error) {
	if checkConfigPath != "" {
		return config.LoadFrom(checkConfigPath)
	}
	return config.Load()
}
