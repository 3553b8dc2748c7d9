package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrManifestPathNotSet = errors.New("versions file path is not configured")
)

// Config represents the optional user configuration file
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	Output OutputConfig `yaml:"output"`
}

// GitHubConfig holds GitHub API settings
type GitHubConfig struct {
	Token string `yaml:"token"` // Personal access token for higher rate limits
}

// OutputConfig holds report output settings
type OutputConfig struct {
	File  string `yaml:"file"`  // Report lines are appended here when set
	Quiet bool   `yaml:"quiet"` // Suppress report lines on stdout
}

// Flags holds values given on the command line. Empty strings and false
// mean "not given".
type Flags struct {
	ManifestPath string
	OutputFile   string
	Quiet        bool
	GitHubToken  string
}

// Options is the resolved configuration consumed by the checker.
type Options struct {
	ManifestPath string
	OutputFile   string
	Quiet        bool
	GitHubToken  string
}

// TokenEnvVar is the environment variable read for the GitHub token
const TokenEnvVar = "GITHUB_TOKEN"

// ConfigPaths returns all possible config file paths in priority order
// 1. ~/.config/check-versions/config.yaml (XDG standard - priority)
// 2. ~/.check-versions/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "check-versions", "config.yaml"),
		filepath.Join(home, ".check-versions", "config.yaml"),
	}, nil
}

// FindConfigPath returns the first existing config file path, or the empty
// string when none exists
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// Load reads configuration from the first available config file.
// No config file is not an error.
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return &Config{}, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path. A missing file
// yields the zero configuration; the file is never created.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve merges command-line flags, the environment and the config file.
// Flags take precedence over the environment, which takes precedence over
// the file.
func (c *Config) Resolve(flags Flags, getenv func(string) string) (*Options, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if flags.ManifestPath == "" {
		return nil, ErrManifestPathNotSet
	}

	manifestPath, err := ExpandHome(flags.ManifestPath)
	if err != nil {
		return nil, err
	}

	outputFile, err := ExpandHome(firstNonEmpty(flags.OutputFile, c.Output.File))
	if err != nil {
		return nil, err
	}

	return &Options{
		ManifestPath: manifestPath,
		OutputFile:   outputFile,
		Quiet:        flags.Quiet || c.Output.Quiet,
		GitHubToken:  firstNonEmpty(flags.GitHubToken, getenv(TokenEnvVar), c.GitHub.Token),
	}, nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
