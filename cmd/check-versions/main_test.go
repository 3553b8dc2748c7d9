package main

import (
	"testing"

	"github.com/spf13/cobra"
)

// TestRootCommandFlags tests that every check flag and shorthand is registered
func TestRootCommandFlags(t *testing.T) {
	tests := []struct {
		flagName  string
		shorthand string
	}{
		{"versions-file", "v"},
		{"outfile", "o"},
		{"quiet", "q"},
		{"github-token", "g"},
		{"dry-run", ""},
		{"config", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			flag := rootCmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				t.Fatalf("root command should have --%s flag", tt.flagName)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("--%s: expected shorthand %q, got %q", tt.flagName, tt.shorthand, flag.Shorthand)
			}
		})
	}
}

func TestVersionsFileIsRequired(t *testing.T) {
	flag := rootCmd.Flags().Lookup("versions-file")
	if flag == nil {
		t.Fatal("missing --versions-file flag")
	}
	if _, ok := flag.Annotations[cobra.BashCompOneRequiredFlag]; !ok {
		t.Error("--versions-file should be marked required")
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command should have persistent --%s flag", name)
		}
	}
}

func TestCompletionCommandExists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd == completionCmd {
			found = true
			break
		}
	}
	if !found {
		t.Error("completion subcommand should be registered")
	}
}

func TestRootCommandRun(t *testing.T) {
	if rootCmd.Run == nil {
		t.Error("root command should have a Run function")
	}
	if rootCmd.Version == "" {
		t.Error("root command should report a version")
	}
}
