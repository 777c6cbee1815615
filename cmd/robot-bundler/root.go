// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/RealOrangeOne/robot-bundler/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	// verbose enables debug logging and full error chains
	verbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "robot-bundler",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "robot-bundler",
		Short: "Inspect and validate robot bundle metadata",
		Long: TitleStyle.Render("robot-bundler") + SubtitleStyle.Render(" - Inspect and validate robot bundle metadata") + `

Bundle metadata lives in a TOML file with three sections: the bundle
version, the kit name and version, and the WiFi provisioning settings.
The schema is strict: every field is required and no extra fields are
allowed anywhere.

` + SubtitleStyle.Render("Examples:") + `
  robot-bundler validate bundle.toml    Check a bundle file against the schema
  robot-bundler show bundle.toml        Print the parsed contents
  robot-bundler format bundle.toml      Re-serialize in canonical form`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(formatCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableError
// values render with their suggestions; in verbose mode the full error
// chain is included.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// printGuidance renders the markdown guidance for a known failure class,
// when the error belongs to one.
func printGuidance(err error) {
	guide := issue.ForError(err)
	if guide == nil {
		return
	}
	rendered, renderErr := guide.Render("dark")
	if renderErr != nil {
		logger.Debug("failed to render guidance", "err", renderErr)
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}
