// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/RealOrangeOne/robot-bundler/internal/issue"
	"github.com/RealOrangeOne/robot-bundler/pkg/bundlefile"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <bundle-file>",
	Short: "Check a bundle metadata file against the schema",
	Long: `Load a bundle metadata file and check it against the strict schema:
all fields present, no extra fields anywhere, and a kit version that
matches the version grammar. Exits non-zero on the first violation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logger.Debug("validating bundle file", "path", path)

		info, err := bundlefile.Load(path)
		if err != nil {
			return reportLoadError(path, err)
		}

		logger.Debug("bundle file valid", "kit", info.Kit.Name, "version", info.Kit.Version)
		fmt.Printf("%s %s is a valid bundle file (kit %s, version %s)\n",
			SuccessStyle.Render("✓"), ValueStyle.Render(path), info.Kit.Name, info.Kit.Version)
		return nil
	},
}

// reportLoadError prints rendered guidance for known failure classes and
// the actionable error with its suggestions, then returns the error so the
// process exits non-zero.
func reportLoadError(path string, err error) error {
	printGuidance(err)

	actionable := issue.NewErrorContext().
		WithOperation("load bundle file").
		WithResource(path).
		WithSuggestion("Run with --verbose for the full error chain").
		Wrap(err).
		BuildError()
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(actionable, verbose))
	return actionable
}
