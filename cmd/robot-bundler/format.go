// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/RealOrangeOne/robot-bundler/pkg/bundlefile"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <bundle-file>",
	Short: "Re-serialize a bundle metadata file in canonical form",
	Long: `Load a bundle metadata file and print its canonical TOML form to
stdout. Key order and whitespace are normalized and the kit version is
re-rendered through the version grammar; the output always re-parses to
an equal document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logger.Debug("formatting bundle file", "path", path)

		info, err := bundlefile.Load(path)
		if err != nil {
			return reportLoadError(path, err)
		}

		data, err := info.Marshal()
		if err != nil {
			return fmt.Errorf("failed to serialize bundle: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}
