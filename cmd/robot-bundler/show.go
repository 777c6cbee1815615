// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/RealOrangeOne/robot-bundler/pkg/bundlefile"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <bundle-file>",
	Short: "Print the parsed contents of a bundle metadata file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logger.Debug("loading bundle file", "path", path)

		info, err := bundlefile.Load(path)
		if err != nil {
			return reportLoadError(path, err)
		}

		fmt.Println(TitleStyle.Render("Bundle"))
		fmt.Printf("  version: %s\n", ValueStyle.Render(info.Bundle.Version))

		fmt.Println(TitleStyle.Render("Kit"))
		fmt.Printf("  name:    %s\n", ValueStyle.Render(info.Kit.Name))
		fmt.Printf("  version: %s\n", ValueStyle.Render(info.Kit.Version.String()))
		if info.Kit.Version.Dev {
			fmt.Printf("           %s\n", SubtitleStyle.Render("development build"))
		}
		if build := info.Kit.Version.BuildInfo; build != nil {
			fmt.Printf("  built:   %s\n", SubtitleStyle.Render(build.String()))
		}

		fmt.Println(TitleStyle.Render("WiFi"))
		fmt.Printf("  ssid:    %s\n", ValueStyle.Render(info.WiFi.SSID))
		fmt.Printf("  psk:     %s\n", ValueStyle.Render(info.WiFi.PSK))
		fmt.Printf("  enabled: %v\n", info.WiFi.Enabled)
		fmt.Printf("  region:  %s\n", ValueStyle.Render(info.WiFi.Region))

		return nil
	},
}
