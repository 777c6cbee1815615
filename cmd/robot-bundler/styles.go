// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across output.
const (
	// ColorPrimary is purple - used for titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for success states.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorHighlight is blue - used for file names and field values.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Base styles built from the color palette.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// ValueStyle is for field values and file names.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
