// Package tui provides the interactive typing surface for govi.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#FF6B6B") // Red - title
	ColorAccent  = lipgloss.Color("#ffe66d") // Yellow - open word
	ColorMuted   = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess = lipgloss.Color("#a8e6cf") // Green - status values
	ColorText    = lipgloss.Color("#f1faee") // Light text
	ColorBg      = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt   = lipgloss.Color("#2d3436") // Alt background
	ColorBorder  = lipgloss.Color("#3d5a80") // Border color
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	textStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	openWordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt)

	rawInputStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	editorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	statusLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	statusValueStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
