// Package tui provides an interactive preview of a practice sheet.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/zitie/internal/render"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - author, toggles
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - advisories
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - success
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Toggle indicator styles
var (
	ToggleOnStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	AdvisoryStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// PlaceholderStyle frames the selection placeholder when there is no sheet.
var PlaceholderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Foreground(ColorMuted).
	Padding(1, 2)

// SheetTheme is the terminal sheet theme used by the preview.
func SheetTheme() render.Theme {
	return render.DefaultTheme()
}
