package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: plugin names, paths, packages.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "patched" file status (medium visibility).
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "skipped" file status.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "failed" file status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (plugin names, paths, packages).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (generating, patching, writing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles that composite renderers take as a bundle.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Noun    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

var defaultStyles = &Styles{
	Bold:    lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Faint(true),
	Noun:    StyleNoun,
	Success: lipgloss.NewStyle().Foreground(ColorGreen),
	Warning: lipgloss.NewStyle().Foreground(ColorYellow),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed),
}

// GetStyles returns the default style bundle.
func GetStyles() *Styles {
	return defaultStyles
}

// File status constants.
const (
	StatusCreated   = "created"
	StatusPatched   = "patched"
	StatusUnchanged = "unchanged"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// StatusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusPatched:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFileColumnWidth is the minimum width for the file path column before
// the status suffix. This keeps status words aligned across lines.
const minFileColumnWidth = 48

// FormatFileLine renders a file path with a right-aligned, color-coded
// status suffix. The path is cyan and the status uses StatusStyle.
func FormatFileLine(path, status string) string {
	padding := minFileColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
