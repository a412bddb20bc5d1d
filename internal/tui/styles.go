package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/sumi/internal/highlight"
)

// Color palette shared across the viewer.
var (
	ColorNavy   = lipgloss.Color("#1a1b4b")
	ColorWhite  = lipgloss.Color("15")
	ColorGray   = lipgloss.Color("245")
	ColorDim    = lipgloss.Color("240")
	ColorBlue   = lipgloss.Color("39")
	ColorRed    = lipgloss.Color("196")
	ColorOrange = lipgloss.Color("208")
	ColorGreen  = lipgloss.Color("46")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(ColorDim).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorNavy)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBlue)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorOrange)

	statusStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	noticeStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)
)

// Span role styling for highlighted log lines.
var (
	plainSpanStyle    = lipgloss.NewStyle().Foreground(ColorGray)
	keywordSpanStyle  = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	usernameSpanStyle = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
)

// spanStyle maps a span role to its lipgloss style.
func spanStyle(role highlight.Role) lipgloss.Style {
	switch role {
	case highlight.RoleKeyword:
		return keywordSpanStyle
	case highlight.RoleUsername:
		return usernameSpanStyle
	}
	return plainSpanStyle
}
