package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelpModal renders the scrollable help overlay.
func (m *ViewerModel) renderHelpModal(width, height int) string {
	modalWidth := width - 8
	modalHeight := height - 4
	if modalWidth < 30 {
		modalWidth = width
	}
	if modalHeight < 8 {
		modalHeight = height
	}

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	m.helpVP.Width = contentWidth
	m.helpVP.Height = contentHeight
	m.helpVP.SetContent(helpContent())

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(m.helpVP.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render("Help")

	statusBar := helpStyle.Render("↑/↓: Scroll | ?/h: Toggle Help | ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

func helpContent() string {
	return `Sudo Log Viewer Help

NAVIGATION:
  left/right     - Switch tab (wraps around)
  up/down or k/j - Previous/next page
  Home           - Jump to the first (oldest) page
  End            - Jump to the last (newest) page
  ? or h         - Toggle this help
  Escape         - Close this help
  q/Ctrl+C       - Quit

TABS:
  ALL            - Every line of the auth log
  SUDO           - Privilege-escalation events only
  COMMANDS       - Recent sudo invocations and command frequency

HIGHLIGHTS:
  The escalation keyword is shown in red; members of the sudo
  group are shown in white. Both are matched inline while the
  page renders.

Each tab opens on its last page so the newest entries are
visible by default.`
}
