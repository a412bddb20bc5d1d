package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/sumi/internal/highlight"
	"github.com/tinytelemetry/sumi/internal/model"
)

// View renders the viewer page.
func (m *ViewerModel) View(width, height int) string {
	if width > 0 && height > 0 {
		m.width = width
		m.height = height
	}

	if m.width <= 0 || m.height <= 0 {
		return "Loading viewer..."
	}

	if m.tooSmall() {
		return m.renderTooSmall()
	}

	if m.showHelp {
		return m.renderHelpModal(m.width, m.height)
	}

	title := titleStyle.Render("Super User Management Interface")
	tabs := m.renderTabBar()
	content := m.renderContent()
	status := m.renderStatusLine()

	return lipgloss.JoinVertical(lipgloss.Left, title, tabs, content, status)
}

// renderTooSmall renders the invalid-configuration notice shown when the
// display cannot fit a single log row.
func (m *ViewerModel) renderTooSmall() string {
	notice := noticeStyle.Render(
		fmt.Sprintf("Terminal too small. Resize to at least %dx%d.", minWidth, minHeight))
	if m.width < 1 || m.height < 1 {
		return notice
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, notice)
}

func (m *ViewerModel) renderTabBar() string {
	parts := make([]string, 0, model.TabCount())
	for _, tab := range model.Tabs() {
		if tab == m.pg.Tab() {
			parts = append(parts, activeTabStyle.Render(tab.Title()))
			continue
		}
		parts = append(parts, tabStyle.Render(tab.Title()))
	}
	separator := helpStyle.Render("│")
	return strings.Join(parts, separator)
}

func (m *ViewerModel) renderContent() string {
	contentWidth := m.width - 2 // section border
	contentHeight := m.pageCapacity()

	switch m.pg.Tab() {
	case model.TabAll, model.TabSudo:
		return m.renderLogPage(contentWidth, contentHeight)
	case model.TabCommands:
		return m.renderCommandsTab(contentWidth, contentHeight)
	}
	return ""
}

// renderLogPage renders the current page of log lines with inline highlights.
func (m *ViewerModel) renderLogPage(width, height int) string {
	names := m.users.Names()

	rows := make([]string, 0, height)
	for _, line := range m.pageLines() {
		rows = append(rows, renderSpans(highlight.Tokenize(line.Text, names), width))
	}
	if len(rows) == 0 {
		rows = append(rows, helpStyle.Render("No log entries."))
	}

	return sectionStyle.
		Width(width).
		Height(height).
		Render(strings.Join(rows, "\n"))
}

// renderSpans converts tokenized spans into one styled row, truncated to the
// available width.
func renderSpans(spans []highlight.Span, width int) string {
	var b strings.Builder
	remaining := width
	for _, span := range spans {
		if remaining <= 0 {
			break
		}
		text := span.Text
		if len(text) > remaining {
			text = text[:remaining]
		}
		remaining -= len(text)
		b.WriteString(spanStyle(span.Role).Render(text))
	}
	return b.String()
}

// renderStatusLine renders the bottom bar: source path, page position, item
// count, and key hints.
func (m *ViewerModel) renderStatusLine() string {
	left := fmt.Sprintf(" %q  page %d/%d  entries %d",
		m.logPath, displayPage(m.pg.Page(), m.pg.Pages()), m.pg.Pages(), m.pg.Items())
	right := "←/→ tabs · ↑/↓ pages · ? help · q quit "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return statusStyle.Width(m.width).Render(left)
	}
	return statusStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// displayPage converts the zero-based page index to the 1-based position
// shown to the operator; zero pages display as 0/0.
func displayPage(page, pages int) int {
	if pages == 0 {
		return 0
	}
	return page + 1
}
