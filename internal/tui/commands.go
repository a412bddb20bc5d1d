package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/sumi/internal/model"
)

// Width ratio of the recent-commands panel on the COMMANDS tab.
const recentPanelRatio = 0.3

// renderCommandsTab renders the command summary: the newest sudo invocations
// on the left and the invocation frequency chart on the right.
func (m *ViewerModel) renderCommandsTab(width, height int) string {
	recentWidth := int(float64(width) * recentPanelRatio)
	if recentWidth < 20 {
		recentWidth = 20
	}
	freqWidth := width - recentWidth
	if freqWidth < 20 {
		freqWidth = 20
	}

	recent := m.renderRecentPanel(recentWidth-2, height)
	freq := m.renderFrequencyPanel(freqWidth-2, height)

	return lipgloss.JoinHorizontal(lipgloss.Top, recent, freq)
}

// renderRecentPanel lists the newest sudo events as "user: command".
func (m *ViewerModel) renderRecentPanel(width, height int) string {
	title := sectionTitleStyle.Render("Recent")

	events := m.report.Recent(m.recentCommands)
	rows := make([]string, 0, len(events)+1)
	rows = append(rows, title)
	for _, event := range events {
		user := usernameSpanStyle.Render(event.User)
		rows = append(rows, truncateRow(user+plainSpanStyle.Render(": "+event.Command), width))
	}
	if len(events) == 0 {
		rows = append(rows, helpStyle.Render("No sudo activity."))
	}

	return sectionStyle.
		Width(width).
		Height(height).
		Render(strings.Join(rows, "\n"))
}

// renderFrequencyPanel draws the most-invoked commands as a bar chart with a
// count legend beneath it.
func (m *ViewerModel) renderFrequencyPanel(width, height int) string {
	title := sectionTitleStyle.Render("Frequency")

	top := m.report.TopCommands()
	if len(top) == 0 {
		return sectionStyle.
			Width(width).
			Height(height).
			Render(title + "\n" + helpStyle.Render("No commands recorded."))
	}
	if len(top) > m.topCommands {
		top = top[:m.topCommands]
	}

	legendHeight := len(top)
	chartHeight := height - legendHeight - 2 // title + spacer
	if chartHeight < 3 {
		chartHeight = 3
	}

	chart := renderFrequencyChart(top, width, chartHeight)
	legend := renderFrequencyLegend(top, width)

	return sectionStyle.
		Width(width).
		Height(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, chart, legend))
}

func renderFrequencyChart(top []model.CommandCount, width, height int) string {
	barStyle := lipgloss.NewStyle().
		Foreground(ColorOrange).
		Background(ColorOrange)

	bc := barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
		barchart.WithNoAxis(),
	)

	for _, cc := range top {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: cc.Command, Value: float64(cc.Count), Style: barStyle},
			},
		})
	}

	bc.Draw()
	return bc.View()
}

func renderFrequencyLegend(top []model.CommandCount, width int) string {
	rows := make([]string, 0, len(top))
	for _, cc := range top {
		count := keywordSpanStyle.Render(fmt.Sprintf("%4d", cc.Count))
		rows = append(rows, truncateRow(count+plainSpanStyle.Render("  "+cc.Command), width))
	}
	return strings.Join(rows, "\n")
}

// truncateRow trims a styled row to the panel width.
func truncateRow(row string, width int) string {
	if lipgloss.Width(row) <= width {
		return row
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}
