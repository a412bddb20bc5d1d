package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/tinytelemetry/sumi/internal/authlog"
	"github.com/tinytelemetry/sumi/internal/model"
	"github.com/tinytelemetry/sumi/internal/pager"
	"github.com/tinytelemetry/sumi/internal/sudoers"
)

// Vertical chrome around the log page: title line, tab bar, content border
// (2), status line.
const chromeHeight = 5

// Minimum terminal size before the viewer falls back to a resize notice.
const (
	minWidth  = 40
	minHeight = chromeHeight + 3
)

// ViewerModel is the single page of the viewer: tabbed, paginated log display
// over data loaded once at startup. All log data is immutable; only
// navigation state changes after construction.
type ViewerModel struct {
	keys KeyMap

	logPath string
	lines   []model.LogLine
	report  *authlog.Report
	users   *sudoers.Set

	pg *pager.Pager

	recentCommands int
	topCommands    int

	width  int
	height int

	showHelp bool
	helpVP   viewport.Model
}

// Options configure a ViewerModel.
type Options struct {
	LogPath        string
	Lines          []model.LogLine
	Report         *authlog.Report
	Users          *sudoers.Set
	RecentCommands int
	TopCommands    int
}

// NewViewerModel creates the viewer page over already-loaded data.
func NewViewerModel(opts Options) *ViewerModel {
	recent := opts.RecentCommands
	if recent <= 0 {
		recent = model.DefaultRecentCommands
	}
	top := opts.TopCommands
	if top <= 0 {
		top = model.DefaultTopCommands
	}

	return &ViewerModel{
		keys:           DefaultKeyMap(),
		logPath:        opts.LogPath,
		lines:          opts.Lines,
		report:         opts.Report,
		users:          opts.Users,
		pg:             pager.New(),
		recentCommands: recent,
		topCommands:    top,
	}
}

func (m *ViewerModel) ID() string { return "viewer" }

func (m *ViewerModel) Init() tea.Cmd { return nil }

// pageCapacity is the number of log rows the content area can show at the
// current height. It can reach zero on tiny terminals; the pager treats that
// as an invalid configuration and View renders a resize notice instead.
func (m *ViewerModel) pageCapacity() int {
	return m.height - chromeHeight
}

// tabItemCount returns the length of the sequence the active tab paginates.
// The COMMANDS tab summarizes the same event sequence the SUDO tab shows.
func (m *ViewerModel) tabItemCount() int {
	switch m.pg.Tab() {
	case model.TabAll:
		return len(m.lines)
	case model.TabSudo, model.TabCommands:
		return len(m.report.Events)
	}
	return 0
}

// recompute re-derives the pagination layout from the current tab and height.
// Called from Update whenever either may have changed; View stays pure.
func (m *ViewerModel) recompute() {
	m.pg.Recompute(m.tabItemCount(), m.pageCapacity())
}

// pageLines returns the raw log lines of the current page for the ALL and
// SUDO tabs.
func (m *ViewerModel) pageLines() []model.LogLine {
	first, last := m.pg.Bounds()
	switch m.pg.Tab() {
	case model.TabAll:
		return m.lines[first:last]
	case model.TabSudo:
		lines := make([]model.LogLine, 0, last-first)
		for _, event := range m.report.Events[first:last] {
			lines = append(lines, event.Line)
		}
		return lines
	}
	return nil
}

func (m *ViewerModel) tooSmall() bool {
	return m.width < minWidth || m.height < minHeight || m.pageCapacity() < 1
}
