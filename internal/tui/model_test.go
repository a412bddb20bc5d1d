package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/sumi/internal/authlog"
	"github.com/tinytelemetry/sumi/internal/model"
	"github.com/tinytelemetry/sumi/internal/sudoers"
)

func testViewer(t *testing.T, lineCount, sudoCount int) *ViewerModel {
	t.Helper()

	var lines []model.LogLine
	for i := 0; i < lineCount-sudoCount; i++ {
		lines = append(lines, model.LogLine{
			Index: len(lines),
			Text:  fmt.Sprintf("line %d: sshd session", len(lines)),
		})
	}
	for i := 0; i < sudoCount; i++ {
		lines = append(lines, model.LogLine{
			Index: len(lines),
			Text:  fmt.Sprintf("host sudo: alice : COMMAND=/bin/cmd%d", i),
		})
	}

	return NewViewerModel(Options{
		LogPath: "/var/log/auth.log",
		Lines:   lines,
		Report:  authlog.Classify(lines),
		Users:   sudoers.Parse([]string{"sudo:x:27:alice,bob"}),
	})
}

func resize(m *ViewerModel, width, height int) {
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

func press(m *ViewerModel, key tea.KeyType) tea.Cmd {
	cmd, _ := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func pressRune(m *ViewerModel, r rune) tea.Cmd {
	cmd, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func TestStartsOnLastPageOfAllTab(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 100, 10)
	resize(m, 80, 25) // capacity 20 -> 5 pages

	if m.pg.Tab() != model.TabAll {
		t.Fatalf("initial tab = %v, want TabAll", m.pg.Tab())
	}
	if m.pg.Pages() != 5 {
		t.Fatalf("Pages() = %d, want 5", m.pg.Pages())
	}
	if m.pg.Page() != 4 {
		t.Errorf("initial Page() = %d, want last page 4", m.pg.Page())
	}
}

func TestTabSwitchResetsToLastPage(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 100, 30)
	resize(m, 80, 15) // capacity 10

	press(m, tea.KeyUp) // move off the last page
	if m.pg.Page() == m.pg.Pages()-1 {
		t.Fatal("setup: expected to be off the last page")
	}

	press(m, tea.KeyRight)
	if m.pg.Tab() != model.TabSudo {
		t.Fatalf("tab after right = %v, want TabSudo", m.pg.Tab())
	}
	if m.pg.Pages() != 3 { // 30 events / 10 per page
		t.Fatalf("Pages() on SUDO tab = %d, want 3", m.pg.Pages())
	}
	if m.pg.Page() != 2 {
		t.Errorf("Page() after tab switch = %d, want last page 2", m.pg.Page())
	}
}

func TestTabCycleReturnsToStart(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 20, 5)
	resize(m, 80, 20)

	start := m.pg.Tab()
	for i := 0; i < model.TabCount(); i++ {
		press(m, tea.KeyLeft)
	}
	if m.pg.Tab() != start {
		t.Errorf("tab after full cycle = %v, want %v", m.pg.Tab(), start)
	}
}

func TestPageNavigationClamps(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 30, 5)
	resize(m, 80, 15) // capacity 10 -> 3 pages, on page 2

	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	if m.pg.Page() != 2 {
		t.Errorf("Page() = %d after down at last page, want 2", m.pg.Page())
	}

	press(m, tea.KeyHome)
	if m.pg.Page() != 0 {
		t.Errorf("Page() = %d after home, want 0", m.pg.Page())
	}
	press(m, tea.KeyUp)
	if m.pg.Page() != 0 {
		t.Errorf("Page() = %d after up at first page, want 0", m.pg.Page())
	}
	press(m, tea.KeyEnd)
	if m.pg.Page() != 2 {
		t.Errorf("Page() = %d after end, want 2", m.pg.Page())
	}
}

func TestSudoTabShowsEventLines(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 50, 4)
	resize(m, 80, 25)
	press(m, tea.KeyRight) // SUDO tab

	lines := m.pageLines()
	if len(lines) != 4 {
		t.Fatalf("SUDO page has %d lines, want 4", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line.Text, "sudo:") {
			t.Errorf("SUDO tab line %q does not contain the escalation marker", line.Text)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 5, 1)
	resize(m, 80, 20)

	if cmd := pressRune(m, 'q'); cmd == nil {
		t.Error("q did not produce a quit command")
	}
	if cmd := press(m, tea.KeyCtrlC); cmd == nil {
		t.Error("ctrl+c did not produce a quit command")
	}
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 5, 1)
	resize(m, 80, 20)

	pressRune(m, '?')
	if !m.showHelp {
		t.Fatal("? did not open help")
	}

	// Navigation keys must not move pages while help is open.
	page := m.pg.Page()
	press(m, tea.KeyUp)
	if m.pg.Page() != page {
		t.Error("page changed while help modal was open")
	}

	press(m, tea.KeyEscape)
	if m.showHelp {
		t.Error("escape did not close help")
	}
}

func TestTooSmallNotice(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 30, 5)
	resize(m, 80, 4) // capacity below one row

	out := m.View(80, 4)
	if !strings.Contains(out, "Terminal too small") {
		t.Errorf("View at tiny height = %q, want resize notice", out)
	}
	if m.pg.Pages() != 0 {
		t.Errorf("Pages() = %d at invalid capacity, want 0", m.pg.Pages())
	}
}

func TestDisplayPage(t *testing.T) {
	t.Parallel()

	if got := displayPage(0, 0); got != 0 {
		t.Errorf("displayPage(0, 0) = %d, want 0", got)
	}
	if got := displayPage(0, 3); got != 1 {
		t.Errorf("displayPage(0, 3) = %d, want 1", got)
	}
	if got := displayPage(2, 3); got != 3 {
		t.Errorf("displayPage(2, 3) = %d, want 3", got)
	}
}

func TestViewRendersTabTitlesAndStatus(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 30, 5)
	resize(m, 100, 24)
	out := m.View(100, 24)

	for _, title := range []string{"ALL", "SUDO", "COMMANDS"} {
		if !strings.Contains(out, title) {
			t.Errorf("View missing tab title %q", title)
		}
	}
	if !strings.Contains(out, "auth.log") {
		t.Error("View missing the log path in the status line")
	}
	if !strings.Contains(out, "page 2/2") {
		t.Error("View missing the page position in the status line")
	}
}

func TestCommandsTabRenders(t *testing.T) {
	t.Parallel()

	m := testViewer(t, 40, 6)
	resize(m, 100, 24)
	press(m, tea.KeyLeft) // wrap backward to COMMANDS

	if m.pg.Tab() != model.TabCommands {
		t.Fatalf("tab = %v, want TabCommands", m.pg.Tab())
	}
	out := m.View(100, 24)
	if !strings.Contains(out, "Recent") {
		t.Error("COMMANDS tab missing Recent panel")
	}
	if !strings.Contains(out, "Frequency") {
		t.Error("COMMANDS tab missing Frequency panel")
	}
	if !strings.Contains(out, "/bin/cmd0") {
		t.Error("COMMANDS tab missing a recorded command")
	}
}
