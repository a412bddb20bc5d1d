package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the viewer page.
func (m *ViewerModel) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recompute()
		return nil, nil

	case tea.KeyMsg:
		return m.handleKey(msg), nil
	}
	return nil, nil
}

func (m *ViewerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	// The help modal swallows everything except quit.
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help):
			m.showHelp = false
		case key.Matches(msg, m.keys.PageUp):
			m.helpVP.ScrollUp(1)
		case key.Matches(msg, m.keys.PageDown):
			m.helpVP.ScrollDown(1)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.NextTab):
		m.pg.SwitchTab(1)
		m.recompute()

	case key.Matches(msg, m.keys.PrevTab):
		m.pg.SwitchTab(-1)
		m.recompute()

	case key.Matches(msg, m.keys.PageUp):
		m.pg.AdvancePage(-1)

	case key.Matches(msg, m.keys.PageDown):
		m.pg.AdvancePage(1)

	case key.Matches(msg, m.keys.FirstPage):
		m.pg.JumpFirst()

	case key.Matches(msg, m.keys.LastPage):
		m.pg.JumpLast()
	}
	return nil
}
