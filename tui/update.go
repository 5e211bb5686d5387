package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.cfg.KeyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.cfg.KeyMap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.cfg.KeyMap.Widen):
		m.wrapWidth = clampInt(m.wrapWidth+1, minWrapWidth, maxWrapWidth)
		m.reflowNow()
		return m, nil

	case key.Matches(msg, m.cfg.KeyMap.Narrow):
		m.wrapWidth = clampInt(m.wrapWidth-1, minWrapWidth, maxWrapWidth)
		m.reflowNow()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
