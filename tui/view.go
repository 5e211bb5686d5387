package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const headerHeight = 2

func (m Model) View() string {
	base := m.baseView()
	if !m.showHelp {
		return base
	}
	return overlay.Composite(
		m.helpView(),
		base,
		overlay.Center,
		overlay.Center,
		0,
		0,
	)
}

func (m Model) baseView() string {
	header := m.cfg.Style.Header.Render(fmt.Sprintf("refold · width %d", m.wrapWidth)) +
		"  " + m.cfg.Style.Ruler.Render(strings.Repeat("─", maxInt(0, m.width-16)))

	paneWidth := m.width / 2
	source := lipgloss.JoinVertical(lipgloss.Left,
		m.cfg.Style.PaneTitle.Render("source"),
		m.cfg.Style.Source.Width(paneWidth).Render(m.cfg.Source),
	)
	result := lipgloss.JoinVertical(lipgloss.Left,
		m.cfg.Style.PaneTitle.Render("reflowed"),
		m.cfg.Style.Result.Render(m.viewport.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, source, " ", result),
	)
}

func (m Model) helpView() string {
	km := m.cfg.KeyMap
	rows := []string{
		helpRow(km.Widen),
		helpRow(km.Narrow),
		helpRow(km.Help),
		helpRow(km.Quit),
	}
	return m.cfg.Style.Help.Render(strings.Join(rows, "\n"))
}

func helpRow(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%-8s %s", h.Key, h.Desc)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
