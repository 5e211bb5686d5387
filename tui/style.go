package tui

import "github.com/charmbracelet/lipgloss"

// Style controls the preview's rendering.
type Style struct {
	Header    lipgloss.Style
	PaneTitle lipgloss.Style
	Source    lipgloss.Style
	Result    lipgloss.Style
	Ruler     lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		PaneTitle: dim,
		Source:    dim,
		Result:    lipgloss.NewStyle(),
		Ruler:     lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}
