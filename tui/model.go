// Package tui provides a Bubble Tea preview component for refold.
//
// The component shows the source comment next to its reflowed form and lets
// the user adjust the wrap width live. Hosts embed Model the same way any
// Bubble Tea child component is embedded: forward messages to Update and
// compose View into the program's output.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/refold/reflow"
)

// Width bounds for the live wrap width. Below minWrapWidth almost every
// marker stops fitting; above maxWrapWidth the preview stops being useful.
const (
	minWrapWidth = 8
	maxWrapWidth = 200
)

// Config seeds the preview.
type Config struct {
	// Source is the comment or paragraph to preview.
	Source string

	// WrapWidth is the initial wrap width; reflow.DefaultWidth when <= 0.
	WrapWidth int

	// Registry selects the comment dialect; nil means the default registry.
	Registry *reflow.Registry

	// Style is applied as given; DefaultStyle is the usual choice, and the
	// zero value renders unstyled.
	Style  Style
	KeyMap KeyMap
}

// Model is the Bubble Tea component. The zero Model is not usable; construct
// one with New.
type Model struct {
	cfg    Config
	engine *reflow.Engine

	wrapWidth int
	result    string

	showHelp bool
	viewport viewport.Model

	width  int
	height int
}

// New returns a preview for cfg.Source. A zero-value KeyMap falls back to
// DefaultKeyMap.
func New(cfg Config) Model {
	if cfg.WrapWidth <= 0 {
		cfg.WrapWidth = reflow.DefaultWidth
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:       cfg,
		engine:    reflow.New(cfg.Registry),
		wrapWidth: clampInt(cfg.WrapWidth, minWrapWidth, maxWrapWidth),
		viewport:  viewport.New(0, 0),
	}
	m.reflowNow()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// WrapWidth returns the current wrap width.
func (m Model) WrapWidth() int { return m.wrapWidth }

// Result returns the current reflowed text.
func (m Model) Result() string { return m.result }

// SetSize resizes the component to the given terminal cell dimensions.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	paneHeight := height - headerHeight
	if paneHeight < 0 {
		paneHeight = 0
	}
	m.viewport.Width = width / 2
	m.viewport.Height = paneHeight
	m.viewport.SetContent(m.result)
	return m
}

func (m *Model) reflowNow() {
	m.result = m.engine.Reflow(m.cfg.Source, m.wrapWidth)
	m.viewport.SetContent(m.result)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
