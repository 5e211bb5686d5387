// Command refold reflows comments and text paragraphs to a maximum width.
//
// By default it acts as a filter: it reads stdin (or the given files), splits
// the input into blank-line-separated paragraphs, reflows each one, and
// writes the result to stdout. With --interactive it opens a live preview
// instead.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/refold/reflow"
	"github.com/iw2rmb/refold/tui"
)

var CLI struct {
	Width       int      `short:"w" default:"80" help:"Maximum line width."`
	Interactive bool     `short:"i" help:"Preview the reflow interactively instead of writing to stdout."`
	Paths       []string `arg:"" optional:"" type:"existingfile" help:"Files to reflow (stdin when omitted)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("refold"),
		kong.Description("Reflow comments and paragraphs to a maximum line width."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	input, err := readInput(CLI.Paths)
	if err != nil {
		return err
	}

	if CLI.Interactive {
		return runPreview(input, CLI.Width)
	}

	_, err = io.WriteString(os.Stdout, reflowDocument(input, CLI.Width))
	return err
}

func readInput(paths []string) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	var parts []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n"), nil
}

// reflowDocument reflows each blank-line-separated paragraph independently,
// the paragraph isolation the core contract leaves to its caller. Blank runs
// between paragraphs pass through untouched.
func reflowDocument(input string, width int) string {
	engine := reflow.New(nil)
	lines := strings.Split(input, "\n")

	var out []string
	var para []string
	flush := func() {
		if len(para) > 0 {
			out = append(out, engine.Reflow(strings.Join(para, "\n"), width))
			para = nil
		}
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			out = append(out, line)
			continue
		}
		para = append(para, line)
	}
	flush()
	return strings.Join(out, "\n")
}

func runPreview(input string, width int) error {
	m := tui.New(tui.Config{
		Source:    strings.TrimRight(input, "\n"),
		WrapWidth: width,
		Style:     tui.DefaultStyle(),
	})
	_, err := tea.NewProgram(appModel{preview: m}, tea.WithAltScreen()).Run()
	return err
}

// appModel adapts the tui component to a standalone program, the way any
// Bubble Tea host embeds a child model.
type appModel struct {
	preview tui.Model
}

func (a appModel) Init() tea.Cmd { return a.preview.Init() }

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.preview, cmd = a.preview.Update(msg)
	return a, cmd
}

func (a appModel) View() string { return a.preview.View() }
