package reflow

import (
	"strings"

	"github.com/iw2rmb/refold/internal/grapheme"
)

// DefaultWidth is the wrap width used when a caller passes a width of zero
// or less.
const DefaultWidth = 80

// Engine binds a Registry for repeated reflow calls. The zero-dialect case
// is covered by the package-level Reflow.
type Engine struct {
	reg *Registry
}

// New returns an Engine using reg, or DefaultRegistry when reg is nil.
func New(reg *Registry) *Engine {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Engine{reg: reg}
}

// Reflow rewraps text to width display cells using the default registry.
// See Engine.Reflow for the contract.
func Reflow(text string, width int) string {
	return New(nil).Reflow(text, width)
}

// Reflow rewraps one comment or text paragraph to width display cells.
//
// The input's comment envelope (line markers, block delimiters) is detected
// and preserved: every output line carries the normalized per-line prefix,
// and block-style delimiters present in the input are restored on their own
// lines. List items, numbered items, and tag lines keep their markers and
// hang continuation lines under the content column.
//
// Every string is valid input. A single line already within width, and any
// input that wrapping would not visibly change, is returned unchanged so
// callers never see spurious diffs. Reflow never fails and never fabricates
// a closing delimiter the input did not have.
//
// The result is a fixed point: reflowing it again at the same width returns
// it unchanged.
func (e *Engine) Reflow(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	// Wrapping can land a marker-shaped word ("NOTE:", "-") at the start of
	// a line, where the next pass reads it as a structured item and wraps it
	// differently. Promotions are one-way, so repeating the pass converges;
	// the cap guards a custom registry that somehow oscillates.
	for i := 0; i < maxReflowPasses; i++ {
		next := e.reflowOnce(text, width)
		if next == text {
			break
		}
		text = next
	}
	return text
}

const maxReflowPasses = 8

func (e *Engine) reflowOnce(text string, width int) string {
	if text == "" {
		return text
	}

	lines := splitLines(text)
	if len(lines) == 1 && grapheme.Width(lines[0]) <= width {
		return text
	}

	env := detectEnvelope(e.reg, lines)
	clean := stripLines(e.reg, env, lines)
	chunks := chunkLines(e.reg, clean)

	avail := width - grapheme.Width(env.prefix()) - env.extraIndent()
	if avail < 1 {
		avail = 1
	}

	var content []string
	for _, c := range chunks {
		content = append(content, wrapChunk(e.reg, c, avail)...)
	}

	// Multi-line block comments always need their delimiters restored; for
	// everything else a no-op wrap returns the input verbatim.
	restoreDelims := env.Block.Kind != BlockNone && len(lines) > 1
	if !restoreDelims && equalLines(content, compact(clean)) {
		return text
	}

	prefix := env.prefix() + strings.Repeat(" ", env.extraIndent())
	out := make([]string, 0, len(content)+2)
	if env.Block.Kind != BlockNone {
		out = append(out, env.openerLine())
	}
	for _, line := range content {
		out = append(out, strings.TrimRight(prefix+line, " \t"))
	}
	if env.Block.Kind != BlockNone && env.HasCloser {
		out = append(out, env.closerLine())
	}
	return strings.Join(out, "\n")
}

// splitLines splits on "\n" and drops carriage returns; the caller owns the
// line-ending byte convention on the way back in.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// stripLines removes the envelope's formatting from every line, producing
// clean, fully trimmed content lines. Paragraph-break lines and lines left
// empty by stripping become empty-string sentinels for the chunker.
//
// Stripping is envelope-directed: a line-marker envelope strips only its own
// marker, block envelopes strip delimiters plus interior "*" continuations,
// range envelopes strip delimiters only, and a plain-text envelope strips
// nothing — so markdown in plain paragraphs is never eaten.
func stripLines(reg *Registry, env Envelope, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if reg.IsBreak(line) {
			continue
		}
		s := line
		switch {
		case env.Block.Kind != BlockNone:
			if i == 0 {
				s = strings.TrimLeft(s, " \t")
				s = strings.TrimPrefix(s, env.Block.Open)
			}
			s = strings.TrimRight(s, " \t")
			if strings.HasSuffix(s, env.Block.Close) {
				s = s[:len(s)-len(env.Block.Close)]
			}
			if env.Block.Kind != BlockRange {
				s = stripContinuationStar(s)
			}
		case env.Marker == "*":
			s = stripContinuationStar(s)
		case env.Marker != "":
			t := strings.TrimLeft(s, " \t")
			if rest, ok := strings.CutPrefix(t, env.Marker); ok {
				s = rest
			}
		}
		out[i] = strings.TrimSpace(s)
	}
	return out
}

// stripContinuationStar removes a leading "*" continuation marker. "*/" is
// left alone so an already-stripped close token never loses its star, and a
// star glued to text ("*word") stays content.
func stripContinuationStar(line string) string {
	t := strings.TrimLeft(line, " \t")
	rest, ok := strings.CutPrefix(t, "* ")
	if ok {
		return rest
	}
	if t == "*" {
		return ""
	}
	return line
}

// compact drops the break sentinels, leaving the visible clean lines.
func compact(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
