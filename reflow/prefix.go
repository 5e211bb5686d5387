package reflow

import "strings"

// Envelope is the outer shell of the input: the first line's leading
// whitespace plus the comment marker that opened it, and whether a matching
// closer is present. A closer is only ever restored, never fabricated.
type Envelope struct {
	Indent    string
	Marker    string     // line-marker token, "" when none
	Block     BlockDelim // zero value when the envelope is not block-style
	HasCloser bool
}

// detectEnvelope classifies the input's comment envelope from its first and
// last lines. Unmatched markers simply fail to classify, leaving a plain
// whitespace envelope.
func detectEnvelope(reg *Registry, lines []string) Envelope {
	first := lines[0]
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]
	env := Envelope{Indent: indent}

	if d, ok := reg.blockOpen(first); ok {
		env.Block = d
		last := strings.TrimRight(lines[len(lines)-1], " \t")
		env.HasCloser = strings.HasSuffix(last, d.Close)
		return env
	}
	if m, ok := reg.lineMarker(first); ok {
		env.Marker = m
	}
	return env
}

// prefix returns the normalized per-line prefix: the string prepended to
// every output content line.
//
// Block and doc openers become a "*" continuation one indent level deeper
// than the opener; markup-wrapped openers sit two levels deeper to align
// under the wrapper's content column; range comments keep whitespace only.
// A marker prefix always carries exactly one trailing space.
func (e Envelope) prefix() string {
	switch e.Block.Kind {
	case BlockPlain, BlockDoc:
		return e.Indent + " * "
	case BlockMarkup:
		return e.Indent + "  * "
	case BlockRange:
		return e.Indent
	}
	if e.Marker != "" {
		return e.Indent + e.Marker + " "
	}
	return e.Indent
}

// extraIndent returns the additional content indentation, in cells, reserved
// beyond the normalized prefix. Plain block and markup-wrapped comments
// reserve two cells so a one-star continuation line reads differently from a
// doc-tag line; doc blocks do not.
func (e Envelope) extraIndent() int {
	switch e.Block.Kind {
	case BlockPlain, BlockMarkup:
		return 2
	}
	return 0
}

// openerLine returns the restored opening delimiter line, trimmed of
// trailing spaces.
func (e Envelope) openerLine() string {
	return e.Indent + e.Block.Open
}

// closerLine returns the restored closing delimiter line, indented to the
// normalized prefix's leading-whitespace width.
func (e Envelope) closerLine() string {
	switch e.Block.Kind {
	case BlockPlain, BlockDoc:
		return e.Indent + " " + e.Block.Close
	case BlockMarkup:
		return e.Indent + "  " + e.Block.Close
	}
	return e.Indent + e.Block.Close
}
