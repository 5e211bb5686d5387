package reflow

import (
	"strings"

	"github.com/iw2rmb/refold/internal/grapheme"
)

// ChunkKind classifies how a chunk wraps: paragraphs flow freely, the
// structured kinds keep a leading marker and hang continuation lines under
// the content column.
type ChunkKind int

const (
	Paragraph ChunkKind = iota
	ListItem
	OrderedListItem
	TagLine
)

// Chunk is a run of clean content lines that wraps as one unit.
//
// For structured kinds, Marker holds the literal leading marker including its
// trailing space, already stripped from the first line.
type Chunk struct {
	Kind   ChunkKind
	Marker string
	Lines  []string
}

// text joins the chunk's lines into one wrappable string.
func (c Chunk) text() string {
	return strings.Join(c.Lines, " ")
}

// hang returns the hanging indent, in cells, for the chunk's continuation
// lines. Documentation tags hang at the registry's fixed indent; every other
// marker hangs at its literal width.
func (c Chunk) hang(reg *Registry) int {
	switch c.Kind {
	case TagLine:
		return reg.TagIndent
	case ListItem, OrderedListItem:
		return grapheme.Width(c.Marker)
	}
	return 0
}

// chunkLines groups clean content lines into chunks. A structured-marker line
// always starts a new chunk, whatever glyph it uses; plain lines append to
// the open chunk; an empty line is a paragraph break. A break closes any
// structured chunk without being emitted, but it does NOT split paragraph
// text: the caller hands over one comment to flatten into a single reflow
// target, so for plain prose the break behaves like an ordinary line break.
// Splitting there would leave blank lines the reconstructor cannot restore,
// and the output would not reflow to itself.
//
// List and numbered forms outrank tag forms when a line matches both.
func chunkLines(reg *Registry, lines []string) []Chunk {
	var chunks []Chunk
	var cur *Chunk

	flush := func() {
		if cur != nil {
			chunks = append(chunks, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		if line == "" {
			if cur != nil && cur.Kind != Paragraph {
				flush()
			}
			continue
		}
		if kind, marker, ok := reg.structuredMarker(line); ok {
			// The marker carries a trailing space even when the source line
			// ends right after the marker, so trim from the token itself.
			rest := strings.TrimPrefix(line, strings.TrimRight(marker, " "))
			flush()
			cur = &Chunk{
				Kind:   kind,
				Marker: marker,
				Lines:  []string{strings.TrimSpace(rest)},
			}
			continue
		}
		if cur == nil {
			cur = &Chunk{Kind: Paragraph}
		}
		cur.Lines = append(cur.Lines, line)
	}
	flush()
	return chunks
}

// structuredMarker matches line against the chunk-starting marker forms in
// priority order.
func (r *Registry) structuredMarker(line string) (ChunkKind, string, bool) {
	if m, ok := r.listMarker(line); ok {
		return ListItem, m, true
	}
	if m, ok := r.orderedMarker(line); ok {
		return OrderedListItem, m, true
	}
	if m, ok := r.docTag(line); ok {
		return TagLine, m, true
	}
	if m, ok := r.capsTag(line); ok {
		return TagLine, m, true
	}
	return Paragraph, "", false
}
