package reflow

import "strings"

// wrapChunk wraps one chunk to width display cells.
//
// Structured chunks keep their marker verbatim on the first line and left-pad
// continuation lines to the hanging indent so content aligns under the first
// content column, not under the marker glyph.
func wrapChunk(reg *Registry, c Chunk, width int) []string {
	hang := c.hang(reg)
	switch c.Kind {
	case Paragraph:
		return wrapWords(c.text(), maxInt(width, 1))
	case TagLine:
		return wrapTagLine(c, hang, width)
	}

	avail := maxInt(width-hang, 1)
	wrapped := wrapWords(c.text(), avail)
	if len(wrapped) == 0 {
		return []string{strings.TrimRight(c.Marker, " ")}
	}

	pad := strings.Repeat(" ", hang)
	out := make([]string, len(wrapped))
	out[0] = c.Marker + wrapped[0]
	for i, line := range wrapped[1:] {
		out[i+1] = pad + line
	}
	return out
}

// wrapTagLine wraps a documentation or free-form tag chunk.
//
// The hanging indent is fixed and usually differs from the tag's literal
// width, so the tag wraps as part of the content at the reduced width. That
// keeps the accounting exact: the first line starts with the tag itself and
// no continuation line can exceed the full width once padded.
func wrapTagLine(c Chunk, hang, width int) []string {
	avail := maxInt(width-hang, 1)
	wrapped := wrapWords(c.Marker+c.text(), avail)
	if len(wrapped) == 0 {
		return nil
	}

	pad := strings.Repeat(" ", hang)
	out := make([]string, len(wrapped))
	out[0] = wrapped[0]
	for i, line := range wrapped[1:] {
		out[i+1] = pad + line
	}
	return out
}
