package reflow

import "strings"

// BlockKind distinguishes the block-style comment envelopes.
//
// Plain and doc blocks use a per-line "*" continuation marker. Markup blocks
// are doc-style comments wrapped in markup braces ({/* ... */}). Range
// comments have open and close delimiters but no per-line marker.
type BlockKind int

const (
	BlockNone BlockKind = iota
	BlockPlain
	BlockDoc
	BlockMarkup
	BlockRange
)

// BlockDelim is one row of the block-delimiter table: an opening token, its
// matching closing token, and the envelope kind they introduce.
type BlockDelim struct {
	Open  string
	Close string
	Kind  BlockKind
}

// Registry is the full set of recognized comment and markup tokens.
//
// Tables are ordered longest and most specific first so a shorter token never
// shadows a longer one ("/**" before "/*"). Every other component matches
// against a Registry rather than hardcoding tokens, so a new comment dialect
// is a data change.
type Registry struct {
	// LineMarkers are tokens valid at the start of every line of a comment.
	// The "*" entry is the interior continuation marker of block comments.
	LineMarkers []string

	// Blocks holds the block-delimiter table.
	Blocks []BlockDelim

	// Bullets are unordered-list glyphs; a bullet may be followed by one of
	// Boxes to form a checklist item. Box letter case is the only
	// case-insensitive match in the registry, covered by listing both forms.
	Bullets []string
	Boxes   []string

	// TagIndent is the fixed hanging indent, in cells, for documentation
	// tag lines (@word ...). Other markers hang at their literal width.
	TagIndent int

	// MinTagLen and MaxTagLen bound the free-form uppercase tag form
	// ("TODO:", "FIXME:").
	MinTagLen int
	MaxTagLen int
}

// DefaultRegistry returns the registry for the common comment dialects:
// C/C++/Go line and block comments, shell/Python hash comments, doc blocks,
// markup-wrapped doc blocks, and HTML-style range comments.
func DefaultRegistry() *Registry {
	return &Registry{
		LineMarkers: []string{"//", "#", "*"},
		Blocks: []BlockDelim{
			{Open: "{/*", Close: "*/}", Kind: BlockMarkup},
			{Open: "/**", Close: "*/", Kind: BlockDoc},
			{Open: "/*", Close: "*/", Kind: BlockPlain},
			{Open: "<!--", Close: "-->", Kind: BlockRange},
		},
		Bullets:   []string{"-", "*", "+"},
		Boxes:     []string{"[ ]", "[x]", "[X]"},
		TagIndent: 4,
		MinTagLen: 2,
		MaxTagLen: 10,
	}
}

// listMarker reports whether line opens with a bullet (optionally followed by
// a checklist box) and returns the literal marker text including its trailing
// space.
func (r *Registry) listMarker(line string) (string, bool) {
	for _, b := range r.Bullets {
		rest, ok := strings.CutPrefix(line, b+" ")
		if !ok {
			continue
		}
		for _, box := range r.Boxes {
			if strings.HasPrefix(rest, box+" ") {
				return b + " " + box + " ", true
			}
		}
		return b + " ", true
	}
	return "", false
}

// orderedMarker matches the numbered-list form "N. " and returns the literal
// marker including its trailing space.
func (r *Registry) orderedMarker(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(line) || line[i] != '.' || line[i+1] != ' ' {
		return "", false
	}
	return line[:i+2], true
}

// docTag matches a documentation tag ("@word") at the start of line and
// returns the marker including its trailing space. A bare "@word" line is a
// tag with empty content.
func (r *Registry) docTag(line string) (string, bool) {
	if len(line) < 2 || line[0] != '@' || !isTagLetter(line[1]) {
		return "", false
	}
	i := 1
	for i < len(line) && isTagLetter(line[i]) {
		i++
	}
	if i == len(line) {
		return line + " ", true
	}
	if line[i] != ' ' {
		return "", false
	}
	return line[:i+1], true
}

// capsTag matches a short free-form uppercase tag followed by a colon
// ("TODO:", "NOTE:") and returns the marker including its trailing space.
func (r *Registry) capsTag(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= 'A' && line[i] <= 'Z' {
		i++
	}
	if i < r.MinTagLen || i > r.MaxTagLen || i >= len(line) || line[i] != ':' {
		return "", false
	}
	switch {
	case i+1 == len(line):
		return line + " ", true
	case line[i+1] == ' ':
		return line[:i+2], true
	}
	return "", false
}

func isTagLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
