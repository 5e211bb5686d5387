package reflow

import "strings"

// IsBlockOpen reports whether line, after leading whitespace, begins with a
// block-open token.
func (r *Registry) IsBlockOpen(line string) bool {
	_, ok := r.blockOpen(line)
	return ok
}

// IsBlockClose reports whether line, after trailing whitespace, ends with a
// block-close token.
func (r *Registry) IsBlockClose(line string) bool {
	_, ok := r.blockClose(line)
	return ok
}

// IsBreak reports whether line is a paragraph boundary inside a multi-line
// comment: empty, or exactly one line-marker token with no trailing content.
func (r *Registry) IsBreak(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	for _, m := range r.LineMarkers {
		if trimmed == m {
			return true
		}
	}
	return false
}

// blockOpen returns the delimiter row whose open token starts line after
// leading whitespace. Table order decides ties ("/**" wins over "/*").
func (r *Registry) blockOpen(line string) (BlockDelim, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	for _, d := range r.Blocks {
		if strings.HasPrefix(trimmed, d.Open) {
			return d, true
		}
	}
	return BlockDelim{}, false
}

// blockClose returns the delimiter row whose close token ends line after
// trailing whitespace.
func (r *Registry) blockClose(line string) (BlockDelim, bool) {
	trimmed := strings.TrimRight(line, " \t")
	for _, d := range r.Blocks {
		if strings.HasSuffix(trimmed, d.Close) {
			return d, true
		}
	}
	return BlockDelim{}, false
}

// lineMarker returns the line-marker token that starts line after leading
// whitespace. The "*" continuation marker only matches when followed by a
// space or alone on the line, so emphasis-like text ("*word*") stays plain.
func (r *Registry) lineMarker(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	for _, m := range r.LineMarkers {
		if !strings.HasPrefix(trimmed, m) {
			continue
		}
		rest := trimmed[len(m):]
		if m == "*" && rest != "" && !strings.HasPrefix(rest, " ") {
			continue
		}
		return m, true
	}
	return "", false
}
