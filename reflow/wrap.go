package reflow

import (
	"strings"

	"github.com/iw2rmb/refold/internal/grapheme"
)

// wrapWords greedily packs the whitespace-separated words of text into lines
// no wider than width display cells, joined by single spaces.
//
// A word wider than width is never split: it is emitted alone on its own
// line. Joining the output lines' words in order reproduces the input word
// sequence exactly.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 1+grapheme.Width(text)/maxInt(width, 1))
	cur := words[0]
	curWidth := grapheme.Width(cur)
	for _, word := range words[1:] {
		w := grapheme.Width(word)
		if curWidth+1+w > width {
			lines = append(lines, cur)
			cur = word
			curWidth = w
			continue
		}
		cur += " " + word
		curWidth += 1 + w
	}
	return append(lines, cur)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
