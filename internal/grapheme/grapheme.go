// Package grapheme measures text in display cells.
//
// Widths are computed per grapheme cluster so multi-rune clusters (combining
// marks, emoji sequences) count as one visual unit rather than one cell per
// rune. For plain ASCII the width equals the character count.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of display cells text occupies.
func Width(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	w := 0
	for g.Next() {
		w += runewidth.StringWidth(g.Str())
	}
	return w
}
