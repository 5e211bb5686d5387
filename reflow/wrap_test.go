package reflow

import (
	"strings"
	"testing"

	"github.com/iw2rmb/refold/internal/grapheme"
)

func TestWrapWords_GreedyPacking(t *testing.T) {
	got := wrapWords("aaa bbb ccc ddd", 7)
	want := []string{"aaa bbb", "ccc ddd"}
	if len(got) != len(want) {
		t.Fatalf("line count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWrapWords_WidthInvariant(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog and keeps going for a while longer"
	for _, width := range []int{1, 5, 10, 25, 80} {
		for _, line := range wrapWords(text, width) {
			if grapheme.Width(line) > width && strings.ContainsRune(line, ' ') {
				t.Fatalf("width %d: line %q exceeds width and is not a single word", width, line)
			}
		}
	}
}

func TestWrapWords_LongWordNeverSplit(t *testing.T) {
	got := wrapWords("a superlongunbreakableword b", 5)
	want := []string{"a", "superlongunbreakableword", "b"}
	if len(got) != len(want) {
		t.Fatalf("line count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWrapWords_PreservesWordSequence(t *testing.T) {
	text := "one  two\tthree    four five six seven"
	got := strings.Join(wrapWords(text, 9), " ")
	want := strings.Join(strings.Fields(text), " ")
	if got != want {
		t.Fatalf("word sequence: got %q, want %q", got, want)
	}
}

func TestWrapWords_EmptyAndWhitespaceOnly(t *testing.T) {
	if got := wrapWords("", 10); got != nil {
		t.Fatalf("empty input: got %v, want nil", got)
	}
	if got := wrapWords("   \t ", 10); got != nil {
		t.Fatalf("whitespace input: got %v, want nil", got)
	}
}

func TestWrapWords_WideRunesCountAsCells(t *testing.T) {
	// Two double-width characters fill a width-4 line.
	got := wrapWords("日本 語学", 4)
	if len(got) != 2 {
		t.Fatalf("line count: got %d, want %d", len(got), 2)
	}
	if got[0] != "日本" || got[1] != "語学" {
		t.Fatalf("lines: got %q, want [日本 語学]", got)
	}
}
