package main

import (
	"strings"
	"testing"
)

func TestReflowDocument_ParagraphsIsolatedByBlankLines(t *testing.T) {
	input := "// aaa\n// bbb\n\n// ccc\n// ddd"
	got := reflowDocument(input, 80)
	want := "// aaa bbb\n\n// ccc ddd"
	if got != want {
		t.Fatalf("document reflow:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestReflowDocument_BlankRunsPassThrough(t *testing.T) {
	input := "// aaa\n\n\n// bbb"
	got := reflowDocument(input, 80)
	if strings.Count(got, "\n\n\n") != 1 {
		t.Fatalf("blank run not preserved: %q", got)
	}
}

func TestReflowDocument_TrailingNewlineKept(t *testing.T) {
	input := "// aaa bbb\n"
	if got := reflowDocument(input, 80); got != input {
		t.Fatalf("trailing newline: got %q, want %q", got, input)
	}
}
