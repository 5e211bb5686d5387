package reflow

import "testing"

func TestIsBlockOpen_LeadingWhitespaceIgnored(t *testing.T) {
	reg := DefaultRegistry()
	cases := []struct {
		line string
		want bool
	}{
		{line: "/* comment", want: true},
		{line: "   /** doc", want: true},
		{line: "\t{/* jsx", want: true},
		{line: "<!-- html", want: true},
		{line: "// line comment", want: false},
		{line: "code(); /* trailing", want: false},
	}
	for _, tc := range cases {
		if got := reg.IsBlockOpen(tc.line); got != tc.want {
			t.Fatalf("IsBlockOpen(%q): got %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestIsBlockClose_TrailingWhitespaceIgnored(t *testing.T) {
	reg := DefaultRegistry()
	cases := []struct {
		line string
		want bool
	}{
		{line: " */", want: true},
		{line: "last words */  ", want: true},
		{line: "  */}", want: true},
		{line: "-->", want: true},
		{line: " * interior", want: false},
	}
	for _, tc := range cases {
		if got := reg.IsBlockClose(tc.line); got != tc.want {
			t.Fatalf("IsBlockClose(%q): got %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestOneLineBlock_OpensAndCloses(t *testing.T) {
	reg := DefaultRegistry()
	line := "/* all on one line */"
	if !reg.IsBlockOpen(line) || !reg.IsBlockClose(line) {
		t.Fatalf("one-line block: open=%v close=%v, want both true", reg.IsBlockOpen(line), reg.IsBlockClose(line))
	}
}

func TestIsBreak_BareMarkersAndEmpty(t *testing.T) {
	reg := DefaultRegistry()
	cases := []struct {
		line string
		want bool
	}{
		{line: "", want: true},
		{line: "   ", want: true},
		{line: "//", want: true},
		{line: " * ", want: true},
		{line: "#", want: true},
		{line: "// text", want: false},
		{line: "* text", want: false},
	}
	for _, tc := range cases {
		if got := reg.IsBreak(tc.line); got != tc.want {
			t.Fatalf("IsBreak(%q): got %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestLineMarker_StarNeedsSpaceOrEnd(t *testing.T) {
	reg := DefaultRegistry()

	if m, ok := reg.lineMarker("  * continuation"); !ok || m != "*" {
		t.Fatalf("star continuation: got (%q, %v), want (%q, true)", m, ok, "*")
	}
	if _, ok := reg.lineMarker("*emphasis*"); ok {
		t.Fatalf("glued star must not classify as a marker")
	}
	if m, ok := reg.lineMarker("// comment"); !ok || m != "//" {
		t.Fatalf("slash marker: got (%q, %v), want (%q, true)", m, ok, "//")
	}
	if m, ok := reg.lineMarker("# hash"); !ok || m != "#" {
		t.Fatalf("hash marker: got (%q, %v), want (%q, true)", m, ok, "#")
	}
}
