// Package reflow rewraps a single comment or text paragraph to a maximum
// line width while preserving its structural markers.
//
// The pipeline classifies the input's comment envelope (line markers such as
// "//" and "#", block delimiters such as "/* ... */" and "<!-- ... -->"),
// strips it, splits the content into chunks (paragraph text, list items,
// tag lines), wraps each chunk with the right hanging indent, and rebuilds
// the envelope around the wrapped lines.
//
// Every operation is a pure function over its inputs: no state survives a
// call, no input is an error, and equal inputs always produce identical
// output. Callers isolate one blank-line-separated paragraph per call.
package reflow
