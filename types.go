package benchreport

import "strings"

// Template is the parsed report template: a title (which may contain a
// ${version} placeholder), a free-form description, and the declared tests.
// Tests keeps template declaration order, which dictates report section
// order.
type Template struct {
	Title       string
	Description string
	Tests       []BenchmarkTest
}

// BenchmarkTest is one declared test. The name appears verbatim as the
// section heading and also derives the chart paths and the section anchor.
type BenchmarkTest struct {
	Name        string
	Description string
}

// Document is the assembled report: an ordered sequence of text blocks,
// joined by newlines when serialized.
type Document struct {
	Blocks []string
}

// String serializes the document exactly as it is written to result.md.
func (d *Document) String() string {
	return strings.Join(d.Blocks, "\n")
}
