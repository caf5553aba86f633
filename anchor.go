package benchreport

import "strings"

// Anchor derives the markdown link target for a heading: lower-cased, literal
// periods removed, whitespace runs collapsed to single hyphens, prefixed with
// "#". Example: "Hash Map V2.0" -> "#hash-map-v20".
//
// The same function generates a heading's anchor and the table-of-contents
// link targeting it, so the two always agree. Distinct headings that
// normalize to the same anchor collide; no disambiguation is attempted.
func Anchor(heading string) string {
	s := strings.ToLower(strings.ReplaceAll(heading, ".", ""))
	return "#" + strings.Join(strings.Fields(s), "-")
}
