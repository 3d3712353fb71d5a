package html

import (
	"html"
	"strings"
)

// escapeText wraps the stdlib HTML entity encoder for text position: `<`,
// `>`, `&`, `"`, `'` become entities, matching the reference
// implementation's htmlescape::encode_minimal (spec.md §4.6).
func escapeText(s string) string { return html.EscapeString(s) }

// escapeAttr encodes a value for single-quoted attribute position. Beyond
// escapeText's set it also encodes whitespace, so the value can't close or
// extend past the surrounding '...' delimiters no matter what the author
// writes, mirroring htmlescape::encode_attribute (spec.md §4.6, line 155)
// rather than encode_minimal's narrower text-position set.
func escapeAttr(s string) string {
	s = html.EscapeString(s)
	var buf strings.Builder
	for _, r := range s {
		switch r {
		case ' ':
			buf.WriteString("&#32;")
		case '\t':
			buf.WriteString("&#9;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
