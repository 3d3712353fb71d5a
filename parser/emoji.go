package parser

import (
	emojipkg "github.com/kyokomi/emoji/v2"
)

// resolveEmoji maps an emoji shortcode (without surrounding colons) to its
// glyph. An unknown name resolves to the empty string; the renderer still
// shows the shortcode in that case.
func resolveEmoji(name string) string {
	if glyph, ok := emojipkg.CodeMap()[":"+name+":"]; ok {
		return glyph
	}
	return ""
}
