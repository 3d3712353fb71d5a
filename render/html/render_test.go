package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jschaf/snekdown/ast"
	"github.com/jschaf/snekdown/parser"
)

func parse(t *testing.T, src string) *ast.Document {
	t.Helper()
	return parser.New(src, "").Parse()
}

func TestToHTML_paragraph_escapesAndJoinsWithBr(t *testing.T) {
	doc := parse(t, "a <b>\nsecond line")
	got := ToHTML(doc)
	assert.Contains(t, got, "a &lt;b&gt;<br>second line")
}

func TestToHTML_ruler(t *testing.T) {
	doc := parse(t, "above\n\n---\n\nbelow")
	got := ToHTML(doc)
	assert.Contains(t, got, "<hr>")
}

func TestToHTML_emphasis(t *testing.T) {
	doc := parse(t, "**bold** *italic* _under_ ~~strike~~ ^sup^ `mono`")
	got := ToHTML(doc)
	assert.Contains(t, got, "<b>bold</b>")
	assert.Contains(t, got, "<i>italic</i>")
	assert.Contains(t, got, "<u>under</u>")
	assert.Contains(t, got, "<del>strike</del>")
	assert.Contains(t, got, "<sup>sup</sup>")
	assert.Contains(t, got, "<code class='inlineCode'>mono</code>")
}

func TestToHTML_checkbox_unchecked_missingSpaceQuirk(t *testing.T) {
	doc := parse(t, "[ ] todo")
	got := ToHTML(doc)
	assert.Contains(t, got, "<input type='checkbox'disabled>")
}

func TestToHTML_checkbox_checked(t *testing.T) {
	doc := parse(t, "[x] done")
	got := ToHTML(doc)
	assert.Contains(t, got, "<input type='checkbox' checked disabled>")
}

func TestToHTML_table_doubleTrQuirk(t *testing.T) {
	doc := parse(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	got := ToHTML(doc)
	assert.Contains(t, got, "<table><tr><td>a</td><td>b</td><tr><tr><td>1</td><td>2</td></tr></table>")
}

func TestToHTML_list_nested(t *testing.T) {
	doc := parse(t, "- one\n  - nested\n- two")
	got := ToHTML(doc)
	assert.Contains(t, got, "<li>one<ul><li>nested</li></ul></li>")
}

func TestToHTML_placeholder_unknown(t *testing.T) {
	doc := parse(t, "[[totallyUnknownName]]")
	got := ToHTML(doc)
	assert.Contains(t, got, "Unknown placeholder 'totallyUnknownName'!")
}

func TestToHTML_bibReference_and_entry(t *testing.T) {
	doc := parse(t, "[@a]: title=Some Paper\n\nSee [@a].")
	got := ToHTML(doc)
	assert.Contains(t, got, "<sup><a href='#a'>1</a></sup>")
}

func TestToHTML_bibEntry_displayTemplate_bindsVariables(t *testing.T) {
	doc := parse(t, "[@a]: title=Some Paper, year=2020, display=${title} (${year})\n\nSee [@a].")
	got := ToHTML(doc)
	assert.Contains(t, got, "<span id='a'>Some Paper (2020)</span>")
}

func TestToHTML_codeBlock_withoutLanguage(t *testing.T) {
	doc := parse(t, "```\nraw <text>\n```")
	got := ToHTML(doc)
	assert.Contains(t, got, "<div><code><pre>raw &lt;text&gt;\n</pre></code></div>")
}

func TestToHTML_quote_withMetadata(t *testing.T) {
	doc := parse(t, "{source: Book}> quoted line")
	got := ToHTML(doc)
	assert.Contains(t, got, "<div class='quote'><blockquote>quoted line</blockquote><span class='metadata'>")
}

func TestToHTML_escapedAsterisks_renderLiteral(t *testing.T) {
	doc := parse(t, `\*not italic\*`)
	got := ToHTML(doc)
	assert.Contains(t, got, "<div class='paragraph'>*not italic*</div>")
}

func TestToHTML_documentShell(t *testing.T) {
	doc := parse(t, "hello")
	got := ToHTML(doc)
	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>\n<html><head>"))
	assert.Contains(t, got, "<div class='content'>")
}
