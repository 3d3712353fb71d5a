package parser

import (
	"testing"

	"github.com/jschaf/snekdown/ast"
)

func TestParser_inline_emphasis(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // rendered PlainText/MonospaceText value of the single inline
	}{
		{"bold", "**hi**", "hi"},
		{"italic", "*hi*", "hi"},
		{"underlined", "_hi_", "hi"},
		{"striked", "~~hi~~", "hi"},
		{"superscript", "^hi^", "hi"},
		{"monospace", "`hi`", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(tt.src, "").Parse()
			if len(doc.Elements) != 1 {
				t.Fatalf("want 1 top-level block, got %d", len(doc.Elements))
			}
			para, ok := doc.Elements[0].(*ast.Paragraph)
			if !ok {
				t.Fatalf("want *ast.Paragraph, got %T", doc.Elements[0])
			}
			line, ok := para.Elements[0].(*ast.TextLine)
			if !ok {
				t.Fatalf("want *ast.TextLine, got %T", para.Elements[0])
			}
			if len(line.SubText) != 1 {
				t.Fatalf("want 1 subtext, got %d: %#v", len(line.SubText), line.SubText)
			}
			got := plainValue(line.SubText[0])
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// plainValue unwraps a single level of emphasis/monospace/plain to its
// inner string value, for asserting the leaf content these tests care
// about.
func plainValue(i ast.Inline) string {
	switch n := i.(type) {
	case *ast.PlainText:
		return n.Value
	case *ast.MonospaceText:
		return n.Value
	case *ast.BoldText:
		return plainValue(n.Value)
	case *ast.ItalicText:
		return plainValue(n.Value)
	case *ast.UnderlinedText:
		return plainValue(n.Value)
	case *ast.StrikedText:
		return plainValue(n.Value)
	case *ast.SuperscriptText:
		return plainValue(n.Value)
	default:
		return ""
	}
}

func TestParser_inline_url(t *testing.T) {
	doc := New("[Example](https://example.com)", "").Parse()
	para := doc.Elements[0].(*ast.Paragraph)
	line := para.Elements[0].(*ast.TextLine)
	url, ok := line.SubText[0].(*ast.Url)
	if !ok {
		t.Fatalf("want *ast.Url, got %T", line.SubText[0])
	}
	if url.URL != "https://example.com" || url.Description != "Example" || !url.HasDescription {
		t.Errorf("got %+v", url)
	}
}

func TestParser_inline_checkbox(t *testing.T) {
	doc := New("[x] done, [ ] todo", "").Parse()
	para := doc.Elements[0].(*ast.Paragraph)
	line := para.Elements[0].(*ast.TextLine)
	var checked, unchecked int
	for _, sub := range line.SubText {
		if cb, ok := sub.(*ast.Checkbox); ok {
			if cb.Checked {
				checked++
			} else {
				unchecked++
			}
		}
	}
	if checked != 1 || unchecked != 1 {
		t.Errorf("got checked=%d unchecked=%d", checked, unchecked)
	}
}

func TestParser_inline_bibReference(t *testing.T) {
	doc := New("See [@smith2020] for details.", "").Parse()
	para := doc.Elements[0].(*ast.Paragraph)
	line := para.Elements[0].(*ast.TextLine)
	var found bool
	for _, sub := range line.SubText {
		if ref, ok := sub.(*ast.BibReference); ok {
			found = true
			if ref.Key != "smith2020" {
				t.Errorf("got key %q", ref.Key)
			}
		}
	}
	if !found {
		t.Fatal("no BibReference found")
	}
}

func TestParser_inline_placeholder(t *testing.T) {
	doc := New("Today is [[date]].", "").Parse()
	para := doc.Elements[0].(*ast.Paragraph)
	line := para.Elements[0].(*ast.TextLine)
	var ph *ast.PlaceholderInline
	for _, sub := range line.SubText {
		if p, ok := sub.(*ast.PlaceholderInline); ok {
			ph = p
		}
	}
	if ph == nil {
		t.Fatal("no placeholder found")
	}
	if _, ok := ph.Shared.Value(); !ok {
		t.Error("want date placeholder resolved by postprocess")
	}
}

func TestParser_inline_escapedSpecial(t *testing.T) {
	doc := New(`\*not italic\*`, "").Parse()
	para := doc.Elements[0].(*ast.Paragraph)
	line := para.Elements[0].(*ast.TextLine)
	if len(line.SubText) != 1 {
		t.Fatalf("want 1 subtext (no emphasis triggered), got %d: %#v", len(line.SubText), line.SubText)
	}
	got := plainValue(line.SubText[0])
	if got != "*not italic*" {
		t.Errorf("got %q, want literal asterisks with backslashes stripped", got)
	}
}

func TestParser_inline_emoji(t *testing.T) {
	doc := New("Nice :tada:!", "").Parse()
	para := doc.Elements[0].(*ast.Paragraph)
	line := para.Elements[0].(*ast.TextLine)
	var found bool
	for _, sub := range line.SubText {
		if e, ok := sub.(*ast.Emoji); ok {
			found = true
			if e.Name != "tada" {
				t.Errorf("got name %q", e.Name)
			}
		}
	}
	if !found {
		t.Fatal("no emoji found")
	}
}
