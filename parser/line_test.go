package parser

import (
	"testing"

	"github.com/jschaf/snekdown/ast"
)

func TestParser_ruler(t *testing.T) {
	doc := New("above\n\n---\n\nbelow", "").Parse()
	var rulers int
	for _, b := range doc.Elements {
		para, ok := b.(*ast.Paragraph)
		if !ok {
			continue
		}
		for _, l := range para.Elements {
			if _, ok := l.(*ast.Ruler); ok {
				rulers++
			}
		}
	}
	if rulers != 1 {
		t.Errorf("want 1 ruler, got %d", rulers)
	}
}

func TestParser_anchor(t *testing.T) {
	doc := New("[Intro](#intro)", "").Parse()
	para := doc.Elements[0].(*ast.Paragraph)
	a, ok := para.Elements[0].(*ast.Anchor)
	if !ok {
		t.Fatalf("want *ast.Anchor, got %T", para.Elements[0])
	}
	if a.Reference != "intro" {
		t.Errorf("got reference %q", a.Reference)
	}
}

func TestParser_centered(t *testing.T) {
	doc := New("|centered text|", "").Parse()
	para := doc.Elements[0].(*ast.Paragraph)
	c, ok := para.Elements[0].(*ast.Centered)
	if !ok {
		t.Fatalf("want *ast.Centered, got %T", para.Elements[0])
	}
	if c.Line == nil {
		t.Error("want non-nil centered line")
	}
}

func TestParser_bibEntryLine(t *testing.T) {
	doc := New("[@smith2020]: title=A Great Paper, url=https://example.com/paper\n\nCited as [@smith2020].", "").Parse()
	var entry *ast.BibEntry
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if l, ok := n.(*ast.BibEntryLine); ok {
			entry = l.Entry
		}
		return ast.WalkContinue, nil
	})
	if entry == nil {
		t.Fatal("no bib entry parsed")
	}
	if entry.Fields["title"] != "A Great Paper" {
		t.Errorf("got title %q", entry.Fields["title"])
	}
	if entry.URL != "https://example.com/paper" {
		t.Errorf("got url %q", entry.URL)
	}

	var ref *ast.BibReference
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if r, ok := n.(*ast.BibReference); ok {
			ref = r
		}
		return ast.WalkContinue, nil
	})
	if ref == nil {
		t.Fatal("no bib reference parsed")
	}
	if ref.Entry() != entry {
		t.Error("want reference resolved to the same entry")
	}
	if ref.FormattedIndex() != "1" {
		t.Errorf("want first-use index 1, got %s", ref.FormattedIndex())
	}
}

func TestParser_inlineMetadata(t *testing.T) {
	doc := New("#{anchor: custom-anchor} Intro\n\nbody", "").Parse()
	section := doc.Elements[0].(*ast.Section)
	if section.Metadata == nil {
		t.Fatal("want header metadata")
	}
	v, ok := section.Metadata.Get("anchor")
	if !ok {
		t.Fatal("want anchor key")
	}
	if v != ast.MetaString("custom-anchor") {
		t.Errorf("got %#v", v)
	}
}
