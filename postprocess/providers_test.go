package postprocess

import (
	"testing"

	"github.com/jschaf/snekdown/ast"
)

func TestBibCountProvider(t *testing.T) {
	entries := map[string]*ast.BibEntry{
		"smith2020": {Key: "smith2020"},
		"doe2021":   {Key: "doe2021"},
	}
	p := bibCountProvider{entries: entries}

	el, ok := p.Resolve("bibcount")
	if !ok {
		t.Fatal("want bibcount to resolve")
	}
	if got := el.(*ast.PlainText).Value; got != "2" {
		t.Errorf("got %q, want \"2\"", got)
	}

	el, ok = p.Resolve("bibcount.smith2020")
	if !ok || el.(*ast.PlainText).Value != "1" {
		t.Errorf("want bibcount.smith2020 to resolve to 1, got %+v ok=%v", el, ok)
	}

	el, ok = p.Resolve("bibcount.unknown")
	if !ok || el.(*ast.PlainText).Value != "0" {
		t.Errorf("want bibcount.unknown to resolve to 0, got %+v ok=%v", el, ok)
	}

	if _, ok := p.Resolve("toc"); ok {
		t.Error("want unrelated name to fall through")
	}
}
