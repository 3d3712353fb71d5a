package parser

import (
	"testing"

	"github.com/jschaf/snekdown/ast"
)

func TestParser_section_nesting(t *testing.T) {
	src := "# One\npara\n## Two\nnested para\n# Three\nlast para"
	doc := New(src, "").Parse()
	if len(doc.Elements) != 2 {
		t.Fatalf("want 2 top-level sections, got %d", len(doc.Elements))
	}
	one := doc.Elements[0].(*ast.Section)
	if one.Header.Size != 1 {
		t.Errorf("want size 1, got %d", one.Header.Size)
	}
	if len(one.Elements) != 2 {
		t.Fatalf("want 2 elements under section one (paragraph, nested section), got %d", len(one.Elements))
	}
	two, ok := one.Elements[1].(*ast.Section)
	if !ok {
		t.Fatalf("want nested *ast.Section, got %T\n%s", one.Elements[1], ast.Dump(doc))
	}
	if two.Header.Size != 2 {
		t.Errorf("want nested size 2, got %d", two.Header.Size)
	}
	three := doc.Elements[1].(*ast.Section)
	if three.Header.Size != 1 {
		t.Errorf("want size 1, got %d", three.Header.Size)
	}
}

func TestParser_codeBlock(t *testing.T) {
	src := "```go\nfmt.Println(\"hi\")\n```"
	doc := New(src, "").Parse()
	cb, ok := doc.Elements[0].(*ast.CodeBlock)
	if !ok {
		t.Fatalf("want *ast.CodeBlock, got %T", doc.Elements[0])
	}
	if cb.Language != "go" {
		t.Errorf("got language %q", cb.Language)
	}
	if cb.Code != "fmt.Println(\"hi\")\n" {
		t.Errorf("got code %q", cb.Code)
	}
}

func TestParser_quote(t *testing.T) {
	src := "> first line\n> second line"
	doc := New(src, "").Parse()
	q, ok := doc.Elements[0].(*ast.Quote)
	if !ok {
		t.Fatalf("want *ast.Quote, got %T", doc.Elements[0])
	}
	if len(q.Text) != 2 {
		t.Fatalf("want 2 quoted lines, got %d", len(q.Text))
	}
}

func TestParser_list_nesting(t *testing.T) {
	src := "- one\n  - nested one\n  - nested two\n- two"
	doc := New(src, "").Parse()
	list, ok := doc.Elements[0].(*ast.List)
	if !ok {
		t.Fatalf("want *ast.List, got %T", doc.Elements[0])
	}
	if list.Ordered {
		t.Error("want unordered list")
	}
	if len(list.Items) != 2 {
		t.Fatalf("want 2 top-level items, got %d", len(list.Items))
	}
	if len(list.Items[0].Children) != 2 {
		t.Fatalf("want 2 nested children under first item, got %d", len(list.Items[0].Children))
	}
}

func TestParser_table(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |"
	doc := New(src, "").Parse()
	table, ok := doc.Elements[0].(*ast.Table)
	if !ok {
		t.Fatalf("want *ast.Table, got %T", doc.Elements[0])
	}
	if len(table.Header.Cells) != 2 {
		t.Fatalf("want 2 header cells, got %d", len(table.Header.Cells))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("want 2 body rows, got %d", len(table.Rows))
	}
	if len(table.Rows[0].Cells) != 2 || len(table.Rows[1].Cells) != 2 {
		t.Fatalf("want 2 cells per row, got %d and %d", len(table.Rows[0].Cells), len(table.Rows[1].Cells))
	}
}

func TestParser_table_withoutSeparator_isHeaderOnly(t *testing.T) {
	src := "| a | b |\njust text"
	doc := New(src, "").Parse()
	table, ok := doc.Elements[0].(*ast.Table)
	if !ok {
		t.Fatalf("want *ast.Table, got %T", doc.Elements[0])
	}
	if len(table.Rows) != 0 {
		t.Errorf("want no body rows without a separator, got %d", len(table.Rows))
	}
}

func TestParser_placeholderBlock(t *testing.T) {
	src := "[[toc]]"
	doc := New(src, "").Parse()
	pb, ok := doc.Elements[0].(*ast.PlaceholderBlock)
	if !ok {
		t.Fatalf("want *ast.PlaceholderBlock, got %T", doc.Elements[0])
	}
	if _, ok := pb.Shared.Value(); !ok {
		t.Error("want toc placeholder resolved")
	}
}
