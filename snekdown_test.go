package snekdown

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jschaf/snekdown/ast"
	"github.com/jschaf/snekdown/postprocess"
)

func TestSnekdown_Parse_and_RenderHTML(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // substring expected in the rendered HTML
	}{
		{"heading", "# Title\nbody text", "<h1 id='title'>Title</h1>"},
		{"bold", "**strong**", "<b>strong</b>"},
		{"ruler", "---", "<hr>"},
		{"code block", "```go\nvar x int\n```", "<div><code lang='go'>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			doc, err := s.Parse(strings.NewReader(tt.src), "")
			if err != nil {
				t.Fatal(err)
			}
			got := s.RenderHTML(doc)
			if !strings.Contains(got, tt.want) {
				t.Errorf("rendered HTML missing %q, got:\n%s", tt.want, got)
			}
		})
	}
}

func TestSnekdown_WithProviders(t *testing.T) {
	s := New(WithProviders(postprocess.ProviderFunc(func(name string) (ast.Element, bool) {
		if name == "greeting" {
			return &ast.PlainText{Value: "hello"}, true
		}
		return nil, false
	})))
	doc, err := s.Parse(strings.NewReader("[[greeting]]"), "")
	if err != nil {
		t.Fatal(err)
	}
	got := s.RenderHTML(doc)
	if !strings.Contains(got, "hello") {
		t.Errorf("want custom provider value rendered, got:\n%s", got)
	}
}

func ExampleSnekdown_RenderHTML() {
	s := New()
	doc, err := s.Parse(strings.NewReader("# Greeting\nHello, *world*!"), "")
	if err != nil {
		panic(err)
	}
	fmt.Println(strings.Contains(s.RenderHTML(doc), "<i>world</i>"))
	// Output:
	// true
}
