// Package snekdown parses the Snekdown markup language and renders the
// resulting tree to HTML.
package snekdown

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jschaf/snekdown/ast"
	"github.com/jschaf/snekdown/parser"
	"github.com/jschaf/snekdown/postprocess"
	"github.com/jschaf/snekdown/render/html"
)

// Snekdown holds the configuration and placeholder providers shared across
// every document it parses.
type Snekdown struct {
	config    *ast.Configuration
	providers []postprocess.Provider
}

// Option is a functional option to change how Snekdown parses and resolves
// a document.
type Option func(*Snekdown)

// WithConfiguration attaches document-level configuration, exposed to
// parsed documents through the "config.*" placeholder.
func WithConfiguration(cfg *ast.Configuration) Option {
	return func(s *Snekdown) { s.config = cfg }
}

// WithProviders appends placeholder providers, consulted in order before
// the built-in date/time, toc and config.* providers.
func WithProviders(ps ...postprocess.Provider) Option {
	return func(s *Snekdown) {
		s.providers = append(s.providers, ps...)
	}
}

// New creates a Snekdown engine.
func New(opts ...Option) *Snekdown {
	s := &Snekdown{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse reads r to completion and parses it as a Snekdown document. path,
// if non-empty, is used to resolve relative imports and tag the resulting
// Document.
func (s *Snekdown) Parse(r io.Reader, path string) (*ast.Document, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("snekdown: read input: %w", err)
	}
	p := parser.New(string(data), path)
	p.SetConfig(s.config)
	p.SetProviders(s.providers)
	return p.Parse(), nil
}

// ParseFile parses the file at path, following its imports relative to its
// directory.
func (s *Snekdown) ParseFile(path string) (*ast.Document, error) {
	p, err := parser.NewFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("snekdown: open %s: %w", path, err)
	}
	p.SetConfig(s.config)
	p.SetProviders(s.providers)
	return p.Parse(), nil
}

// RenderHTML renders a parsed Document to a complete HTML document.
func (s *Snekdown) RenderHTML(doc *ast.Document) string {
	return html.ToHTML(doc)
}
