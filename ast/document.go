package ast

import gotok "go/token"

// Document is the root of a parsed tree. A Document is either the root of
// the whole render (IsRoot) or a fragment spliced in by an Import.
//
// A Document exclusively owns its Elements. It is built up during parsing
// and is frozen once Parse returns: readers (the post-processor, then the
// renderer) must not mutate it further.
type Document struct {
	Elements []Block
	IsRoot   bool
	Path     string // the parser's path as given; empty for in-memory documents
	Config   *Configuration

	startPos gotok.Pos
}

func NewDocument(isRoot bool) *Document {
	return &Document{IsRoot: isRoot}
}

func (d *Document) AddElement(b Block) { d.Elements = append(d.Elements, b) }

func (d *Document) Pos() gotok.Pos { return d.startPos }
func (d *Document) End() gotok.Pos {
	if len(d.Elements) == 0 {
		return d.startPos
	}
	return d.Elements[len(d.Elements)-1].End()
}

// Configuration holds document-level settings consulted by the
// "config.*" placeholder provider. The actual values are loaded by the
// config package; ast only needs read access during post-processing and
// rendering.
type Configuration struct {
	Values map[string]string
}

func (c *Configuration) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.Values[key]
	return v, ok
}
