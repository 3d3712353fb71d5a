package ast

import (
	gotok "go/token"
	"sync"
)

// Placeholder is a named hole (`[[name]]`) resolved during post-processing
// against the document's registered placeholder providers. It is shared
// because it is created empty by the parser and filled exactly once,
// later, by the single-threaded post-processing walk.
type Placeholder struct {
	span
	mu    sync.RWMutex
	Name  string
	value Element
}

func NewPlaceholder(name string) *Placeholder { return &Placeholder{Name: name} }

func (p *Placeholder) Resolve(v Element) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = v
}

func (p *Placeholder) Value() (Element, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value, p.value != nil
}

// PlaceholderBlock wraps a Placeholder that sat alone on a line and was
// lifted from inline to block position by the parser.
type PlaceholderBlock struct {
	Shared *Placeholder
}

func (p *PlaceholderBlock) Pos() gotok.Pos { return p.Shared.Pos() }
func (p *PlaceholderBlock) End() gotok.Pos { return p.Shared.End() }
func (*PlaceholderBlock) elementNode()     {}
func (*PlaceholderBlock) blockNode()       {}

// PlaceholderInline wraps a Placeholder used inline.
type PlaceholderInline struct {
	Shared *Placeholder
}

func (p *PlaceholderInline) Pos() gotok.Pos { return p.Shared.Pos() }
func (p *PlaceholderInline) End() gotok.Pos { return p.Shared.End() }
func (*PlaceholderInline) elementNode()     {}
func (*PlaceholderInline) inlineNode()      {}
