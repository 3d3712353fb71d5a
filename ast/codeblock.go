package ast

import gotok "go/token"

// CodeBlock is a fenced code block. An empty Language means plain text;
// otherwise the renderer attempts syntax highlighting and falls back to a
// plain <pre> if no highlighter is registered for it.
type CodeBlock struct {
	Language string
	Code     string

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func (c *CodeBlock) Pos() gotok.Pos { return c.StartPos }
func (c *CodeBlock) End() gotok.Pos { return c.EndPos }
func (*CodeBlock) elementNode()     {}
func (*CodeBlock) blockNode()       {}
