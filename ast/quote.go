package ast

import gotok "go/token"

// Quote is one or more `>`-prefixed TextLines, with an optional inline
// metadata prelude. Text is never empty for a successfully parsed Quote.
type Quote struct {
	Metadata *InlineMetadata // optional
	Text     []*TextLine

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func NewQuote(metadata *InlineMetadata) *Quote { return &Quote{Metadata: metadata} }

func (q *Quote) AddText(t *TextLine) { q.Text = append(q.Text, t) }

func (q *Quote) Pos() gotok.Pos { return q.StartPos }
func (q *Quote) End() gotok.Pos { return q.EndPos }
func (*Quote) elementNode()     {}
func (*Quote) blockNode()       {}

// Paragraph is the fallback block: a run of Lines up to the next
// block-break.
type Paragraph struct {
	Elements []Line

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func NewParagraph() *Paragraph { return &Paragraph{} }

func (p *Paragraph) AddElement(l Line) { p.Elements = append(p.Elements, l) }

func (p *Paragraph) Pos() gotok.Pos { return p.StartPos }
func (p *Paragraph) End() gotok.Pos { return p.EndPos }
func (*Paragraph) elementNode()     {}
func (*Paragraph) blockNode()       {}
