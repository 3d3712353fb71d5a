package ast

import gotok "go/token"

// TextLine is a plain textual line: a sequence of Inline sub-texts.
type TextLine struct {
	SubText []Inline

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func NewTextLine() *TextLine { return &TextLine{} }

func (t *TextLine) AddSubText(i Inline) { t.SubText = append(t.SubText, i) }

func (t *TextLine) Pos() gotok.Pos { return t.StartPos }
func (t *TextLine) End() gotok.Pos { return t.EndPos }
func (*TextLine) elementNode()     {}
func (*TextLine) lineNode()        {}

// Ruler is a `---` on its own line.
type Ruler struct {
	StartPos gotok.Pos
}

func (r *Ruler) Pos() gotok.Pos { return r.StartPos }
func (r *Ruler) End() gotok.Pos { return r.StartPos + 3 }
func (*Ruler) elementNode()     {}
func (*Ruler) lineNode()        {}

// Anchor is a `[name](#ref)` on its own line: a link to a Section anchor.
type Anchor struct {
	Description Line
	Reference   string

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func (a *Anchor) Pos() gotok.Pos { return a.StartPos }
func (a *Anchor) End() gotok.Pos { return a.EndPos }
func (*Anchor) elementNode()     {}
func (*Anchor) lineNode()        {}

// Centered is a `|text|` on its own line.
type Centered struct {
	Line Line

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func (c *Centered) Pos() gotok.Pos { return c.StartPos }
func (c *Centered) End() gotok.Pos { return c.EndPos }
func (*Centered) elementNode()     {}
func (*Centered) lineNode()        {}

// BibEntryLine is the bibliography-entry-definition shorthand line. It
// wraps the shared BibEntry, which is also referenced by BibReference
// lookups during post-processing.
type BibEntryLine struct {
	Entry *BibEntry

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func (b *BibEntryLine) Pos() gotok.Pos { return b.StartPos }
func (b *BibEntryLine) End() gotok.Pos { return b.EndPos }
func (*BibEntryLine) elementNode()     {}
func (*BibEntryLine) lineNode()        {}
