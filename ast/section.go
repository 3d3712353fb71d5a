package ast

import gotok "go/token"

// Section is a header followed by the blocks nested under it. Along any
// root-to-leaf chain of nested Sections, Header.Size strictly increases;
// the parser enforces this via the section-nesting protocol, not Section
// itself.
type Section struct {
	Header   Header
	Elements []Block
	Metadata *InlineMetadata // optional

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func NewSection(header Header) *Section { return &Section{Header: header} }

func (s *Section) AddElement(b Block) { s.Elements = append(s.Elements, b) }

func (s *Section) Pos() gotok.Pos { return s.StartPos }
func (s *Section) End() gotok.Pos { return s.EndPos }
func (*Section) elementNode()     {}
func (*Section) blockNode()       {}

// Header is a section title: a nesting size in [1,255], a derived HTML
// anchor (unique within a Document after post-processing), and the line of
// inline content that is the visible title.
type Header struct {
	Size   uint8
	Anchor string
	Line   Line
}
