package ast

import gotok "go/token"

// span is embedded by every simple Inline node to provide Pos/End without
// repeating the boilerplate.
type span struct {
	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func (s span) Pos() gotok.Pos { return s.StartPos }
func (s span) End() gotok.Pos { return s.EndPos }

// PlainText is unformatted text with no special role.
type PlainText struct {
	span
	Value string
}

func (*PlainText) elementNode() {}
func (*PlainText) inlineNode()  {}

// BoldText is `**x**`.
type BoldText struct {
	span
	Value Inline
}

func (*BoldText) elementNode() {}
func (*BoldText) inlineNode()  {}

// ItalicText is `*x*`.
type ItalicText struct {
	span
	Value Inline
}

func (*ItalicText) elementNode() {}
func (*ItalicText) inlineNode()  {}

// UnderlinedText is `_x_`.
type UnderlinedText struct {
	span
	Value Inline
}

func (*UnderlinedText) elementNode() {}
func (*UnderlinedText) inlineNode()  {}

// StrikedText is `~~x~~`.
type StrikedText struct {
	span
	Value Inline
}

func (*StrikedText) elementNode() {}
func (*StrikedText) inlineNode()  {}

// SuperscriptText is `^x^`.
type SuperscriptText struct {
	span
	Value Inline
}

func (*SuperscriptText) elementNode() {}
func (*SuperscriptText) inlineNode()  {}

// MonospaceText is `` `x` ``. Its contents are never re-parsed for nested
// emphasis.
type MonospaceText struct {
	span
	Value string
}

func (*MonospaceText) elementNode() {}
func (*MonospaceText) inlineNode()  {}

// Url is `[text](url)`; Description is empty when the text was omitted.
type Url struct {
	span
	URL         string
	Description string
	HasDescription bool
}

func (*Url) elementNode() {}
func (*Url) inlineNode()  {}

// Image is `![alt](url)`.
type Image struct {
	span
	URL      Url
	Metadata *InlineMetadata // optional; width/height become inline style
}

func (*Image) elementNode() {}
func (*Image) inlineNode()  {}

// Checkbox is `[x]` / `[ ]`.
type Checkbox struct {
	span
	Checked bool
}

func (*Checkbox) elementNode() {}
func (*Checkbox) inlineNode()  {}

// Emoji is `:name:`.
type Emoji struct {
	span
	Name  string
	Value string // resolved unicode glyph; empty if unknown
}

func (*Emoji) elementNode() {}
func (*Emoji) inlineNode()  {}

// Colored is `{#rrggbb}text{}`.
type Colored struct {
	span
	Color string
	Value Inline
}

func (*Colored) elementNode() {}
func (*Colored) inlineNode()  {}
