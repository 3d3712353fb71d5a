// Package ast declares the types used to represent the Snekdown document
// tree: blocks, lines, inlines, and the shared late-bound nodes (import
// anchors, placeholders, bibliography entries/references, template
// variables) that are produced by imports or post-processing rather than
// directly by parsing.
package ast

import gotok "go/token"

// Node is implemented by every tree element and every shared node.
type Node interface {
	Pos() gotok.Pos
	End() gotok.Pos
}

// Element is the top-level sum described by the spec: a Block, a Line, or
// an Inline.
type Element interface {
	Node
	elementNode()
}

// Block is a top-level or section-level document block.
type Block interface {
	Element
	blockNode()
}

// Line is a single textual line within a block.
type Line interface {
	Element
	lineNode()
}

// Inline is a span of text within a Line.
type Inline interface {
	Element
	inlineNode()
}
