package ast

import (
	gotok "go/token"
	"sync"
)

// Import is a `<![path]>` reference to another document. It is only legal
// at a document's top level (section nesting depth 0); the parser enforces
// that, not Import itself.
type Import struct {
	Path   string
	Anchor *ImportAnchor

	StartPos gotok.Pos
	EndPos   gotok.Pos
}

func NewImport(path string, anchor *ImportAnchor) *Import {
	return &Import{Path: path, Anchor: anchor}
}

func (i *Import) Pos() gotok.Pos { return i.StartPos }
func (i *Import) End() gotok.Pos { return i.EndPos }
func (*Import) elementNode()     {}
func (*Import) blockNode()       {}

// ImportAnchor is a shared slot that is empty when created and is
// populated exactly once, by the worker that parses the imported file. It
// is guarded by a reader/writer lock: one writer (the worker), many
// readers (the post-processor and the renderer) after the parse-wide
// wait-group join.
type ImportAnchor struct {
	mu       sync.RWMutex
	document *Document
	failed   bool
}

func NewImportAnchor() *ImportAnchor { return &ImportAnchor{} }

// SetDocument publishes the parsed sub-document. Called at most once.
func (a *ImportAnchor) SetDocument(doc *Document) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.document = doc
}

// SetFailed marks the import as having failed to parse; the anchor then
// renders as the empty string.
func (a *ImportAnchor) SetFailed() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failed = true
}

// Document returns the published sub-document, or nil if the import failed
// or has not completed (callers are expected to only read after the
// parse-wide join, per the concurrency contract).
func (a *ImportAnchor) Document() *Document {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.document
}

func (a *ImportAnchor) Failed() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.failed
}
