package parser

import (
	"fmt"
	gotok "go/token"
)

// ParseError is returned by every production. index is the cursor offset
// at which the production gave up; eof marks that the failure was due to
// running out of input, which callers use to decide whether to stop
// parsing the current file entirely.
type ParseError struct {
	Index   int
	Message string
	EOF     bool
}

func newParseError(index int) *ParseError { return &ParseError{Index: index} }

func newParseErrorMsg(index int, msg string) *ParseError {
	return &ParseError{Index: index, Message: msg}
}

func newEOFError(index int) *ParseError {
	return &ParseError{Index: index, EOF: true}
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("parse error at index %d: %s", e.Index, e.Message)
	}
	return fmt.Sprintf("parse error at index %d", e.Index)
}

// ImportFailure reports a non-existent import target, an I/O failure, or a
// cyclic import. The containing Import block is not emitted; parsing of
// the importing document continues.
type ImportFailure struct {
	Path   string
	Reason string
}

func (e *ImportFailure) Error() string {
	return fmt.Sprintf("import of %q failed: %s", e.Path, e.Reason)
}

// NestingError reports a section-nesting or import-inside-section
// violation. It carries the depth the parent loop should unwind to.
type NestingError struct {
	ReturnTo uint8
	Message  string
}

func (e *NestingError) Error() string { return e.Message }

// Diagnostic is a position-resolved error ready for display, in the
// `Error in File <path>:<line>:<col> - <message>` form spec.md mandates
// when a file context exists.
type Diagnostic struct {
	Path    string // empty if the document has no path
	Pos     gotok.Position
	Message string
}

func (d *Diagnostic) String() string {
	if d.Path == "" {
		return d.Message
	}
	if !d.Pos.IsValid() {
		return fmt.Sprintf("Error in File %s: %s", d.Path, d.Message)
	}
	return fmt.Sprintf("Error in File %s:%d:%d - %s", d.Path, d.Pos.Line, d.Pos.Column, d.Message)
}
