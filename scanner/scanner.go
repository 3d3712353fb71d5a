// Package scanner implements the character-addressable cursor the snekdown
// parser runs on. Unlike a classic lexer it does not tokenize; it exposes a
// random-access rune cursor with escape-awareness and transactional revert,
// refilling its buffer from a line-oriented reader on demand.
package scanner

import (
	"bufio"
	"fmt"
	gotok "go/token"
	"io"

	"golang.org/x/net/html/charset"
)

// Escape is the character that disables the special meaning of whatever
// follows it.
const Escape = '\\'

// LineBreak is the line-break special character.
const LineBreak = '\n'

const eof = rune(-1)

// ErrorHandler is called when Revert is asked to jump past the end of the
// buffer. It mirrors the teacher scanner's pluggable error reporting.
type ErrorHandler func(pos gotok.Position, msg string)

// Scanner is the cursor/scanner described by the parsing contract: peek,
// advance, revert, escape tests and bounded string extraction, all backed by
// an append-only buffer that grows as the underlying reader is consumed.
type Scanner struct {
	file *gotok.File
	err  ErrorHandler

	src    []rune // append-only, growing buffer of the whole input seen so far
	reader *bufio.Reader
	eof    bool // the underlying reader has been fully drained

	index       int  // current position into src
	current     rune // src[index], or eof
	previous    rune // src[index-1], or ' ' at the start
	ErrorCount  int
}

// New creates a Scanner over an in-memory string. file is used only for
// position reporting.
func New(file *gotok.File, text string, err ErrorHandler) *Scanner {
	return newScanner(file, bufio.NewReader(charsetReader(text)), err)
}

// NewFromReader creates a Scanner that refills its buffer from r (typically
// a buffered file reader), batching reads the way the original parser does.
func NewFromReader(file *gotok.File, r io.Reader, err ErrorHandler) *Scanner {
	normalized, _ := charset.NewReader(r, "text/plain; charset=utf-8")
	if normalized == nil {
		normalized = r
	}
	return newScanner(file, bufio.NewReader(normalized), err)
}

func charsetReader(text string) io.Reader {
	r, cerr := charset.NewReader(stringReader(text), "text/plain; charset=utf-8")
	if cerr != nil || r == nil {
		return stringReader(text)
	}
	return r
}

type stringReaderT struct {
	s   string
	pos int
}

func stringReader(s string) io.Reader { return &stringReaderT{s: s} }

func (r *stringReaderT) Read(p []byte) (int, error) {
	if r.pos >= len(r.s) {
		return 0, io.EOF
	}
	n := copy(p, r.s[r.pos:])
	r.pos += n
	return n, nil
}

func newScanner(file *gotok.File, r *bufio.Reader, eh ErrorHandler) *Scanner {
	s := &Scanner{
		file:     file,
		err:      eh,
		reader:   r,
		previous: ' ',
	}
	s.fill(8)
	if len(s.src) > 0 {
		s.current = s.src[0]
	} else {
		s.current = eof
		s.eof = true
	}
	return s
}

// fill reads up to n more lines from the underlying reader into the
// append-only buffer. It is a no-op once the reader is drained.
func (s *Scanner) fill(lines int) {
	if s.eof {
		return
	}
	for i := 0; i < lines; i++ {
		line, err := s.reader.ReadString('\n')
		if len(line) > 0 {
			for _, r := range line {
				s.src = append(s.src, r)
				if r == LineBreak {
					s.file.AddLine(len(s.src))
				}
			}
		}
		if err != nil {
			s.eof = true
			break
		}
	}
}

func (s *Scanner) error(msg string) {
	if s.err != nil {
		s.err(s.file.Position(s.file.Pos(s.index)), msg)
	}
	s.ErrorCount++
}

// Peek returns the character at the cursor without advancing it.
func (s *Scanner) Peek() rune { return s.current }

// Position returns the cursor's current offset, suitable for Revert.
func (s *Scanner) Position() int { return s.index }

// Pos returns the go/token.Pos for the current offset, for diagnostics.
func (s *Scanner) Pos() gotok.Pos { return s.file.Pos(s.index) }

// AtEOF reports whether the cursor has consumed the entire input.
func (s *Scanner) AtEOF() bool {
	return s.eof && s.index >= len(s.src)
}

// Advance moves the cursor forward one character, refilling the buffer from
// the underlying reader if necessary, and returns the new current character.
// It returns (0, false) at end of input.
func (s *Scanner) Advance() (rune, bool) {
	if s.index >= len(s.src) && s.eof {
		return 0, false
	}
	s.index++
	s.previous = s.current
	if len(s.src)-1 <= s.index {
		s.fill(8)
	}
	if s.index >= len(s.src) {
		s.current = eof
		return 0, false
	}
	s.current = s.src[s.index]
	return s.current, true
}

// Revert restores the cursor to a previously observed index. It must
// succeed for any index previously returned by Position; failure is the
// FatalRevert condition and panics, matching spec.md's "programming error"
// classification for an out-of-range revert.
func (s *Scanner) Revert(index int) {
	if index < 0 || index > len(s.src) {
		s.error(fmt.Sprintf("failed to revert to %d", index))
		panic(&FatalRevertError{Index: index})
	}
	s.index = index
	if index < len(s.src) {
		s.current = s.src[index]
	} else {
		s.current = eof
	}
	if index > 0 {
		s.previous = s.src[index-1]
	} else {
		s.previous = ' '
	}
}

// FatalRevertError is raised (as a panic) when Revert is asked to jump to an
// index the buffer never produced. Recovered at the top of Parser.Parse.
type FatalRevertError struct{ Index int }

func (e *FatalRevertError) Error() string {
	return fmt.Sprintf("fatal: revert to out-of-range index %d", e.Index)
}

// Escaped reports whether the previous character is an unescaped backslash,
// i.e. whether the current character has had its special meaning disabled.
func (s *Scanner) Escaped() bool {
	n := 0
	for i := s.index - 1; i >= 0 && i < len(s.src) && s.src[i] == Escape; i-- {
		n++
	}
	return n%2 == 1
}

// CheckSpecial reports whether the current character equals c and is not
// escaped.
func (s *Scanner) CheckSpecial(c rune) bool {
	return s.current == c && !s.Escaped()
}

// CheckSpecialGroup reports whether the current character is a member of
// group and is not escaped.
func (s *Scanner) CheckSpecialGroup(group []rune) bool {
	if s.Escaped() {
		return false
	}
	for _, c := range group {
		if s.current == c {
			return true
		}
	}
	return false
}

// CheckLineBreak reports whether the current character is an unescaped
// line break.
func (s *Scanner) CheckLineBreak() bool { return s.CheckSpecial(LineBreak) }

// CheckSequence reports whether the upcoming characters match sequence
// exactly. On success the cursor is left on the last character of the
// sequence (mirroring the teacher's "revert to index-1" trick, so the
// caller's next Advance lands just past it). On failure the cursor is
// restored to where it started.
func (s *Scanner) CheckSequence(sequence []rune) bool {
	start := s.index
	if s.Escaped() {
		return false
	}
	for _, want := range sequence {
		if s.current != want {
			s.Revert(start)
			return false
		}
		s.Advance()
	}
	if s.index > 0 {
		s.Revert(s.index - 1)
	}
	return true
}

// CheckSequenceGroup reports whether any of sequences matches at the cursor.
func (s *Scanner) CheckSequenceGroup(sequences [][]rune) bool {
	for _, seq := range sequences {
		if s.CheckSequence(seq) {
			return true
		}
	}
	return false
}

// SeekInlineWhitespace advances past whitespace that is not a line break.
func (s *Scanner) SeekInlineWhitespace() {
	if isWhitespace(s.current) && !s.CheckLineBreak() {
		for {
			ch, ok := s.Advance()
			if !ok || !isWhitespace(ch) || s.CheckLineBreak() {
				break
			}
		}
	}
}

// CheckSeekInlineWhitespace seeks inline whitespace and reports whether any
// was consumed.
func (s *Scanner) CheckSeekInlineWhitespace() bool {
	start := s.index
	s.SeekInlineWhitespace()
	return s.index > start
}

// SeekWhitespace advances past any whitespace, including line breaks.
func (s *Scanner) SeekWhitespace() {
	if isWhitespace(s.current) {
		for {
			ch, ok := s.Advance()
			if !ok || !isWhitespace(ch) {
				break
			}
		}
	}
}

// SeekUntilLinebreak advances past the next unescaped line break (including
// it), or to end of input.
func (s *Scanner) SeekUntilLinebreak() {
	if s.CheckSpecial(LineBreak) {
		s.Advance()
		return
	}
	for {
		_, ok := s.Advance()
		if !ok {
			return
		}
		if s.CheckSpecial(LineBreak) {
			s.Advance()
			return
		}
	}
}

// GetStringUntil accumulates characters into a string, stopping (without
// consuming) at the first unescaped character in breakAt. It fails with
// FatalRevertError-free ParseError semantics (returned, not panicked) if an
// unescaped character in errAt is reached first.
func (s *Scanner) GetStringUntil(breakAt, errAt []rune) (string, error) {
	start := s.index
	var buf []rune
	if s.CheckSpecialGroup(breakAt) {
		return "", nil
	}
	if s.CheckSpecialGroup(errAt) {
		return "", &BreakError{Index: s.index}
	}
	// An unescaped backslash only disables the next character's special
	// meaning; it isn't itself part of the accumulated text.
	if s.current != Escape || s.Escaped() {
		buf = append(buf, s.current)
	}
	for {
		ch, ok := s.Advance()
		if !ok {
			break
		}
		if s.CheckSpecialGroup(breakAt) || s.CheckSpecialGroup(errAt) {
			break
		}
		if ch != Escape || s.Escaped() {
			buf = append(buf, ch)
		}
	}
	if s.CheckSpecialGroup(errAt) {
		s.Revert(start)
		return "", &BreakError{Index: start}
	}
	return string(buf), nil
}

// GetStringUntilSequence is GetStringUntil, but the break condition is a set
// of multi-character sequences rather than single characters.
func (s *Scanner) GetStringUntilSequence(breakAt [][]rune, errAt []rune) (string, error) {
	start := s.index
	var buf []rune
	if s.CheckSequenceGroup(breakAt) {
		return "", nil
	}
	if s.CheckSpecialGroup(errAt) {
		return "", &BreakError{Index: s.index}
	}
	buf = append(buf, s.current)
	for {
		ch, ok := s.Advance()
		if !ok {
			break
		}
		if s.CheckSequenceGroup(breakAt) || s.CheckSpecialGroup(errAt) {
			break
		}
		buf = append(buf, ch)
	}
	if s.CheckSpecialGroup(errAt) {
		s.Revert(start)
		return "", &BreakError{Index: start}
	}
	return string(buf), nil
}

// BreakError signals that GetStringUntil reached an error character before
// its break set.
type BreakError struct{ Index int }

func (e *BreakError) Error() string { return fmt.Sprintf("unexpected character at %d", e.Index) }

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
