package scanner_test

import (
	gotok "go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jschaf/snekdown/scanner"
)

func newScanner(t *testing.T, text string) *scanner.Scanner {
	t.Helper()
	fset := gotok.NewFileSet()
	file := fset.AddFile("test.sd", -1, len(text)+1)
	return scanner.New(file, text, func(pos gotok.Position, msg string) {
		t.Logf("scanner error at %s: %s", pos, msg)
	})
}

func TestScanner_PeekAdvance(t *testing.T) {
	s := newScanner(t, "ab")
	assert.Equal(t, 'a', s.Peek())
	ch, ok := s.Advance()
	require.True(t, ok)
	assert.Equal(t, 'b', ch)
}

func TestScanner_Revert(t *testing.T) {
	s := newScanner(t, "abcdef")
	p := s.Position()
	s.Advance()
	s.Advance()
	s.Revert(p)
	assert.Equal(t, p, s.Position())
	assert.Equal(t, 'a', s.Peek())
}

func TestScanner_RevertOutOfRange_Panics(t *testing.T) {
	s := newScanner(t, "abc")
	assert.Panics(t, func() {
		s.Revert(999)
	})
}

func TestScanner_Escaped(t *testing.T) {
	s := newScanner(t, `\*`)
	s.Advance() // now on '*', previous is '\'
	assert.True(t, s.Escaped())
	assert.False(t, s.CheckSpecial('*'))
}

func TestScanner_CheckSpecialGroup(t *testing.T) {
	s := newScanner(t, "-list")
	assert.True(t, s.CheckSpecialGroup([]rune{'-', '*', '+'}))
}

func TestScanner_CheckSequence(t *testing.T) {
	s := newScanner(t, "```rust")
	assert.True(t, s.CheckSequence([]rune{'`', '`', '`'}))
	ch, ok := s.Advance()
	require.True(t, ok)
	assert.Equal(t, 'r', ch)
}

func TestScanner_CheckSequence_FailureReverts(t *testing.T) {
	s := newScanner(t, "``x")
	start := s.Position()
	assert.False(t, s.CheckSequence([]rune{'`', '`', '`'}))
	assert.Equal(t, start, s.Position())
}

func TestScanner_GetStringUntil(t *testing.T) {
	s := newScanner(t, "hello world\n")
	str, err := s.GetStringUntil([]rune{'\n'}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world", str)
}

func TestScanner_GetStringUntil_StripsUnescapedBackslash(t *testing.T) {
	s := newScanner(t, `\*not italic\*`+"\n")
	str, err := s.GetStringUntil([]rune{'\n'}, nil)
	require.NoError(t, err)
	assert.Equal(t, "*not italic*", str)
}

func TestScanner_GetStringUntil_ErrFirst(t *testing.T) {
	s := newScanner(t, "he#llo\n")
	_, err := s.GetStringUntil([]rune{'\n'}, []rune{'#'})
	assert.Error(t, err)
}

func TestScanner_SeekWhitespace(t *testing.T) {
	s := newScanner(t, "   x")
	s.SeekWhitespace()
	assert.Equal(t, 'x', s.Peek())
}
