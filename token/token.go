// Package token names the special characters and sequences of the
// Snekdown grammar, the way github.com/jschaf/bibtex/token names bibtex's
// lexical tokens. Snekdown's parser is character-level rather than
// token-level, so these are rune/sequence constants consulted by the
// scanner's Check* family, not a token stream.
package token

const (
	Hash         = '#'
	Minus        = '-'
	Star         = '*'
	Plus         = '+'
	Underscore   = '_'
	Tilde        = '~'
	Caret        = '^'
	Backtick     = '`'
	Pipe         = '|'
	Dot          = '.'
	Colon        = ':'
	Bang         = '!'
	LBracket     = '['
	RBracket     = ']'
	LParen       = '('
	RParen       = ')'
	LBrace       = '{'
	RBrace       = '}'
	Greater      = '>'
	Dollar       = '$'
	At           = '@'
	LineBreak    = '\n'
	Escape       = '\\'
	ImportOpen   = '!'
	ImportClose  = '>'
)

// Sequence constants for multi-character productions.
var (
	SeqCodeBlock   = []rune{Backtick, Backtick, Backtick}
	SeqBold        = []rune{Star, Star}
	SeqStriked     = []rune{Tilde, Tilde}
	SeqRuler       = []rune{Minus, Minus, Minus}
	SeqImportStart = []rune{Less, Bang}
)

const Less = '<'

// UnorderedBullets are the bullet characters that mark an unordered list
// item; any other leading character (conventionally a digit followed by
// '.') is treated as an ordered list.
var UnorderedBullets = []rune{Minus, Star, Plus}

// BlockSpecialSequences are the sequences whose presence at the start of a new
// line inside a paragraph ends that paragraph.
var BlockSpecialSequences = [][]rune{SeqCodeBlock, SeqRuler}

// BlockSpecialChars are single break characters for paragraph-ending.
var BlockSpecialChars = []rune{Hash, Backtick, Pipe, Minus, Star, Plus, Greater}
