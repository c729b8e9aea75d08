package lexer

import (
	"fmt"
)

// Position is a 1-based line and column pair.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	index int
	pos   Position
}

// NewToken creates a lexical unit that starts at the given character offset,
// its type is derived from the lexeme.
func NewToken(index int, lexeme string) Token {
	return Token{
		tt:     classify(lexeme),
		lexeme: lexeme,
		index:  index,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Index returns the offset of the first character of the lexical unit, in
// runes (not bytes) from the beginning of the source. Runes are not grapheme
// clusters: "\r\n" and combining sequences count as several characters, so
// offsets past them are larger than a grapheme count would give.
func (t Token) Index() int {
	return t.index
}

// Pos returns the line and column of the lexical unit. Tokens created with
// NewToken have a zero position.
func (t Token) Pos() Position {
	return t.pos
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %v])", t.tt, t.lexeme, t.index, t.pos)
}
