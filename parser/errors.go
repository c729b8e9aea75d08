package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/sexpression/lexer"
)

var (
	ErrInvalid          = errors.New("invalid expression")
	ErrUnexpectedEnding = errors.New("unexpected ending")
	ErrTooDeep          = errors.New("maximum nesting depth exceeded")
)

// SyntaxError is returned when the parser finds a problem it can attribute to
// a specific token. Err is one of the sentinel errors of this package.
type SyntaxError struct {
	Err   error
	Token lexer.Token
}

func (e *SyntaxError) Error() string {
	pos := e.Token.Pos()
	if pos.Line == 0 {
		return fmt.Sprintf("%v at offset %d near %q", e.Err, e.Token.Index(), e.Token.Text())
	}
	return fmt.Sprintf("%v at %v (offset %d) near %q", e.Err, pos, e.Token.Index(), e.Token.Text())
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxError(err error, tok lexer.Token) error {
	return &SyntaxError{Err: err, Token: tok}
}
