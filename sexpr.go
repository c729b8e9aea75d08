// Package sexpr reads a minimal s-expression format: parenthesized lists of
// symbols and double quoted strings.
//
// Parsing is done in two steps, lexer.Tokenize turns the source into tokens
// and parser.Parse builds an ast.Expression out of them. The functions in this
// package compose both steps.
package sexpr

import (
	"io"

	"github.com/xiam/sexpression/ast"
	"github.com/xiam/sexpression/lexer"
	"github.com/xiam/sexpression/parser"
)

// Reader parses expressions out of an io.Reader. The whole input is read
// before parsing starts.
type Reader struct {
	r io.Reader
	p *parser.Parser
}

// Parse returns the first expression in source.
func Parse(source string) (ast.Expression, error) {
	return parser.Parse(lexer.Tokenize(source))
}

// ParseBytes is like Parse but takes an array of bytes.
func ParseBytes(in []byte) (ast.Expression, error) {
	return parser.Parse(lexer.TokenizeBytes(in))
}

// ParseAll returns every top-level expression in source.
func ParseAll(source string) ([]ast.Expression, error) {
	return parser.ParseAll(lexer.Tokenize(source))
}

// NewReader creates a Reader that parses with default options
func NewReader(r io.Reader) *Reader {
	return NewReaderOptions(r, parser.Options{})
}

// NewReaderOptions creates a Reader that parses with the given options
func NewReaderOptions(r io.Reader, opts parser.Options) *Reader {
	return &Reader{r: r, p: parser.New(opts)}
}

// Parse returns the first expression of the input.
func (r *Reader) Parse() (ast.Expression, error) {
	tokens, err := r.tokenize()
	if err != nil {
		return nil, err
	}
	return r.p.Parse(tokens)
}

// ParseAll returns every top-level expression of the input.
func (r *Reader) ParseAll() ([]ast.Expression, error) {
	tokens, err := r.tokenize()
	if err != nil {
		return nil, err
	}
	return r.p.ParseAll(tokens)
}

func (r *Reader) tokenize() ([]lexer.Token, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return lexer.TokenizeBytes(in), nil
}
