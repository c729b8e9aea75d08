package parser

import (
	"github.com/xiam/sexpression/ast"
	"github.com/xiam/sexpression/lexer"
)

// Options configures a Parser
type Options struct {
	// MaxDepth limits how deeply lists can be nested, zero means no limit.
	// Each level of nesting is a level of recursion: without a limit, a few
	// hundred thousand nested lists exhaust the goroutine stack and the
	// process dies with a fatal error that cannot be recovered. Set a limit
	// when parsing untrusted input.
	MaxDepth int
}

// Parser builds expression trees out of token streams. A Parser holds no
// state besides its options and can be used from multiple goroutines.
type Parser struct {
	opts Options
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// cursor is a read-only view over a token stream, narrowing it never copies
// tokens.
type cursor struct {
	tokens []lexer.Token
	pos    int
}

func (c cursor) empty() bool {
	return c.pos >= len(c.tokens)
}

func (c cursor) remaining() int {
	return len(c.tokens) - c.pos
}

func (c cursor) peek() lexer.Token {
	return c.tokens[c.pos]
}

func (c cursor) last() lexer.Token {
	return c.tokens[len(c.tokens)-1]
}

func (c cursor) advance() cursor {
	return cursor{tokens: c.tokens, pos: c.pos + 1}
}

// Parse returns the first expression found in tokens, any tokens that follow
// it are ignored. It fails with ErrInvalid if there are no tokens.
func (p *Parser) Parse(tokens []lexer.Token) (ast.Expression, error) {
	e, ok, _, err := p.parseExpression(cursor{tokens: tokens}, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalid
	}
	return e, nil
}

// ParseAll returns every top-level expression found in tokens, in order.
func (p *Parser) ParseAll(tokens []lexer.Token) ([]ast.Expression, error) {
	exprs := []ast.Expression{}
	for c := (cursor{tokens: tokens}); ; {
		e, ok, next, err := p.parseExpression(c, 0)
		if err != nil {
			return nil, err
		}
		if !ok {
			return exprs, nil
		}
		exprs = append(exprs, e)
		c = next
	}
}

// parseExpression reads one expression from c. ok is false when c is
// exhausted, which is not an error at this level.
func (p *Parser) parseExpression(c cursor, depth int) (e ast.Expression, ok bool, next cursor, err error) {
	if c.empty() {
		return nil, false, c, nil
	}

	tok := c.peek()
	switch tok.Type() {
	case lexer.TokenOpenList:
		return p.parseList(c, depth+1)

	case lexer.TokenCloseList:
		// a closing parenthesis with no list to close
		return nil, false, c, syntaxError(ErrInvalid, tok)

	case lexer.TokenString:
		return ast.NewString(tok), true, c.advance(), nil

	case lexer.TokenSymbol:
		return ast.NewSymbol(tok), true, c.advance(), nil

	case lexer.TokenInvalid:
		// string literal cut short by the end of the input
		return nil, false, c, syntaxError(ErrUnexpectedEnding, tok)
	}

	panic("unknown token type")
}

func (p *Parser) parseList(c cursor, depth int) (ast.Expression, bool, cursor, error) {
	open := c.peek()

	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		return nil, false, c, syntaxError(ErrTooDeep, open)
	}

	if c.remaining() == 1 {
		return nil, false, c, syntaxError(ErrUnexpectedEnding, open)
	}

	children := []ast.Expression{}

	next := c.advance()
	for !next.empty() && !next.peek().Is(lexer.TokenCloseList) {
		tok := next.peek()

		e, ok, rest, err := p.parseExpression(next, depth)
		if err != nil {
			return nil, false, c, err
		}
		if !ok {
			return nil, false, c, syntaxError(ErrUnexpectedEnding, tok)
		}

		children = append(children, e)
		next = rest
	}

	if next.empty() {
		return nil, false, c, syntaxError(ErrUnexpectedEnding, c.last())
	}

	return ast.NewList(children...), true, next.advance(), nil
}

// Parse returns the first expression found in tokens using default options.
func Parse(tokens []lexer.Token) (ast.Expression, error) {
	return New(Options{}).Parse(tokens)
}

// ParseAll returns every top-level expression found in tokens using default
// options.
func ParseAll(tokens []lexer.Token) ([]ast.Expression, error) {
	return New(Options{}).ParseAll(tokens)
}
