package ast

import (
	"strings"

	"github.com/xiam/sexpression/lexer"
)

// Expression is a node of the tree: either an atom (string or symbol) or a
// list of expressions. Expressions are immutable once built.
type Expression interface {
	// Type returns the type of the node
	Type() NodeType

	// String returns the description of the expression: lists are rendered
	// in parentheses, strings verbatim and symbols between square brackets.
	String() string

	isExpression()
}

// Atom is a leaf node holding the token it was built from.
type Atom struct {
	nt  NodeType
	tok lexer.Token
}

// NewString creates a string atom from a string literal token
func NewString(tok lexer.Token) *Atom {
	return &Atom{nt: NodeTypeString, tok: tok}
}

// NewSymbol creates a symbol atom
func NewSymbol(tok lexer.Token) *Atom {
	return &Atom{nt: NodeTypeSymbol, tok: tok}
}

// Type returns the type of the node
func (a *Atom) Type() NodeType {
	return a.nt
}

// Token returns the token associated to the node
func (a *Atom) Token() lexer.Token {
	return a.tok
}

// Text returns the raw text of the atom, quotes included for strings.
func (a *Atom) Text() string {
	return a.tok.Text()
}

func (a *Atom) String() string {
	if a.nt == NodeTypeSymbol {
		return "[" + a.tok.Text() + "]"
	}
	return a.tok.Text()
}

func (*Atom) isExpression() {}

// List is an ordered, possibly empty, sequence of expressions.
type List struct {
	children []Expression
}

// NewList creates a list that owns the given children
func NewList(children ...Expression) *List {
	if children == nil {
		children = []Expression{}
	}
	return &List{children: children}
}

// Type returns the type of the node
func (l *List) Type() NodeType {
	return NodeTypeList
}

// Len returns the number of children
func (l *List) Len() int {
	return len(l.children)
}

// At returns the i-th child
func (l *List) At(i int) Expression {
	return l.children[i]
}

// Children returns a copy of the children of the list
func (l *List) Children() []Expression {
	return append([]Expression{}, l.children...)
}

func (l *List) String() string {
	nodes := make([]string, 0, len(l.children))
	for i := range l.children {
		nodes = append(nodes, l.children[i].String())
	}
	return "(" + strings.Join(nodes, " ") + ")"
}

func (*List) isExpression() {}

var (
	_ = Expression(&Atom{})
	_ = Expression(&List{})
)
