package ast

import (
	"strings"
)

// Value returns the content of the atom: the text of a symbol, or the text of
// a string literal without its surrounding quotes. Escapes were already
// collapsed by the lexer, nothing else is unescaped.
func (a *Atom) Value() string {
	text := a.tok.Text()
	if a.nt != NodeTypeString {
		return text
	}
	text = strings.TrimPrefix(text, `"`)
	return strings.TrimSuffix(text, `"`)
}

// IsString returns true if the expression is a string atom
func IsString(e Expression) bool {
	return e != nil && e.Type() == NodeTypeString
}

// IsSymbol returns true if the expression is a symbol atom
func IsSymbol(e Expression) bool {
	return e != nil && e.Type() == NodeTypeSymbol
}

// IsList returns true if the expression is a list
func IsList(e Expression) bool {
	return e != nil && e.Type() == NodeTypeList
}
