package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota // String literal not closed before the end of input
	TokenOpenList                   // Open parenthesis: "("
	TokenCloseList                  // Close parenthesis: ")"
	TokenSymbol                     // Any run of non-whitespace, non-parenthesis characters
	TokenString                     // Double quoted string: "..."
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
	TokenString:    []rune{'"'},
}

// whitespace is the set of separators, "\r\n" is handled as two members of it.
var whitespace = []rune(" \r\n")

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenSymbol:    "symbol",
	TokenString:    "string",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWhitespace(r rune) bool {
	for _, v := range whitespace {
		if v == r {
			return true
		}
	}
	return false
}

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)
	isQuote     = isTokenType(TokenString)
)

const backslash = '\\'

// classify derives the type of a token from its raw text.
func classify(text string) TokenType {
	switch {
	case text == "":
		return TokenInvalid
	case text == "(":
		return TokenOpenList
	case text == ")":
		return TokenCloseList
	case text[0] == '"':
		if !closesString(text) {
			return TokenInvalid
		}
		return TokenString
	}
	return TokenSymbol
}

// closesString reports whether the quoted literal in text ends with an
// unescaped closing quote.
func closesString(text string) bool {
	for i := 1; i < len(text); i++ {
		switch text[i] {
		case backslash:
			i++
		case '"':
			return i == len(text)-1
		}
	}
	return false
}
