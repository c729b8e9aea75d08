package lexer

type lexState uint8

const (
	stateNormal lexState = iota
	stateSymbol
	stateStringBody
	stateStringEscape
)

type lexer struct {
	state  lexState
	tokens []Token

	buf      []rune
	start    int
	startPos Position

	index   int
	pos     Position
	afterCR bool
}

func newLexer() *lexer {
	return &lexer{
		tokens: []Token{},
		buf:    []rune{},
		pos:    Position{Line: 1, Column: 1},
	}
}

func (lx *lexer) run(in string) []Token {
	for _, r := range in {
		lx.step(r)
		lx.advance(r)
	}
	lx.flush()
	return lx.tokens
}

func (lx *lexer) step(r rune) {
	switch lx.state {
	case stateNormal:
		switch {
		case isWhitespace(r):
			// skip
		case isOpenList(r):
			lx.begin(r)
			lx.emit(TokenOpenList)
		case isCloseList(r):
			lx.begin(r)
			lx.emit(TokenCloseList)
		case isQuote(r):
			lx.begin(r)
			lx.state = stateStringBody
		default:
			lx.begin(r)
			lx.state = stateSymbol
		}

	case stateSymbol:
		switch {
		case isCloseList(r):
			// a closing parenthesis ends the symbol and is a token on its own
			lx.emit(TokenSymbol)
			lx.begin(r)
			lx.emit(TokenCloseList)
			lx.state = stateNormal
		case isWhitespace(r):
			lx.emit(TokenSymbol)
			lx.state = stateNormal
		default:
			lx.buf = append(lx.buf, r)
		}

	case stateStringBody:
		switch {
		case isQuote(r):
			lx.buf = append(lx.buf, r)
			lx.emit(TokenString)
			lx.state = stateNormal
		case r == backslash:
			lx.state = stateStringEscape
		default:
			lx.buf = append(lx.buf, r)
		}

	case stateStringEscape:
		lx.buf = append(lx.buf, r)
		lx.state = stateStringBody

	default:
		panic("unknown lexer state")
	}
}

// flush emits whatever is left in the buffer once the input is exhausted.
func (lx *lexer) flush() {
	switch lx.state {
	case stateNormal:
		return
	case stateSymbol:
		lx.emit(TokenSymbol)
	case stateStringBody, stateStringEscape:
		lx.emit(TokenInvalid)
	default:
		panic("unknown lexer state")
	}
	lx.state = stateNormal
}

func (lx *lexer) begin(r rune) {
	lx.start = lx.index
	lx.startPos = lx.pos
	lx.buf = append(lx.buf[:0], r)
}

func (lx *lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),
		index:  lx.start,
		pos:    lx.startPos,
	})
	lx.buf = lx.buf[:0]
}

// advance moves the cursor past r. A lone "\r", a lone "\n" and "\r\n" are
// each a single line break.
func (lx *lexer) advance(r rune) {
	lx.index++

	switch r {
	case '\r':
		lx.pos.Line++
		lx.pos.Column = 1
		lx.afterCR = true
		return
	case '\n':
		if !lx.afterCR {
			lx.pos.Line++
		}
		lx.pos.Column = 1
	default:
		lx.pos.Column++
	}
	lx.afterCR = false
}

// Tokenize takes a source text and returns all the tokens within it. It never
// fails: a symbol still open at the end of the input is emitted as such and an
// unterminated string literal is emitted as a TokenInvalid token.
func Tokenize(in string) []Token {
	return newLexer().run(in)
}

// TokenizeBytes is like Tokenize but takes an array of bytes.
func TokenizeBytes(in []byte) []Token {
	return Tokenize(string(in))
}
