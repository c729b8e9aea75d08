package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	testCases := []struct {
		In    string
		Count int
	}{
		{``, 0},
		{`a`, 1},
		{`()`, 2},
		{`(a)`, 3},
		{`( (a1 a2 (a3 a4 "xyz \"x")))`, 11},
		{`(foo a b c-d-e-f "ghi")`, 7},
		{"(foo\n  a :b\n  c-d-e-f\n  \"g\n  hi\"\n)", 7},
		{`(set foo (+ 3 3))`, 9},
		{"(\n  \"hello world!\" \"brave new \" :world\n)", 5},
		{`(fn1 (:A "ðŸ˜Š"))`, 7},
		{`(fn1 (:robot ðŸ¤–))`, 7},
		{`("unterminated`, 2},
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.Len(t, tokens, testCases[i].Count, "input: %q", testCases[i].In)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{},
		},
		{
			" \r\n \n",
			[]TokenType{},
		},
		{
			`a`,
			[]TokenType{
				TokenSymbol,
			},
		},
		{
			`(a)`,
			[]TokenType{
				TokenOpenList,
				TokenSymbol,
				TokenCloseList,
			},
		},
		{
			`(a (b c))`,
			[]TokenType{
				TokenOpenList,
				TokenSymbol,
				TokenOpenList,
				TokenSymbol,
				TokenSymbol,
				TokenCloseList,
				TokenCloseList,
			},
		},
		{
			`("a b" c "d")`,
			[]TokenType{
				TokenOpenList,
				TokenString,
				TokenSymbol,
				TokenString,
				TokenCloseList,
			},
		},
		{
			`()()`,
			[]TokenType{
				TokenOpenList,
				TokenCloseList,
				TokenOpenList,
				TokenCloseList,
			},
		},
		{
			`("abc`,
			[]TokenType{
				TokenOpenList,
				TokenInvalid,
			},
		},
		{
			`"abc\`,
			[]TokenType{
				TokenInvalid,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)

		assert.NotNil(t, tokens)
		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenText(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			`(a)`,
			[]string{"(", "a", ")"},
		},
		{
			`( (a1 a2 (a3 a4 "xyz \"x")))`,
			[]string{"(", "(", "a1", "a2", "(", "a3", "a4", `"xyz "x"`, ")", ")", ")"},
		},
		{
			// the backslash is dropped, the escaped character is kept
			`"xyz \"x"`,
			[]string{`"xyz "x"`},
		},
		{
			`"a\\b"`,
			[]string{`"a\b"`},
		},
		{
			`"a\nb"`,
			[]string{`"anb"`},
		},
		{
			`"a (b) c"`,
			[]string{`"a (b) c"`},
		},
		{
			"a\tb",
			[]string{"a\tb"},
		},
		{
			`a(b`,
			[]string{"a(b"},
		},
		{
			`a"b c`,
			[]string{`a"b`, "c"},
		},
		{
			`(a b`,
			[]string{"(", "a", "b"},
		},
		{
			`("ab`,
			[]string{"(", `"ab`},
		},
		{
			"(a\r\nb)",
			[]string{"(", "a", "b", ")"},
		},
	}

	getTokenText := func(tokens []Token) []string {
		text := make([]string, 0, len(tokens))
		for i := range tokens {
			text = append(text, tokens[i].Text())
		}
		return text
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Out, getTokenText(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenIndex(t *testing.T) {
	testCases := []struct {
		In    string
		Index []int
	}{
		{
			`(a)`,
			[]int{0, 1, 2},
		},
		{
			`(abc def)`,
			[]int{0, 1, 5, 8},
		},
		{
			`  "x y" z`,
			[]int{2, 8},
		},
		{
			// offsets count characters, not bytes
			`(é ü)`,
			[]int{0, 1, 3, 4},
		},
		{
			// "\r\n" is two runes
			"a\r\nb",
			[]int{0, 3},
		},
	}

	getTokenIndexes := func(tokens []Token) []int {
		ret := make([]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, tokens[i].Index())
		}
		return ret
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Index, getTokenIndexes(tokens), "input: %q", testCases[i].In)
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"a",
			[][2]int{
				{1, 1},
			},
		},
		{
			"\n\n\n(a)",
			[][2]int{
				{4, 1}, {4, 2}, {4, 3},
			},
		},
		{
			"(a\r\nb\rc\nd)",
			[][2]int{
				{1, 1}, {1, 2},
				{2, 1},
				{3, 1},
				{4, 1}, {4, 2},
			},
		},
		{
			"(abc \"d\ne\" f)",
			[][2]int{
				{1, 1}, {1, 2}, {1, 6},
				{2, 4}, {2, 5},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].pos.Line, tokens[i].pos.Column})
		}
		return ret
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	in := "( (a1 a2 (a3 a4 \"xyz \\\"x\")))\n(b \"c\")"

	a := Tokenize(in)
	b := Tokenize(in)
	assert.Equal(t, a, b)
	assert.Equal(t, a, TokenizeBytes([]byte(in)))
}

func TestNewToken(t *testing.T) {
	testCases := []struct {
		In  string
		Out TokenType
	}{
		{"(", TokenOpenList},
		{")", TokenCloseList},
		{`"abc"`, TokenString},
		{`"`, TokenInvalid},
		{`"abc`, TokenInvalid},
		{`""`, TokenString},
		{`"a\"b"`, TokenString},
		{`"abc\"`, TokenInvalid},
		{"abc", TokenSymbol},
		{"((", TokenSymbol},
		{"", TokenInvalid},
	}

	for i := range testCases {
		tok := NewToken(7, testCases[i].In)
		assert.Equal(t, testCases[i].Out, tok.Type(), "text: %q", testCases[i].In)
		assert.True(t, tok.Is(testCases[i].Out))
		assert.Equal(t, 7, tok.Index())
		assert.Equal(t, testCases[i].In, tok.Text())
		assert.Equal(t, Position{}, tok.Pos())
	}
}

func TestTokenString(t *testing.T) {
	tokens := Tokenize(`(a "b")`)
	assert.Equal(t, `(:open_list "(" [0 1:1])`, tokens[0].String())
	assert.Equal(t, `(:symbol "a" [1 1:2])`, tokens[1].String())
	assert.Equal(t, `(:string "\"b\"" [3 1:4])`, tokens[2].String())

	assert.Equal(t, "invalid", TokenType(99).String())
}
