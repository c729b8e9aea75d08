package lexer_test

import (
	"fmt"

	"github.com/xiam/sexpression/lexer"
)

func ExampleTokenize() {
	input := "(fn_a \"Hello world!\"\n  (fn_b x))"

	tokens := lexer.Tokenize(input)
	for i, tok := range tokens {
		pos := tok.Pos()
		fmt.Printf("token[%d] (type: %v, offset: %d, line: %d, col: %d) -> %q\n", i, tok.Type(), tok.Index(), pos.Line, pos.Column, tok.Text())
	}

	// Output:
	// token[0] (type: open_list, offset: 0, line: 1, col: 1) -> "("
	// token[1] (type: symbol, offset: 1, line: 1, col: 2) -> "fn_a"
	// token[2] (type: string, offset: 6, line: 1, col: 7) -> "\"Hello world!\""
	// token[3] (type: open_list, offset: 23, line: 2, col: 3) -> "("
	// token[4] (type: symbol, offset: 24, line: 2, col: 4) -> "fn_b"
	// token[5] (type: symbol, offset: 29, line: 2, col: 9) -> "x"
	// token[6] (type: close_list, offset: 30, line: 2, col: 10) -> ")"
	// token[7] (type: close_list, offset: 31, line: 2, col: 11) -> ")"
}
