// Command sexpr parses s-expressions from files or standard input and prints
// the description of every top-level expression.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xiam/sexpression/ast"
	"github.com/xiam/sexpression/lexer"
	"github.com/xiam/sexpression/parser"
)

type config struct {
	tokens   bool
	tree     bool
	maxDepth int
	logFile  string
}

type input struct {
	name string
	r    io.Reader
}

// defaultMaxDepth keeps deeply nested input from exhausting the stack.
const defaultMaxDepth = 10000

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (status int) {
	var cfg config
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	fs := flag.NewFlagSet("sexpr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: sexpr [flags] [file ...]\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.tokens, "tokens", false, "print tokens instead of expressions")
	fs.BoolVar(&cfg.tree, "tree", false, "print expressions as an indented tree")
	fs.IntVar(&cfg.maxDepth, "max-depth", defaultMaxDepth, "maximum nesting depth, 0 means no limit")
	fs.StringVar(&cfg.logFile, "log-file", "", "also write JSON logs to this file")
	fs.BoolFunc("log-debug", "set log level to debug", func(string) error {
		level.Set(slog.LevelDebug)
		return nil
	})
	fs.BoolFunc("log-warn", "set log level to warn", func(string) error {
		level.Set(slog.LevelWarn)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, closeLog, err := newLogger(stderr, cfg.logFile, level)
	if err != nil {
		fmt.Fprintf(stderr, "sexpr: %v\n", err)
		return 1
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(stderr, "sexpr: close log file: %v\n", err)
			status = 1
		}
	}()

	inputs := []input{}
	if fs.NArg() == 0 {
		inputs = append(inputs, input{name: "<stdin>", r: stdin})
	}
	for _, name := range fs.Args() {
		f, err := os.Open(name)
		if err != nil {
			logger.Error("open input", "input", name, "error", err)
			return 1
		}
		defer f.Close()
		inputs = append(inputs, input{name: name, r: f})
	}

	p := parser.New(parser.Options{MaxDepth: cfg.maxDepth})

	for _, in := range inputs {
		if err := process(stdout, in, p, cfg, logger); err != nil {
			logError(logger, in.name, err)
			status = 1
		}
	}
	return status
}

func process(w io.Writer, in input, p *parser.Parser, cfg config, logger *slog.Logger) error {
	src, err := io.ReadAll(in.r)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	tokens := lexer.TokenizeBytes(src)
	logger.Debug("tokenized", "input", in.name, "tokens", len(tokens))

	if cfg.tokens {
		for _, tok := range tokens {
			if _, err := fmt.Fprintln(w, tok); err != nil {
				return err
			}
		}
		return nil
	}

	exprs, err := p.ParseAll(tokens)
	if err != nil {
		return err
	}
	logger.Debug("parsed", "input", in.name, "expressions", len(exprs))

	for _, e := range exprs {
		if cfg.tree {
			err = ast.Fprint(w, e)
		} else {
			_, err = fmt.Fprintln(w, e)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func logError(logger *slog.Logger, name string, err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		pos := syntaxErr.Token.Pos()
		logger.Error("syntax error",
			"input", name,
			"error", syntaxErr.Err,
			"token", syntaxErr.Token.Text(),
			"offset", syntaxErr.Token.Index(),
			"line", pos.Line,
			"column", pos.Column,
		)
		return
	}
	logger.Error("parse failed", "input", name, "error", err)
}
