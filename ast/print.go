package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(e Expression) {
	Fprint(os.Stdout, e)
}

// Fprint writes a human-readable, indented representation of a node to w
func Fprint(w io.Writer, e Expression) error {
	return printLevel(w, e, 0)
}

func printLevel(w io.Writer, e Expression, level int) error {
	indent := strings.Repeat("    ", level)
	if e == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}

	switch n := e.(type) {
	case *List:
		if _, err := fmt.Fprintf(w, "%s(%s)[%d]\n", indent, n.Type(), n.Len()); err != nil {
			return err
		}
		for i := range n.children {
			if err := printLevel(w, n.children[i], level+1); err != nil {
				return err
			}
		}
		return nil

	case *Atom:
		_, err := fmt.Fprintf(w, "%s(%s): %s (%v)\n", indent, n.Type(), n.Text(), n.Token())
		return err

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its description
func Encode(e Expression) []byte {
	if e == nil {
		return []byte(":nil")
	}
	return []byte(e.String())
}
