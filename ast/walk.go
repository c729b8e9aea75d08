package ast

import (
	"errors"
)

// ErrSkip can be returned by a WalkFunc to skip the children of a list.
var ErrSkip = errors.New("skip children")

// WalkFunc is called for every node visited by Walk
type WalkFunc func(e Expression, depth int) error

// Walk visits e and its descendants depth-first, parents before children. It
// stops at the first error returned by fn.
func Walk(e Expression, fn WalkFunc) error {
	err := walk(e, 0, fn)
	if errors.Is(err, ErrSkip) {
		return nil
	}
	return err
}

func walk(e Expression, depth int, fn WalkFunc) error {
	if err := fn(e, depth); err != nil {
		return err
	}
	l, ok := e.(*List)
	if !ok {
		return nil
	}
	for i := range l.children {
		err := walk(l.children[i], depth+1, fn)
		if errors.Is(err, ErrSkip) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
