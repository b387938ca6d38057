package turing

import "errors"

var (
	// ErrDuplicateTransition is returned when two transitions share a `from` key.
	ErrDuplicateTransition = errors.New("duplicate transition")

	// ErrReadOnlyInput is returned when a transition attempts to write an input-alphabet symbol other than the one it reads.
	ErrReadOnlyInput = errors.New("input symbols are read-only")

	// ErrInvalidMove is returned when a boundary transition specifies a move its marker shape forbids, or writes.
	ErrInvalidMove = errors.New("invalid move for transition shape")

	// ErrHeadUndefined is returned when a forward step cannot read a symbol under the head.
	ErrHeadUndefined = errors.New("head undefined")
)
