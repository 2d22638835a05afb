package blist

import "errors"

var (
	// ErrOutOfRange signals that a positional index is not within the
	// current bounds of the list.
	ErrOutOfRange = errors.New("blist: index out of range")
	// ErrInvalidConfig signals an invalid list configuration. Validate also
	// wraps it when it finds a broken structural invariant.
	ErrInvalidConfig = errors.New("blist: invalid configuration")
	// ErrInvalidIterator names an iterator used after its containing list
	// was mutated, or advanced past its valid range. No operation of this
	// package detects such misuse or returns this error.
	ErrInvalidIterator = errors.New("blist: invalid iterator")
)
