package svec

import "errors"

var (
	// ErrCapacityExceeded signals that an operation would grow an SVec
	// beyond its fixed capacity.
	ErrCapacityExceeded = errors.New("svec: capacity exceeded")
	// ErrOutOfRange signals that a checked positional access index is not
	// less than the current size.
	ErrOutOfRange = errors.New("svec: index out of range")
	// ErrInvalidCapacity signals a requested capacity outside [1, MaxCapacity].
	ErrInvalidCapacity = errors.New("svec: invalid capacity")
)
