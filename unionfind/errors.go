package unionfind

import "errors"

var (
	// ErrInvalidSize indicates a negative element count was requested.
	ErrInvalidSize = errors.New("unionfind: size must be non-negative")
	// ErrIndexOutOfRange indicates an element outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: element index out of range")
)
