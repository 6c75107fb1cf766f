package percolation

import "errors"

var (
	// ErrInvalidSize indicates a grid side length that is not positive.
	ErrInvalidSize = errors.New("percolation: grid size must be positive")
	// ErrOutOfRange indicates a (row, col) pair outside [1, n]×[1, n].
	ErrOutOfRange = errors.New("percolation: row or col out of range")
)
