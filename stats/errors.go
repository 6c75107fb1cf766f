package stats

import "errors"

var (
	// ErrInvalidGridSize indicates a grid side length that is not positive.
	ErrInvalidGridSize = errors.New("stats: grid size must be positive")
	// ErrInvalidTrials indicates a trial count that is not positive.
	ErrInvalidTrials = errors.New("stats: trial count must be positive")
	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("stats: worker count must be at least 1")
	// ErrNilSource indicates WithSource was given a nil generator.
	ErrNilSource = errors.New("stats: random source must not be nil")
)
