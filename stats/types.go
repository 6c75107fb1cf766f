package stats

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/percolate/percolation"
)

// Confidence95 is the two-sided z-score for a 95% normal confidence interval.
const Confidence95 = 1.96

// TrialHook observes a trial's grid right after it first percolates.
// With more than one worker it is called from several goroutines at once.
type TrialHook func(trial int, p *percolation.Percolation)

// Options configures a Stats run. Use DefaultOptions() and Option helpers.
//
// Fields:
//
//	Source  *rand.Rand   — seeds every trial's stream; nil means runtime-seeded.
//	Workers int          — maximum trials in flight (>= 1).
//	Logger  *slog.Logger — per-trial debug records and a final info record.
//	OnTrial TrialHook    — optional observer of each percolated grid.
type Options struct {
	Source  *rand.Rand
	Workers int
	Logger  *slog.Logger
	OnTrial TrialHook

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options for a sequential run with a runtime-seeded
// source and a logger that discards output.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed derives the trial seeds from a PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Source = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithSource derives the trial seeds from r. r is read only from the
// goroutine calling New.
func WithSource(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = ErrNilSource
			return
		}
		o.Source = r
	}
}

// WithWorkers bounds the number of trials run concurrently.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = ErrInvalidWorkers
			return
		}
		o.Workers = k
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTrialHook registers fn to observe each trial's grid once it percolates.
func WithTrialHook(fn TrialHook) Option {
	return func(o *Options) {
		o.OnTrial = fn
	}
}
