package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolate/internal/logging"
	"github.com/katalvlaran/percolate/percolation"
)

// Stats holds the per-trial threshold estimates of a finished run and
// their summary. It is immutable after New returns.
type Stats struct {
	n          int
	thresholds []float64
	summary    Summary
}

// New performs trials independent percolation experiments on n×n grids.
//
// Error Conditions:
//   - ErrInvalidGridSize : n <= 0.
//   - ErrInvalidTrials   : trials <= 0.
//   - ErrInvalidWorkers, ErrNilSource : from options.
//
// Steps:
//  1. Validate arguments and options.
//  2. Draw one seed per trial from the source, in trial order.
//  3. Run trials on at most Workers goroutines; trial i writes thresholds[i].
//  4. Summarize the thresholds.
//
// Complexity: O(trials·n²·α(n²)) expected time, O(n²·Workers + trials) memory.
func New(n, trials int, opts ...Option) (*Stats, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidGridSize, n)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials=%d", ErrInvalidTrials, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	src := o.Source
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	seeds := make([]uint64, trials)
	for i := range seeds {
		seeds[i] = src.Uint64()
	}

	thresholds := make([]float64, trials)
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i := 0; i < trials; i++ {
		g.Go(func() error {
			r := rand.New(rand.NewPCG(seeds[i], uint64(i)))
			steps, err := runTrial(n, r, o.Logger.With("trial", i), func(p *percolation.Percolation) {
				if o.OnTrial != nil {
					o.OnTrial(i, p)
				}
			})
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			thresholds[i] = float64(steps) / float64(n*n)
			o.Logger.Debug("trial complete", "trial", i, "steps", steps, "threshold", thresholds[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &Stats{
		n:          n,
		thresholds: thresholds,
		summary:    Summarize(thresholds),
	}
	o.Logger.Info("trials complete",
		"n", n,
		"trials", trials,
		"workers", o.Workers,
		"mean", s.summary.Mean,
		"stddev", s.summary.StdDev,
	)

	return s, nil
}

// runTrial opens random blocked sites of a fresh n×n grid until it
// percolates and returns how many sites were opened. Coordinates are drawn
// with replacement; already open picks are skipped. Each opened site is
// logged at logging.LevelTrace.
func runTrial(n int, r *rand.Rand, logger *slog.Logger, done func(*percolation.Percolation)) (int, error) {
	p, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	ctx := context.Background()
	trace := logger.Enabled(ctx, logging.LevelTrace)
	steps := 0
	for !p.Percolates() {
		row, col := r.IntN(n)+1, r.IntN(n)+1
		open, err := p.IsOpen(row, col)
		if err != nil {
			return 0, err
		}
		if open {
			continue
		}
		if err := p.Open(row, col); err != nil {
			return 0, err
		}
		steps++
		if trace {
			logger.Log(ctx, logging.LevelTrace, "site opened", "row", row, "col", col, "open", steps)
		}
	}
	done(p)

	return steps, nil
}

// GridSize returns the grid side length n.
func (s *Stats) GridSize() int {
	return s.n
}

// Trials returns the number of trials run.
func (s *Stats) Trials() int {
	return len(s.thresholds)
}

// Thresholds returns a copy of the per-trial estimates in trial order.
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)

	return out
}

// Summary returns the aggregated statistics.
func (s *Stats) Summary() Summary {
	return s.summary
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 {
	return s.summary.Mean
}

// StdDev returns the sample standard deviation of the percolation
// threshold, or NaN for a single trial.
func (s *Stats) StdDev() float64 {
	return s.summary.StdDev
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	return s.summary.ConfidenceLo
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	return s.summary.ConfidenceHi
}
