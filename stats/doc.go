// Package stats runs independent Monte Carlo percolation trials and
// summarizes the estimated percolation threshold.
//
// What:
//
//   - New(n, trials) runs trials experiments on fresh n×n grids. Each
//     trial opens uniformly random blocked sites (rejection sampling with
//     replacement) until the grid percolates and records open/n².
//   - Mean, StdDev, ConfidenceLo and ConfidenceHi summarize the recorded
//     thresholds; StdDev uses the sample (n-1) denominator.
//   - Summarize is the same aggregation over any []float64.
//
// Randomness:
//
//   - Before any trial runs, one 64-bit seed per trial is drawn from the
//     configured source (WithSeed or WithSource). Trial i samples from its
//     own PCG stream, so a fixed seed yields identical thresholds for any
//     worker count.
//
// Concurrency:
//
//   - WithWorkers(k) runs up to k trials at once through an errgroup.
//     Trials share no mutable state; trial i writes only slot i.
//
// Logging:
//
//   - Debug: one record per finished trial. Info: one summary record.
//     logging.LevelTrace: one record per opened site.
//
// Degenerate input:
//
//   - With a single trial StdDev, ConfidenceLo and ConfidenceHi are NaN.
//
// Errors:
//
//   - ErrInvalidGridSize: n <= 0.
//   - ErrInvalidTrials: trials <= 0.
//   - ErrInvalidWorkers: WithWorkers(k) with k < 1.
//   - ErrNilSource: WithSource(nil).
package stats
