package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/gridgraph"
	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/logging"
	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/stats"
)

// report is the --json output shape.
type report struct {
	N            int      `json:"n"`
	Trials       int      `json:"trials"`
	Seed         uint64   `json:"seed,omitempty"`
	Mean         float64  `json:"mean"`
	StdDev       *float64 `json:"stddev"`
	ConfidenceLo *float64 `json:"confidence_lo"`
	ConfidenceHi *float64 `json:"confidence_hi"`
	MeanClusters *float64 `json:"mean_clusters,omitempty"`
	Grid         string   `json:"grid,omitempty"`
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percolation <n> <trials>",
		Short: "Estimate the percolation threshold by Monte Carlo simulation",
		Long: `percolation runs <trials> independent experiments on an n-by-n grid.
Each experiment opens uniformly random sites until an open path joins the
top row to the bottom row, and records the fraction of sites opened.

It prints the mean threshold, its sample standard deviation, and the 95%
confidence interval.

Examples:
  percolation 200 100
  percolation 200 100 --seed 42 --workers 8
  percolation 20 10 --seed 1 --grid --clusters
  percolation --config run.yaml --json`,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			clusters, _ := cmd.Flags().GetBool("clusters")
			showGrid, _ := cmd.Flags().GetBool("grid")

			logger := logging.NewLogger(cfg.LogLevel, stderr)
			opts := []stats.Option{
				stats.WithWorkers(cfg.Workers),
				stats.WithLogger(logger),
			}
			if cfg.Seed != 0 {
				opts = append(opts, stats.WithSeed(cfg.Seed))
			}

			// Each trial writes only its own slot.
			var counts []float64
			if clusters {
				counts = make([]float64, cfg.Trials)
			}
			var lastGrid string
			if clusters || showGrid {
				last := cfg.Trials - 1
				opts = append(opts, stats.WithTrialHook(func(trial int, p *percolation.Percolation) {
					if showGrid && trial == last {
						lastGrid = p.String()
					}
					if !clusters {
						return
					}
					gg, err := gridgraph.NewGridGraph(p.Sites(), gridgraph.Conn4)
					if err != nil {
						return
					}
					counts[trial] = float64(len(gg.ConnectedComponents()))
				}))
			}

			s, err := stats.New(cfg.N, cfg.Trials, opts...)
			if err != nil {
				return err
			}

			var meanClusters *float64
			if clusters {
				m := stats.Summarize(counts).Mean
				meanClusters = &m
			}

			if jsonOut {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report{
					N:            cfg.N,
					Trials:       cfg.Trials,
					Seed:         cfg.Seed,
					Mean:         s.Mean(),
					StdDev:       finite(s.StdDev()),
					ConfidenceLo: finite(s.ConfidenceLo()),
					ConfidenceHi: finite(s.ConfidenceHi()),
					MeanClusters: meanClusters,
					Grid:         lastGrid,
				})
			}

			fmt.Fprintf(stdout, "mean                    = %v\n", s.Mean())
			fmt.Fprintf(stdout, "stddev                  = %v\n", s.StdDev())
			fmt.Fprintf(stdout, "95%% confidence interval = [%v, %v]\n", s.ConfidenceLo(), s.ConfidenceHi())
			if meanClusters != nil {
				fmt.Fprintf(stdout, "mean open clusters      = %v\n", *meanClusters)
			}
			if showGrid {
				fmt.Fprintf(stdout, "last trial grid (trial %d):\n%s", cfg.Trials-1, lastGrid)
			}

			return nil
		},
	}

	cmd.Flags().String("config", "", "YAML file with n, trials, seed, workers, log_level")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 seeds from the runtime)")
	cmd.Flags().Int("workers", 1, "Number of trials to run concurrently")
	cmd.Flags().String("log-level", "warn", "Log level: error, warn, info, debug, trace")
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("clusters", false, "Also report the mean number of open clusters when each trial percolates")
	cmd.Flags().Bool("grid", false, "Also dump the last trial's grid ('#' blocked, '.' open, '~' full)")

	return cmd
}

// validateArgs accepts exactly <n> <trials>, or no arguments when --config is set.
func validateArgs(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	if len(args) == 0 && cfgPath != "" {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("expected 2 arguments <n> <trials>, got %d", len(args))
	}

	return nil
}

// resolveConfig layers defaults, the optional config file, positional
// arguments and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if len(args) == 2 {
		n, err := parsePositive("n", args[0])
		if err != nil {
			return cfg, err
		}
		trials, err := parsePositive("trials", args[1])
		if err != nil {
			return cfg, err
		}
		cfg.N, cfg.Trials = n, trials
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return cfg, cfg.Validate()
}

func parsePositive(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %d", name, v)
	}

	return v, nil
}

// finite maps NaN and ±Inf to nil so the JSON encoder emits null.
func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}

	return &x
}
