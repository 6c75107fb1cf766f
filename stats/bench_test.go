package stats_test

import (
	"testing"

	"github.com/katalvlaran/percolate/stats"
)

// BenchmarkNew_Sequential runs 20 trials on a 100×100 grid on one worker.
func BenchmarkNew_Sequential(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = stats.New(100, 20, stats.WithSeed(42))
	}
}

// BenchmarkNew_Parallel runs the same workload on four workers.
func BenchmarkNew_Parallel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = stats.New(100, 20, stats.WithSeed(42), stats.WithWorkers(4))
	}
}
