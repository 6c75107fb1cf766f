package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/gridgraph"
)

// randomSites returns an n×n grid where each site is open with probability p.
func randomSites(n int, p float64) [][]bool {
	r := rand.New(rand.NewSource(42))
	sites := make([][]bool, n)
	for y := range sites {
		sites[y] = make([]bool, n)
		for x := range sites[y] {
			sites[y][x] = r.Float64() < p
		}
	}
	return sites
}

// BenchmarkConnectedComponents measures BFS labeling on a 1000×1000 grid near the threshold.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomSites(1000, 0.59), gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkMinOpenToSpan measures the 0-1 BFS on a 500×500 grid below the threshold.
// Complexity: O(W×H×d)
func BenchmarkMinOpenToSpan(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomSites(500, 0.4), gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gg.MinOpenToSpan()
	}
}
