package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/percolate/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinOpenToSpan_AlreadySpanning costs nothing.
func TestMinOpenToSpan_AlreadySpanning(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(grid("#.#", "#.#", "#.#"), gridgraph.Conn4)
	require.NoError(t, err)

	path, cost := gg.MinOpenToSpan()
	assert.Equal(t, 0, cost)
	assert.Equal(t, []int{1, 4, 7}, path)
}

// TestMinOpenToSpan_OneGap needs exactly the single blocked middle site.
func TestMinOpenToSpan_OneGap(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(grid(
		"#.#",
		"###",
		"#.#",
	), gridgraph.Conn4)
	require.NoError(t, err)

	path, cost := gg.MinOpenToSpan()
	assert.Equal(t, 1, cost)
	require.Len(t, path, 3)
	assert.Equal(t, 1, path[0])
	assert.Equal(t, 7, path[2])
}

// TestMinOpenToSpan_AllBlocked needs one site per row.
func TestMinOpenToSpan_AllBlocked(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(grid("####", "####", "####", "####"), gridgraph.Conn4)
	require.NoError(t, err)

	path, cost := gg.MinOpenToSpan()
	assert.Equal(t, 4, cost)
	assert.Len(t, path, 4)
}

// TestMinOpenToSpan_PathIsContiguous checks every step is a Conn4 neighbour
// and that the path cost equals the blocked sites it crosses.
func TestMinOpenToSpan_PathIsContiguous(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(grid(
		"..###",
		"#.###",
		"#...#",
		"####.",
		"#####",
	), gridgraph.Conn4)
	require.NoError(t, err)

	path, cost := gg.MinOpenToSpan()
	require.NotEmpty(t, path)
	_, y0 := gg.Coordinate(path[0])
	assert.Equal(t, 0, y0)
	_, yn := gg.Coordinate(path[len(path)-1])
	assert.Equal(t, gg.Height-1, yn)

	blocked := 0
	for i, idx := range path {
		x, y := gg.Coordinate(idx)
		if !gg.Open[y][x] {
			blocked++
		}
		if i == 0 {
			continue
		}
		px, py := gg.Coordinate(path[i-1])
		dx, dy := x-px, y-py
		assert.Equal(t, 1, dx*dx+dy*dy, "step %d is not orthogonal", i)
	}
	assert.Equal(t, blocked, cost)
	assert.Equal(t, 2, cost)
}
