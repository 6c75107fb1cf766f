// Package gridgraph treats a 2D grid of open/blocked sites as a graph,
// enabling cluster analysis and minimal-cost "opening" expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool grid (true = open site).
//   - Identifies connected clusters of open sites under Conn4 or Conn8.
//   - Spans reports whether some cluster touches both the first and last row.
//   - MinOpenToSpan computes the fewest blocked sites that must be opened
//     for the grid to span top to bottom (0-1 BFS).
//
// Why:
//
//   - Independent BFS cross-check of the union-find percolation model.
//   - Cluster statistics at the moment a Monte Carlo trial percolates.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Spans:               O(W×H×d), Memory: O(W×H).
//   - MinOpenToSpan:       O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
