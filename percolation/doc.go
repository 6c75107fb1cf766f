// Package percolation models site percolation on an n×n grid.
//
// What:
//
//   - Percolation owns the open/blocked state of n² sites addressed by
//     1-indexed (row, col) and a unionfind.UnionFind over n²+2 elements.
//   - Two virtual sites sit after the real ones: virtual-top (index n²)
//     is joined to every open site in row 1, virtual-bottom (index n²+1)
//     to every open site in row n.
//   - Percolates is a single connectivity query between the two virtual
//     sites instead of a scan over the boundary rows.
//
// Why:
//
//   - Monte Carlo estimation of the percolation threshold (see package stats).
//   - Porous media, conductivity, fire spread and other "does it span" models.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              O(α(n²)) amortized, at most four unions.
//   - IsOpen:            O(1).
//   - IsFull:            O(α(n²)) amortized.
//   - Percolates:        O(α(n²)) amortized.
//   - NumberOfOpenSites: O(1).
//
// Errors:
//
//   - ErrInvalidSize: n <= 0.
//   - ErrOutOfRange: row or col outside [1, n].
//
// IsFull reports connection to the top boundary only; it does not check
// that the site itself is open. A blocked site is never connected to
// anything, so IsFull on a blocked site is always false in practice.
//
// A Percolation is not safe for concurrent use. Each Monte Carlo trial
// should own its own instance.
package percolation
