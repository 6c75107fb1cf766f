// Package unionfind provides a weighted quick-union disjoint-set structure
// over the dense index space [0, n).
//
// What:
//
//   - UnionFind tracks a partition of n elements into disjoint sets.
//   - Union merges two sets, attaching the smaller tree under the larger root.
//   - Find walks to the set root, halving the path as it goes.
//   - Connected reports whether two elements share a root.
//
// Why:
//
//   - Incremental connectivity: edges only ever get added, never removed.
//   - Percolation, Kruskal MST, image labeling, network reachability.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - Find:      O(α(n)) amortized.
//   - Union:     O(α(n)) amortized.
//   - Connected: O(α(n)) amortized.
//
// Errors:
//
//   - ErrInvalidSize: n is negative.
//   - ErrIndexOutOfRange: an element lies outside [0, n).
//
// A UnionFind is not safe for concurrent use.
package unionfind
