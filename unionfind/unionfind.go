package unionfind

import "fmt"

// UnionFind is a weighted quick-union forest with path halving.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// New returns a UnionFind of n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n < 0.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the set containing p.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same set.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// Union merges the sets containing p and q. It reports whether a merge
// happened; false means p and q were already connected.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return false, nil
	}
	// Smaller tree goes under the larger root; ties attach q's root under p's.
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return true, nil
}

// SizeOf returns the number of elements in the set containing p.
func (uf *UnionFind) SizeOf(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.size[uf.root(p)], nil
}

// root walks to the root of p, pointing every visited node at its grandparent.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, p, len(uf.parent))
	}

	return nil
}
