package percolation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/percolate/unionfind"
)

// Percolation is an n×n grid of sites, each open or blocked, together
// with the connectivity of its open sites.
type Percolation struct {
	n      int
	open   []bool // len n*n, row-major, 0-indexed
	opened int
	uf     *unionfind.UnionFind
	top    int // virtual-top index, n*n
	bottom int // virtual-bottom index, n*n+1
}

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Percolation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidSize, n)
	}
	sites := n * n
	uf, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}

	return &Percolation{
		n:      n,
		open:   make([]bool, sites),
		uf:     uf,
		top:    sites,
		bottom: sites + 1,
	}, nil
}

// Size returns the grid side length n.
func (p *Percolation) Size() int {
	return p.n
}

// Open opens site (row, col) and connects it to its open orthogonal
// neighbours. A site in row 1 is joined to virtual-top, a site in row n
// to virtual-bottom. Opening an already open site is a no-op.
// Returns ErrOutOfRange for coordinates outside [1, n].
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	cell := p.index(row, col)
	if p.open[cell] {
		return nil
	}
	p.open[cell] = true
	p.opened++

	if row == 1 {
		p.union(cell, p.top)
	} else if p.open[p.index(row-1, col)] {
		p.union(cell, p.index(row-1, col))
	}

	if row == p.n {
		p.union(cell, p.bottom)
	} else if p.open[p.index(row+1, col)] {
		p.union(cell, p.index(row+1, col))
	}

	if col > 1 && p.open[p.index(row, col-1)] {
		p.union(cell, p.index(row, col-1))
	}
	if col < p.n && p.open[p.index(row, col+1)] {
		p.union(cell, p.index(row, col+1))
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrOutOfRange for coordinates outside [1, n].
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.open[p.index(row, col)], nil
}

// IsFull reports whether site (row, col) is connected to virtual-top
// through open sites. It does not itself test that the site is open.
// Returns ErrOutOfRange for coordinates outside [1, n].
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.connected(p.index(row, col), p.top), nil
}

// Percolates reports whether an open path joins row 1 to row n.
func (p *Percolation) Percolates() bool {
	return p.connected(p.top, p.bottom)
}

// NumberOfOpenSites returns the number of open real sites.
// The virtual sites are never counted.
func (p *Percolation) NumberOfOpenSites() int {
	return p.opened
}

// Sites returns a snapshot of the open flags as Sites()[row-1][col-1].
// The result is a deep copy.
// Complexity: O(n²).
func (p *Percolation) Sites() [][]bool {
	out := make([][]bool, p.n)
	for r := 0; r < p.n; r++ {
		out[r] = make([]bool, p.n)
		copy(out[r], p.open[r*p.n:(r+1)*p.n])
	}

	return out
}

// String renders the grid one row per line: '#' blocked, '.' open,
// '~' open and full.
func (p *Percolation) String() string {
	var sb strings.Builder
	sb.Grow(p.n * (p.n + 1))
	for r := 0; r < p.n; r++ {
		for c := 0; c < p.n; c++ {
			i := r*p.n + c
			switch {
			case !p.open[i]:
				sb.WriteByte('#')
			case p.connected(i, p.top):
				sb.WriteByte('~')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps 1-indexed (row, col) to the row-major site index.
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + (col - 1)
}

func (p *Percolation) validate(row, col int) error {
	if row < 1 || row > p.n || col < 1 || col > p.n {
		return fmt.Errorf("%w: (%d,%d) with n=%d", ErrOutOfRange, row, col, p.n)
	}

	return nil
}

// union and connected only ever see indices in [0, n²+2), so the
// unionfind range errors cannot occur.
func (p *Percolation) union(a, b int) {
	_, _ = p.uf.Union(a, b)
}

func (p *Percolation) connected(a, b int) bool {
	ok, _ := p.uf.Connected(a, b)
	return ok
}
