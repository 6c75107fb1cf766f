package gridgraph

// ConnectedComponents finds all clusters of open sites according to gg.Conn.
// Returns a slice of clusters; each cluster is a slice of row-major cell
// indices in BFS order. Clusters are ordered by their first cell in
// row-major scan order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open[y][x] || seen[gg.index(x, y)] {
				continue
			}
			comps = append(comps, gg.collect(gg.index(x, y), seen))
		}
	}

	return comps
}

// Spans reports whether an open cluster touches both row 0 and row Height-1.
// Complexity: O(W·H·d).
func (gg *GridGraph) Spans() bool {
	seen := make([]bool, gg.Width*gg.Height)
	for x := 0; x < gg.Width; x++ {
		if !gg.Open[0][x] || seen[gg.index(x, 0)] {
			continue
		}
		for _, u := range gg.collect(gg.index(x, 0), seen) {
			if _, uy := gg.Coordinate(u); uy == gg.Height-1 {
				return true
			}
		}
	}

	return false
}

// collect runs a BFS from start over open cells, marking seen.
func (gg *GridGraph) collect(start int, seen []bool) []int {
	queue := []int{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || !gg.Open[vy][vx] {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
