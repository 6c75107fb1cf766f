package gridgraph

import (
	"container/list"
)

// MinOpenToSpan finds the fewest blocked sites that must be opened so that
// an open path joins row 0 to row Height-1. Opening a blocked site costs 1,
// stepping onto an open site costs 0.
// Returns the path as row-major cell indices (top row first) and its cost.
// A grid that already spans returns cost 0.
//
// Behavior:
//  1. Seed a 0-1 BFS with every top-row cell at cost 0 (open) or 1 (blocked).
//  2. Moving into an open cell    → cost 0, pushed to the front.
//     Moving into a blocked cell  → cost 1, pushed to the back.
//  3. Stop at the first bottom-row cell popped.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H) for distance and prev pointers.
func (gg *GridGraph) MinOpenToSpan() (path []int, cost int) {
	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for x := 0; x < gg.Width; x++ {
		i := gg.index(x, 0)
		if gg.Open[0][x] {
			dist[i] = 0
			dq.PushFront(i)
		} else {
			dist[i] = 1
			dq.PushBack(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		ux, uy := gg.Coordinate(u)
		if uy == gg.Height-1 {
			target = u
			break
		}
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.Open[vy][vx] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every cell is reachable, so target is always set on a non-empty grid.
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}

	return path, dist[target]
}
