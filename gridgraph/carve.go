package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// CarvePath finds the route from one point to another that crosses the
// fewest walls. Each wall on the route costs 1, walkable cells are free.
// Returns the route (both endpoints included) and the number of walls it
// crosses; a cost of 0 means the points are already connected.
//
// Behavior:
//  1. Validate both points.
//  2. 0–1 BFS from `from`:
//     • Moving into a walkable cell → cost 0
//     • Moving into a wall          → cost 1
//  3. Stop when `to` is dequeued.
//  4. Reconstruct the route via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H) for distance and prev slices.
func (gg *GridGraph) CarvePath(from, to core.Point) (path []core.Point, cost int, err error) {
	for _, p := range []core.Point{from, to} {
		if !gg.InBounds(p.X, p.Y) {
			return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	src, dst := gg.index(from.X, from.Y), gg.index(to.X, to.Y)
	dist[src] = gg.wallCost(from.X, from.Y)
	dq := list.New()
	dq.PushFront(src)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := gg.wallCost(vx, vy)
			if nd := dist[u] + step; nd < dist[v] {
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

	if dist[dst] == inf {
		return nil, 0, ErrNoPath
	}
	for at := dst; at >= 0; at = prev[at] {
		x, y := gg.Coordinate(at)
		path = append(path, core.Point{X: x, Y: y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

// Opened returns a copy of the grid with every wall on path turned into a
// plain walkable cell (value 1).
func (gg *GridGraph) Opened(path []core.Point) *GridGraph {
	cells := make([][]int, gg.Height)
	for y := range cells {
		cells[y] = append([]int(nil), gg.CellValues[y]...)
	}
	for _, p := range path {
		if gg.InBounds(p.X, p.Y) && cells[p.Y][p.X] == Wall {
			cells[p.Y][p.X] = 1
		}
	}

	return &GridGraph{
		Width:           gg.Width,
		Height:          gg.Height,
		CellValues:      cells,
		opts:            gg.opts,
		neighborOffsets: gg.neighborOffsets,
	}
}

func (gg *GridGraph) wallCost(x, y int) int {
	if gg.CellValues[y][x] == Wall {
		return 1
	}

	return 0
}
