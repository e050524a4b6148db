package path

import (
	"github.com/danneu/hexgrid/grid"
	"github.com/danneu/hexgrid/hex"
)

// BFS returns a shortest unweighted path from start to end as a sequence
// of adjacent points, both endpoints included. Obstacle and out-of-grid
// points are never entered. A blocked start returns an empty path.
//
// When end cannot be reached the result is the degenerate single-element
// path [start]; callers must treat a one-element result to a distinct end
// as "no path".
func BFS[T any](start, end hex.Point, obstacles hex.Set, g grid.Grid[T]) []hex.Point {
	if obstacles.Has(start) {
		return nil
	}
	return rebuild(pathGraph(start, end, obstacles, g), start, end)
}

// pathGraph runs the breadth-first expansion and returns the came-from
// map rooted at start. Expansion short-circuits once end is dequeued, so
// branches beyond that point are left incomplete; only the end-to-start
// chain is ever read back.
func pathGraph[T any](start, end hex.Point, obstacles hex.Set, g grid.Grid[T]) map[hex.Point]hex.Point {
	came := map[hex.Point]hex.Point{}
	seen := hex.NewSet(start)
	queue := []hex.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			break
		}
		for _, n := range cur.Neighbors() {
			if obstacles.Has(n) || !g.Contains(n) || seen.Has(n) {
				continue
			}
			seen.Add(n)
			came[n] = cur
			queue = append(queue, n)
		}
	}
	return came
}

// rebuild walks the came-from chain from end back to start and reverses
// it. An end that was never recorded rebuilds to [start].
func rebuild(came map[hex.Point]hex.Point, start, end hex.Point) []hex.Point {
	out := []hex.Point{end}
	for cur := end; cur != start; {
		prev, ok := came[cur]
		if !ok {
			return []hex.Point{start}
		}
		out = append(out, prev)
		cur = prev
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
