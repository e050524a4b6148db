package path

import (
	"github.com/danneu/hexgrid/grid"
	"github.com/danneu/hexgrid/hex"
	"github.com/danneu/hexgrid/pairing"
)

// CostFunc prices a move between two adjacent points. Costs must be
// non-negative. There is no structural notion of an obstacle at this
// layer: impassable terrain is expressed as a very large cost.
type CostFunc func(from, to hex.Point) float64

// Dijkstra returns a cheapest path from start to end under cost, both
// endpoints included, using a pairing heap keyed by accumulated cost as
// the frontier. Unlike BFS there is no obstacle guard, not even for start
// itself; blocking is encoded entirely in the cost function.
//
// Like BFS, an end that cannot be reached yields the degenerate
// single-element path [start].
func Dijkstra[T any](start, end hex.Point, cost CostFunc, g grid.Grid[T]) []hex.Point {
	came := map[hex.Point]hex.Point{}
	costSoFar := map[hex.Point]float64{start: 0}
	frontier := pairing.Singleton(0.0, start)
	for !frontier.IsEmpty() {
		sofar, cur, _ := frontier.FindMin()
		frontier = frontier.DeleteMin()
		if cur == end {
			break
		}
		for _, n := range cur.Neighbors() {
			if !g.Contains(n) {
				continue
			}
			next := sofar + cost(cur, n)
			old, seen := costSoFar[n]
			if !seen || next < old {
				costSoFar[n] = next
				came[n] = cur
				frontier = frontier.Insert(next, n)
			}
		}
	}
	return rebuild(came, start, end)
}
