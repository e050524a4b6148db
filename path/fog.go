package path

import (
	"github.com/danneu/hexgrid/grid"
	"github.com/danneu/hexgrid/hex"
)

// FogOfWar returns the set of points hidden from eye. Every cell of the
// grid gets a sight line rasterized with hex.Line and walked outward from
// eye; once a walked point is an obstacle, that point and every later
// point on the same line are obstructed, whether or not the later points
// are obstacles themselves. The results of all lines are unioned.
//
// Points in front of the first obstacle on a line are never hidden by that
// line, so with no obstacle between eye and a cell the cell stays visible.
func FogOfWar[T any](eye hex.Point, obstacles hex.Set, g grid.Grid[T]) hex.Set {
	hidden := hex.Set{}
	for _, end := range g.Points() {
		blocked := false
		for _, p := range hex.Line(eye, end) {
			if blocked || obstacles.Has(p) {
				blocked = true
				hidden.Add(p)
			}
		}
	}
	return hidden
}
