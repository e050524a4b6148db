// Package grid provides a bounded hexagonal map from hex.Point to an
// arbitrary payload. The API is persistent: every mutating operation
// returns a new Grid value and leaves the receiver untouched, so a Grid
// may be shared freely between readers.
package grid

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/danneu/hexgrid/hex"
)

// Cell pairs a point with its stored value.
type Cell[T any] struct {
	Point hex.Point
	Value T
}

// Grid is a hexagonal map of radius N centered on the origin. A point
// belongs to the grid iff every cube coordinate lies in [-N, N]. The cell
// payload is opaque to the grid and to every algorithm built on it.
type Grid[T any] struct {
	radius int
	cells  map[hex.Point]T
}

// Empty returns a grid of the given radius with every in-bounds point set
// to def.
func Empty[T any](radius int, def T) Grid[T] {
	cells := make(map[hex.Point]T, 1+3*radius*(radius+1))
	for _, p := range hex.Range(radius, hex.Point{}) {
		cells[p] = def
	}
	return Grid[T]{radius: radius, cells: cells}
}

// FromList builds a grid like Empty, then overwrites it with the supplied
// cells. Out-of-bounds cells are silently dropped.
func FromList[T any](radius int, def T, cells []Cell[T]) Grid[T] {
	g := Empty(radius, def)
	for _, c := range cells {
		if g.Contains(c.Point) {
			g.cells[c.Point] = c.Value
		}
	}
	return g
}

// Radius returns the grid's bounding radius.
func (g Grid[T]) Radius() int { return g.radius }

// Len returns the number of stored cells.
func (g Grid[T]) Len() int { return len(g.cells) }

// Contains reports whether p is inside the hexagonal bound. Containment is
// a property of the radius alone: a removed cell's point is still inside.
func (g Grid[T]) Contains(p hex.Point) bool {
	c := p.ToCube()
	return absInt(c.X) <= g.radius && absInt(c.Y) <= g.radius && absInt(c.Z) <= g.radius
}

// ValueAt returns the value stored at p, if any.
func (g Grid[T]) ValueAt(p hex.Point) (T, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// Insert returns a grid with v stored at p. Out-of-bounds points are a
// no-op: the receiver is returned unchanged, not an error.
func (g Grid[T]) Insert(p hex.Point, v T) Grid[T] {
	if !g.Contains(p) {
		return g
	}
	out := g.clone()
	out.cells[p] = v
	return out
}

// Update returns a grid with f applied to the value at p. It is a no-op
// when p is out of bounds or holds no value.
func (g Grid[T]) Update(p hex.Point, f func(T) T) Grid[T] {
	// out-of-bounds points are never stored, so one lookup covers both
	// no-op cases: outside the bound and holes
	v, ok := g.cells[p]
	if !ok {
		return g
	}
	out := g.clone()
	out.cells[p] = f(v)
	return out
}

// Remove returns a grid without a value at p. Removing an in-bounds point
// is permitted and leaves a hole.
func (g Grid[T]) Remove(p hex.Point) Grid[T] {
	if _, ok := g.cells[p]; !ok {
		return g
	}
	out := g.clone()
	delete(out.cells, p)
	return out
}

// Filter returns a grid keeping only the cells pred accepts.
func (g Grid[T]) Filter(pred func(hex.Point, T) bool) Grid[T] {
	cells := make(map[hex.Point]T, len(g.cells))
	for p, v := range g.cells {
		if pred(p, v) {
			cells[p] = v
		}
	}
	return Grid[T]{radius: g.radius, cells: cells}
}

// Points returns the stored points in row order (ascending r, then q).
func (g Grid[T]) Points() []hex.Point {
	ps := maps.Keys(g.cells)
	slices.SortFunc(ps, comparePoints)
	return ps
}

// Cells returns the stored cells in row order.
func (g Grid[T]) Cells() []Cell[T] {
	out := make([]Cell[T], 0, len(g.cells))
	for _, p := range g.Points() {
		out = append(out, Cell[T]{Point: p, Value: g.cells[p]})
	}
	return out
}

// Outermost returns the cells on the hexagon's outer ring: those where some
// cube coordinate has magnitude equal to the radius.
func (g Grid[T]) Outermost() []Cell[T] {
	out := []Cell[T]{}
	for _, c := range g.Cells() {
		cc := c.Point.ToCube()
		if absInt(cc.X) == g.radius || absInt(cc.Y) == g.radius || absInt(cc.Z) == g.radius {
			out = append(out, c)
		}
	}
	return out
}

// Map returns a grid of the same radius with f applied to every cell.
// It is a package function because Go methods cannot introduce the second
// type parameter.
func Map[T, U any](g Grid[T], f func(hex.Point, T) U) Grid[U] {
	cells := make(map[hex.Point]U, len(g.cells))
	for p, v := range g.cells {
		cells[p] = f(p, v)
	}
	return Grid[U]{radius: g.radius, cells: cells}
}

// Fold reduces the grid's cells in row order.
func Fold[T, A any](g Grid[T], init A, step func(A, hex.Point, T) A) A {
	acc := init
	for _, c := range g.Cells() {
		acc = step(acc, c.Point, c.Value)
	}
	return acc
}

// EqualFunc reports whether two grids have the same radius and identical
// cells, comparing values with eq.
func EqualFunc[T any](a, b Grid[T], eq func(T, T) bool) bool {
	if a.radius != b.radius || len(a.cells) != len(b.cells) {
		return false
	}
	for p, v := range a.cells {
		w, ok := b.cells[p]
		if !ok || !eq(v, w) {
			return false
		}
	}
	return true
}

// Equal is EqualFunc with ==.
func Equal[T comparable](a, b Grid[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func (g Grid[T]) clone() Grid[T] {
	cells := make(map[hex.Point]T, len(g.cells))
	for p, v := range g.cells {
		cells[p] = v
	}
	return Grid[T]{radius: g.radius, cells: cells}
}

func comparePoints(a, b hex.Point) int {
	if a.R != b.R {
		return a.R - b.R
	}
	return a.Q - b.Q
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
