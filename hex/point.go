// Package hex provides axial and cube coordinate math for pointy-top
// hexagonal grids: distance, line drawing, rotation, and the ring, range,
// and spiral enumerations that the search packages build on.
package hex

// Point represents axial coordinates (q, r) for pointy-top orientation.
type Point struct {
	Q int
	R int
}

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
type Cube struct {
	X int
	Y int
	Z int
}

// Directions lists the six axial neighbor offsets, clockwise starting from
// the east neighbor. A direction index 0..5 anywhere in this module refers
// to this table.
var Directions = [6]Point{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// DiagonalDirections lists the six second-ring diagonal offsets, in the
// same rotational order as Directions.
var DiagonalDirections = [6]Point{
	{+2, -1}, {+1, -2}, {-1, -1}, {-2, +1}, {-1, +2}, {+1, +1},
}

// Add returns p+o in axial space.
func (p Point) Add(o Point) Point { return Point{p.Q + o.Q, p.R + o.R} }

// Sub returns p-o in axial space.
func (p Point) Sub(o Point) Point { return Point{p.Q - o.Q, p.R - o.R} }

// Mul scales an axial vector by k.
func (p Point) Mul(k int) Point { return Point{p.Q * k, p.R * k} }

// ToCube converts axial to cube.
func (p Point) ToCube() Cube {
	x := p.Q
	z := p.R
	return Cube{X: x, Y: -x - z, Z: z}
}

// ToPoint converts cube back to axial.
func (c Cube) ToPoint() Point { return Point{Q: c.X, R: c.Z} }

// Distance returns the hex distance between two points: the largest
// absolute cube-coordinate delta, equivalently (|dx|+|dy|+|dz|)/2.
func Distance(a, b Point) int {
	ac, bc := a.ToCube(), b.ToCube()
	dx := absInt(ac.X - bc.X)
	dy := absInt(ac.Y - bc.Y)
	dz := absInt(ac.Z - bc.Z)
	return max(dx, dy, dz)
}

// Neighbor returns the point one step from p in direction dir (0..5).
func Neighbor(dir int, p Point) Point {
	return p.Add(Directions[dir])
}

// Neighbors returns the six adjacent points in Directions order.
func (p Point) Neighbors() [6]Point {
	var out [6]Point
	for i, d := range Directions {
		out[i] = p.Add(d)
	}
	return out
}

// DiagonalNeighbors returns the six diagonal points in DiagonalDirections
// order.
func (p Point) DiagonalNeighbors() [6]Point {
	var out [6]Point
	for i, d := range DiagonalDirections {
		out[i] = p.Add(d)
	}
	return out
}

// Rotation selects a 60 degree rotation about the origin.
type Rotation int

const (
	Left Rotation = iota
	Right
)

// Rotate rotates p by 60 degrees about the origin in cube space:
// Right maps (x,y,z) to (-z,-x,-y) and Left maps it to (-y,-z,-x).
// Rotation is always about (0,0); callers wanting an arbitrary pivot
// translate to the origin first.
func Rotate(dir Rotation, p Point) Point {
	c := p.ToCube()
	if dir == Right {
		return Cube{X: -c.Z, Y: -c.X, Z: -c.Y}.ToPoint()
	}
	return Cube{X: -c.Y, Y: -c.Z, Z: -c.X}.ToPoint()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
