// Package layout converts between axial hex coordinates and screen pixels
// for a pointy-top layout. It exists for rendering callers; none of the
// core packages depend on it.
package layout

import (
	"math"

	"github.com/danneu/hexgrid/hex"
)

// Layout fixes a hex size (center-to-corner distance in pixels) and the
// pixel position of the grid origin.
type Layout struct {
	Size    float64
	OriginX float64
	OriginY float64
}

// ToPixel projects p to the pixel center of its hex.
func (l Layout) ToPixel(p hex.Point) (x, y float64) {
	x = l.OriginX + l.Size*math.Sqrt(3)*(float64(p.Q)+float64(p.R)/2)
	y = l.OriginY + l.Size*1.5*float64(p.R)
	return
}

// FromPixel returns the hex whose cell contains the pixel (x, y), via
// fractional axial coordinates and cube rounding.
func (l Layout) FromPixel(x, y float64) hex.Point {
	x = (x - l.OriginX) / l.Size
	y = (y - l.OriginY) / l.Size
	q := math.Sqrt(3)/3*x - y/3
	r := 2.0 / 3.0 * y
	return hex.RoundCube(q, -q-r, r).ToPoint()
}

// Corners returns the six pixel corners of p's hex in clockwise order,
// starting from the corner 30 degrees above the east axis.
func (l Layout) Corners(p hex.Point) [6][2]float64 {
	cx, cy := l.ToPixel(p)
	var out [6][2]float64
	for i := range out {
		angle := math.Pi / 180 * (60*float64(i) - 30)
		out[i] = [2]float64{cx + l.Size*math.Cos(angle), cy + l.Size*math.Sin(angle)}
	}
	return out
}
