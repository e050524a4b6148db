package hex

import "math"

// Line returns the straight hex line from a to b, endpoints included,
// rasterized by sampling Distance(a,b)+1 evenly spaced fractional cube
// coordinates and rounding each to its nearest hex. Line(a, a) is empty.
func Line(a, b Point) []Point {
	n := Distance(a, b)
	if n == 0 {
		return nil
	}
	ac, bc := a.ToCube(), b.ToCube()
	out := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := lerp(float64(ac.X), float64(bc.X), t)
		y := lerp(float64(ac.Y), float64(bc.Y), t)
		z := lerp(float64(ac.Z), float64(bc.Z), t)
		out = append(out, RoundCube(x, y, z).ToPoint())
	}
	return out
}

// DirectionTo returns the direction index 0..5 of the first step along
// Line(a, b). The second result is false when a == b.
func DirectionTo(a, b Point) (int, bool) {
	ln := Line(a, b)
	if len(ln) < 2 {
		return 0, false
	}
	step := ln[1].Sub(ln[0])
	for i, d := range Directions {
		if d == step {
			return i, true
		}
	}
	return 0, false
}

// RoundCube rounds fractional cube coordinates to the nearest hex. The
// component that took the largest rounding error is recomputed from the
// other two so x+y+z stays 0.
func RoundCube(x, y, z float64) Cube {
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
