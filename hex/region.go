package hex

// Range returns every point within distance n of center, row by row.
// A radius-n range holds 1+3n(n+1) points; negative n yields nil.
func Range(n int, center Point) []Point {
	if n < 0 {
		return nil
	}
	out := make([]Point, 0, 1+3*n*(n+1))
	for dq := -n; dq <= n; dq++ {
		lo := max(-n, -dq-n)
		hi := min(n, -dq+n)
		for dr := lo; dr <= hi; dr++ {
			out = append(out, center.Add(Point{dq, dr}))
		}
	}
	return out
}

// Ring returns the points at exact distance r from center in walk order:
// starting r steps along Directions[4] (south-west) and tracing the six
// sides, r steps per side. Ring(0, c) is [c]; negative r yields nil.
func Ring(r int, center Point) []Point {
	if r < 0 {
		return nil
	}
	if r == 0 {
		return []Point{center}
	}
	out := make([]Point, 0, 6*r)
	cur := center.Add(Directions[4].Mul(r))
	for side := 0; side < 6; side++ {
		for step := 0; step < r; step++ {
			out = append(out, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return out
}

// Spiral returns center followed by Ring(1) through Ring(r), near to far.
func Spiral(center Point, r int) []Point {
	out := make([]Point, 0, 1+3*r*(r+1))
	out = append(out, center)
	for k := 1; k <= r; k++ {
		out = append(out, Ring(k, center)...)
	}
	return out
}
