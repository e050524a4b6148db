package hex

import "testing"

func TestLineEndpointsAndLength(t *testing.T) {
	cases := []struct{ a, b Point }{
		{Point{0, 0}, Point{3, 0}},
		{Point{0, 0}, Point{3, -2}},
		{Point{-2, 1}, Point{2, 1}},
		{Point{1, 1}, Point{-3, 2}},
	}
	for _, c := range cases {
		ln := Line(c.a, c.b)
		want := Distance(c.a, c.b) + 1
		if len(ln) != want {
			t.Fatalf("Line(%v, %v) has %d points, want %d", c.a, c.b, len(ln), want)
		}
		if ln[0] != c.a || ln[len(ln)-1] != c.b {
			t.Fatalf("Line(%v, %v) endpoints are %v and %v", c.a, c.b, ln[0], ln[len(ln)-1])
		}
		for i := 1; i < len(ln); i++ {
			if Distance(ln[i-1], ln[i]) != 1 {
				t.Fatalf("Line(%v, %v): %v and %v are not adjacent", c.a, c.b, ln[i-1], ln[i])
			}
		}
	}
}

func TestLineSamePointIsEmpty(t *testing.T) {
	if ln := Line(Point{2, -1}, Point{2, -1}); len(ln) != 0 {
		t.Fatalf("Line(p, p) = %v, want empty", ln)
	}
}

func TestDirectionTo(t *testing.T) {
	cases := []struct {
		a, b Point
		dir  int
	}{
		{Point{0, 0}, Point{3, 0}, 0},
		{Point{0, 0}, Point{0, -3}, 2},
		{Point{0, 0}, Point{-2, 0}, 3},
		{Point{0, 0}, Point{0, 3}, 5},
	}
	for _, c := range cases {
		dir, ok := DirectionTo(c.a, c.b)
		if !ok || dir != c.dir {
			t.Fatalf("DirectionTo(%v, %v) = %d,%v, want %d,true", c.a, c.b, dir, ok, c.dir)
		}
	}
}

func TestDirectionToSelf(t *testing.T) {
	if _, ok := DirectionTo(Point{1, 1}, Point{1, 1}); ok {
		t.Fatalf("DirectionTo(p, p) should report no direction")
	}
}

func TestRoundCubeRepairsSum(t *testing.T) {
	c := RoundCube(1.4, -0.7, -0.7)
	if c.X+c.Y+c.Z != 0 {
		t.Fatalf("RoundCube gave %v, sum %d", c, c.X+c.Y+c.Z)
	}
}
