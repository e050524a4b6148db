package hex

import "testing"

func TestRingZeroAndNegative(t *testing.T) {
	c := Point{1, -1}
	if got := Ring(0, c); len(got) != 1 || got[0] != c {
		t.Fatalf("Ring(0, %v) = %v, want [%v]", c, got, c)
	}
	if got := Ring(-1, c); got != nil {
		t.Fatalf("Ring(-1, %v) = %v, want nil", c, got)
	}
}

func TestRingSizeAndDistance(t *testing.T) {
	c := Point{2, 0}
	for r := 1; r <= 4; r++ {
		ring := Ring(r, c)
		if len(ring) != 6*r {
			t.Fatalf("Ring(%d) has %d points, want %d", r, len(ring), 6*r)
		}
		seen := NewSet()
		for _, p := range ring {
			if Distance(c, p) != r {
				t.Fatalf("Ring(%d) point %v at distance %d", r, p, Distance(c, p))
			}
			if seen.Has(p) {
				t.Fatalf("Ring(%d) repeats %v", r, p)
			}
			seen.Add(p)
		}
	}
}

func TestRingWalkOrder(t *testing.T) {
	ring := Ring(2, Point{})
	for i := 1; i < len(ring); i++ {
		if Distance(ring[i-1], ring[i]) != 1 {
			t.Fatalf("ring walk jumps from %v to %v", ring[i-1], ring[i])
		}
	}
	// walk starts two steps along Directions[4]
	if want := Directions[4].Mul(2); ring[0] != want {
		t.Fatalf("ring starts at %v, want %v", ring[0], want)
	}
}

func TestRangeCountAndBound(t *testing.T) {
	c := Point{-1, 2}
	for n := 0; n <= 3; n++ {
		pts := Range(n, c)
		if want := 1 + 3*n*(n+1); len(pts) != want {
			t.Fatalf("Range(%d) has %d points, want %d", n, len(pts), want)
		}
		for _, p := range pts {
			if Distance(c, p) > n {
				t.Fatalf("Range(%d) includes %v at distance %d", n, p, Distance(c, p))
			}
		}
	}
}

func TestSpiralNearToFar(t *testing.T) {
	c := Point{0, 1}
	sp := Spiral(c, 2)
	if want := 1 + 6 + 12; len(sp) != want {
		t.Fatalf("Spiral(2) has %d points, want %d", len(sp), want)
	}
	if sp[0] != c {
		t.Fatalf("Spiral starts at %v, want center %v", sp[0], c)
	}
	last := 0
	for _, p := range sp {
		d := Distance(c, p)
		if d < last {
			t.Fatalf("Spiral moves inward at %v (distance %d after %d)", p, d, last)
		}
		last = d
	}
}
