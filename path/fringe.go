// Package path implements graph search over hex grids: unweighted and
// cost-weighted shortest paths, bounded-radius reachability, and
// line-of-sight occlusion. Obstacles are always a parameter, never grid
// state, so one grid can be queried under many obstacle configurations.
package path

import "github.com/danneu/hexgrid/hex"

// Fringes expands a breadth-first wavefront from start: element i holds
// the points reachable in exactly i unobstructed steps. A blocked start
// yields nil — not even start itself counts as reachable. Expansion always
// runs out to maxSteps; trailing levels are empty once the frontier dies.
func Fringes(start hex.Point, maxSteps int, obstacles hex.Set) []hex.Set {
	if obstacles.Has(start) {
		return nil
	}
	if maxSteps < 0 {
		maxSteps = 0
	}
	fringes := make([]hex.Set, 0, maxSteps+1)
	fringes = append(fringes, hex.NewSet(start))
	visited := hex.NewSet(start)
	for step := 1; step <= maxSteps; step++ {
		next := hex.Set{}
		for p := range fringes[step-1] {
			for _, n := range p.Neighbors() {
				if obstacles.Has(n) || visited.Has(n) {
					continue
				}
				visited.Add(n)
				next.Add(n)
			}
		}
		fringes = append(fringes, next)
	}
	return fringes
}

// Reachable returns every point within maxSteps unobstructed steps of
// start, start included.
func Reachable(start hex.Point, maxSteps int, obstacles hex.Set) hex.Set {
	out := hex.Set{}
	for _, level := range Fringes(start, maxSteps, obstacles) {
		for p := range level {
			out.Add(p)
		}
	}
	return out
}

// StepCounts maps each point reachable within maxSteps to the step at
// which it first appears.
func StepCounts(maxSteps int, obstacles hex.Set, start hex.Point) map[hex.Point]int {
	counts := make(map[hex.Point]int)
	for i, level := range Fringes(start, maxSteps, obstacles) {
		for p := range level {
			counts[p] = i
		}
	}
	return counts
}

// CountSteps returns the number of steps from start to end, scanning
// fringe levels in order. The second result is false when end is not
// reached within maxSteps. Each call recomputes the full fringe from
// scratch; prefer StepCounts when querying many destinations against one
// start.
func CountSteps(start, end hex.Point, obstacles hex.Set, maxSteps int) (int, bool) {
	for i, level := range Fringes(start, maxSteps, obstacles) {
		if level.Has(end) {
			return i, true
		}
	}
	return 0, false
}
