package hex

// Set is a set of points. Callers pass one as the obstacle set to the
// search functions; the fog-of-war query returns one.
type Set map[Point]bool

// NewSet returns a Set containing the given points.
func NewSet(ps ...Point) Set {
	s := make(Set, len(ps))
	for _, p := range ps {
		s[p] = true
	}
	return s
}

// Has reports whether p is a member.
func (s Set) Has(p Point) bool { return s[p] }

// Add inserts p.
func (s Set) Add(p Point) { s[p] = true }

// Union returns a new set holding the members of both s and o.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for p := range s {
		out[p] = true
	}
	for p := range o {
		out[p] = true
	}
	return out
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }
