package multipolygon

import "github.com/paulmach/orb"

// Path is the fill geometry of a ring: one or more closed subpaths evaluated
// with the even-odd winding rule. A ring's own boundary is the first subpath;
// each nested inner ring appends its subpaths, which under even-odd winding
// subtract from the filled area and become holes.
type Path struct {
	subpaths []orb.Ring
}

// newPathFromNodes builds a single closed subpath by moving to the first
// node, lining to each subsequent node, and closing back to the start.
// An empty node list yields an empty path.
func newPathFromNodes(nodes []*Node) *Path {
	p := &Path{}
	if len(nodes) == 0 {
		return p
	}
	ring := make(orb.Ring, 0, len(nodes)+1)
	for _, n := range nodes {
		ring = append(ring, n.Point)
	}
	// Close explicitly; open input chains are closed visually here, matching
	// the tolerant handling of degenerate data.
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	p.subpaths = append(p.subpaths, ring)
	return p
}

// Append adds all of other's subpaths to p. Under even-odd winding the
// appended regions become holes where they overlap filled area.
func (p *Path) Append(other *Path) {
	for _, sp := range other.subpaths {
		p.subpaths = append(p.subpaths, cloneRing(sp))
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{subpaths: make([]orb.Ring, len(p.subpaths))}
	for i, sp := range p.subpaths {
		out.subpaths[i] = cloneRing(sp)
	}
	return out
}

// Subpaths exposes the closed subpaths for rendering or export. The first
// subpath is the ring's own boundary; the rest are appended holes.
func (p *Path) Subpaths() []orb.Ring {
	return p.subpaths
}

// Bound returns the axis-aligned bounding box of all subpaths.
func (p *Path) Bound() orb.Bound {
	var b orb.Bound
	for i, sp := range p.subpaths {
		if i == 0 {
			b = sp.Bound()
		} else {
			b = b.Union(sp.Bound())
		}
	}
	return b
}

// ContainsPoint reports whether pt is inside the path under the even-odd
// rule: a ray from the point must cross the combined boundary an odd number
// of times. Holes appended to the path are accounted for automatically.
func (p *Path) ContainsPoint(pt orb.Point) bool {
	crossings := 0
	for _, sp := range p.subpaths {
		crossings += rayCrossings(sp, pt)
	}
	return crossings%2 == 1
}

// rayCrossings counts crossings of a horizontal ray from pt toward +x with
// the closed subpath's edges.
func rayCrossings(ring orb.Ring, pt orb.Point) int {
	count := 0
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		if (a[1] > pt[1]) == (b[1] > pt[1]) {
			continue
		}
		// x coordinate where the edge crosses the ray's y.
		x := a[0] + (pt[1]-a[1])/(b[1]-a[1])*(b[0]-a[0])
		if x > pt[0] {
			count++
		}
	}
	return count
}

// vertices calls fn for every drawn vertex of the path, excluding the
// duplicated closing point of each subpath.
func (p *Path) vertices(fn func(orb.Point)) {
	for _, sp := range p.subpaths {
		n := len(sp)
		if n > 1 && sp.Closed() {
			n--
		}
		for i := 0; i < n; i++ {
			fn(sp[i])
		}
	}
}

func cloneRing(r orb.Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	copy(out, r)
	return out
}
