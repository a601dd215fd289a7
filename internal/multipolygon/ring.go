package multipolygon

import "github.com/paulmach/orb"

// Intersection classifies how a candidate path relates to a ring.
type Intersection int

const (
	// Inside means every sampled vertex of the candidate lies inside.
	Inside Intersection = iota
	// Outside means no sampled vertex of the candidate lies inside.
	Outside
	// Crossing means some but not all sampled vertices lie inside.
	Crossing
)

func (i Intersection) String() string {
	switch i {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	default:
		return "crossing"
	}
}

// Ring is one polygon boundary of a multipolygon: an immutable node sequence
// with its contributing ways, a fill path under even-odd winding, and the
// inner rings nested inside it. The path always equals the ring's own closed
// subpath followed by every nested inner ring's subpaths; mutations that can
// change it (node moves, AddInner) rebuild the path and drop the cached
// bounding box.
type Ring struct {
	nodes    []*Node
	ways     []*Way
	selected bool
	inners   []*Ring

	path   *Path
	bounds *orb.Bound
}

// NewRing builds a ring from an ordered node sequence. The node and way
// slices are retained by reference and must not be mutated by the caller.
func NewRing(nodes []*Node, selected bool, ways []*Way) *Ring {
	r := &Ring{
		nodes:    nodes,
		ways:     ways,
		selected: selected,
	}
	r.rebuild()
	return r
}

// newRingFromJoined wraps a joined chain as a ring. Open chains are allowed;
// they render as a nominally closed ring.
func newRingFromJoined(jw *JoinedWay, ways []*Way) *Ring {
	return NewRing(jw.Nodes, jw.Selected, ways)
}

// Clone copies the ring for the combine pass: the path is deep-copied, the
// node and way slices are shared (immutable once the ring exists), and the
// inner list is a shallow copy referencing the same inner rings.
func (r *Ring) Clone() *Ring {
	inners := make([]*Ring, len(r.inners))
	copy(inners, r.inners)
	return &Ring{
		nodes:    r.nodes,
		ways:     r.ways,
		selected: r.selected,
		inners:   inners,
		path:     r.path.Clone(),
	}
}

// Path returns the ring's fill geometry.
func (r *Ring) Path() *Path { return r.path }

// Nodes returns the ring's node sequence.
func (r *Ring) Nodes() []*Node { return r.nodes }

// Ways returns the ways that contributed to the ring.
func (r *Ring) Ways() []*Way { return r.ways }

// Selected reports whether any contributing way was selected.
func (r *Ring) Selected() bool { return r.selected }

// Inners returns the inner rings nested in this ring.
func (r *Ring) Inners() []*Ring { return r.inners }

// AddInner nests inner inside this ring, appending its subpaths so the
// region becomes a hole under even-odd winding. No containment check happens
// here; nesting resolution is the caller's responsibility.
func (r *Ring) AddInner(inner *Ring) {
	r.inners = append(r.inners, inner)
	r.path.Append(inner.path)
	r.bounds = nil
}

// Contains classifies the candidate path against this ring by testing each
// of its drawn vertices for even-odd membership. This is vertex sampling,
// not a polygon intersection test: edges can cross without any vertex
// landing inside, which misclassifies as Outside. That trade-off is kept
// deliberately; rendering cost wins over rigor here.
func (r *Ring) Contains(p *Path) Intersection {
	contains, total := 0, 0
	p.vertices(func(pt orb.Point) {
		total++
		if r.path.ContainsPoint(pt) {
			contains++
		}
	})
	if contains == total {
		return Inside
	}
	if contains == 0 {
		return Outside
	}
	return Crossing
}

// Bounds returns the bounding box of the ring's path, computed once and
// cached until the path is rebuilt.
func (r *Ring) Bounds() orb.Bound {
	if r.bounds == nil {
		b := r.path.Bound()
		r.bounds = &b
	}
	return *r.bounds
}

// NodeMoved applies a node-move notification. An inner ring whose node
// sequence includes the moved node is rebuilt from its unchanged sequence
// and the node's new coordinate; if this ring's own sequence includes it, or
// any inner changed, the ring's own path is rebuilt as well, re-appending
// every inner subpath. This is a full local rebuild, not a differential
// patch; ring node counts are small next to a full repaint.
func (r *Ring) NodeMoved(ev NodeMovedEvent) {
	innerChanged := false
	for _, inner := range r.inners {
		if inner.applyMove(ev) {
			inner.rebuild()
			innerChanged = true
		}
	}
	if r.applyMove(ev) || innerChanged {
		r.rebuild()
	}
}

// applyMove updates the coordinate of any matching node in the ring's
// sequence and reports whether the ring references the moved node.
func (r *Ring) applyMove(ev NodeMovedEvent) bool {
	found := false
	for _, n := range r.nodes {
		if n.ID == ev.ID {
			n.Point = ev.Point
			found = true
		}
	}
	return found
}

// rebuild reconstructs the path from the node sequence and the nested inner
// rings, and invalidates the cached bounding box.
func (r *Ring) rebuild() {
	r.path = newPathFromNodes(r.nodes)
	for _, inner := range r.inners {
		r.path.Append(inner.path)
	}
	r.bounds = nil
}
