package multipolygon

import "github.com/paulmach/orb"

// findOuterRing picks the outer ring that should receive inner as a hole.
//
// Bounding boxes are tried first: if exactly one outer's box fully contains
// the inner's box, that outer wins; failing that, if exactly one outer's box
// merely intersects it, that one wins. Only when both counts are ambiguous
// (zero or several candidates) does it fall back to precise vertex-sampled
// containment. Returns nil when nothing qualifies.
func findOuterRing(inner *Ring, outers []*Ring) *Ring {
	innerBox := inner.Bounds()

	var insideRing, intersectingRing *Ring
	insideCount, intersectingCount := 0, 0
	for _, outer := range outers {
		box := outer.Bounds()
		if boundContains(box, innerBox) {
			insideRing = outer
			insideCount++
		} else if box.Intersects(innerBox) {
			intersectingRing = outer
			intersectingCount++
		}
	}

	if insideCount == 1 {
		return insideRing
	}
	if intersectingCount == 1 {
		return intersectingRing
	}

	var result *Ring
	for _, outer := range outers {
		if outer.Contains(inner.path) == Outside {
			continue
		}
		// Replace the running result unless it already fully contains this
		// candidate, so an enclosing qualifying outer is never displaced by
		// one nested inside it.
		if result == nil || result.Contains(outer.path) != Inside {
			result = outer
		}
	}
	return result
}

// boundContains reports whether b fully contains o.
func boundContains(b, o orb.Bound) bool {
	return b.Contains(o.Min) && b.Contains(o.Max)
}

// combineRings produces the final ring set: each outer ring cloned, each
// inner ring attached to the outer that contains it.
//
// With no inners the outers pass through unchanged (and uncloned). With a
// single outer every inner attaches to its clone directly. Otherwise each
// inner is resolved against the clones; when resolution finds nothing it
// falls back to the first outer ring. That fallback is a known approximation
// for degenerate data (disjoint multi-outer geometry with no clean
// containment) and is kept as-is for compatibility.
func combineRings(outers, inners []*Ring) []*Ring {
	if len(inners) == 0 {
		combined := make([]*Ring, len(outers))
		copy(combined, outers)
		return combined
	}

	if len(outers) == 1 {
		combinedOuter := outers[0].Clone()
		for _, inner := range inners {
			combinedOuter.AddInner(inner)
		}
		return []*Ring{combinedOuter}
	}

	combined := make([]*Ring, 0, len(outers))
	for _, outer := range outers {
		combined = append(combined, outer.Clone())
	}
	for _, inner := range inners {
		outer := findOuterRing(inner, combined)
		if outer == nil {
			outer = combined[0]
		}
		outer.AddInner(inner)
	}
	return combined
}
