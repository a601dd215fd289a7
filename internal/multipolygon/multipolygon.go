// Package multipolygon assembles the way members of an OSM multipolygon
// relation into closed polygon rings with holes, ready for rendering.
//
// The input is best-effort OSM data: members with unknown roles, degenerate
// ways, and chains that never close are tolerated and degrade to a visually
// imperfect result, never to an error.
package multipolygon

// Multipolygon holds the assembled ring set of one relation, plus the raw
// inner and outer way lists as discovered during role classification (kept
// for consumers that work on the original member ways, e.g. selection
// highlighting).
type Multipolygon struct {
	outerWays []*Way
	innerWays []*Way
	combined  []*Ring
}

// NewMultipolygon assembles a relation snapshot. The whole join/nest
// pipeline runs synchronously inside this call; the returned value is only
// mutated afterwards through NodeMoved, which the owner must serialize.
func NewMultipolygon(rel *Relation, matcher *RoleMatcher) *Multipolygon {
	if matcher == nil {
		matcher = DefaultRoleMatcher()
	}
	mp := &Multipolygon{}
	mp.load(rel, matcher)
	return mp
}

func (mp *Multipolygon) load(rel *Relation, matcher *RoleMatcher) {
	// Bucket valid way members by role. Anything else is dropped silently:
	// non-drawable members, ways with fewer than 2 nodes, unrecognized roles.
	for i := range rel.Members {
		m := &rel.Members[i]
		if !m.Drawable || m.Way == nil {
			continue
		}
		if len(m.Way.Nodes) < 2 {
			continue
		}
		switch {
		case matcher.IsInnerRole(m.Role):
			mp.innerWays = append(mp.innerWays, m.Way)
		case matcher.IsOuterRole(m.Role):
			mp.outerWays = append(mp.outerWays, m.Way)
		case !m.HasRole():
			mp.outerWays = append(mp.outerWays, m.Way)
		}
	}

	innerRings := createRings(mp.innerWays)
	outerRings := createRings(mp.outerWays)
	if len(outerRings) > 0 {
		mp.combined = combineRings(outerRings, innerRings)
	}
	// The working ring lists are not retained past combination; only the
	// combined list and the raw way lists survive.
}

// createRings turns one role bucket into rings: closed ways become
// single-way rings directly, open ways are joined into chains first. A chain
// that never closes still becomes a ring.
func createRings(ways []*Way) []*Ring {
	var rings []*Ring
	var waysToJoin []*Way
	for _, way := range ways {
		if way.IsClosed() {
			rings = append(rings, NewRing(way.Nodes, way.Selected, []*Way{way}))
		} else {
			waysToJoin = append(waysToJoin, way)
		}
	}
	for _, jw := range JoinWays(waysToJoin) {
		rings = append(rings, newRingFromJoined(jw, waysToJoin))
	}
	return rings
}

// OuterWays returns the raw outer member ways, in classification order.
func (mp *Multipolygon) OuterWays() []*Way { return mp.outerWays }

// InnerWays returns the raw inner member ways, in classification order.
func (mp *Multipolygon) InnerWays() []*Way { return mp.innerWays }

// Combined returns the final ring set: outer rings each carrying zero or
// more nested inner rings. Empty when the relation has no outer ring.
func (mp *Multipolygon) Combined() []*Ring { return mp.combined }

// NodeMoved propagates a node move to every combined ring. Only rings whose
// node set includes the moved node rebuild their geometry.
func (mp *Multipolygon) NodeMoved(ev NodeMovedEvent) {
	for _, ring := range mp.combined {
		ring.NodeMoved(ev)
	}
}
