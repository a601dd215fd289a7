package multipolygon

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node is a projected map node. Coordinates are planar (Web Mercator or
// whatever the caller projected into); identity is the OSM node ID, which
// stays stable when the node is moved.
type Node struct {
	ID    osm.NodeID
	Point orb.Point
}

// Way is an ordered node sequence belonging to the caller's data store.
// The assembly code holds non-owning references only.
type Way struct {
	ID       osm.WayID
	Nodes    []*Node
	Selected bool
}

// IsClosed reports whether the way's first and last nodes are the same node.
func (w *Way) IsClosed() bool {
	if len(w.Nodes) == 0 {
		return true
	}
	return w.Nodes[0].ID == w.Nodes[len(w.Nodes)-1].ID
}

// FirstNode returns the first node of the way.
func (w *Way) FirstNode() *Node {
	return w.Nodes[0]
}

// LastNode returns the last node of the way.
func (w *Way) LastNode() *Node {
	return w.Nodes[len(w.Nodes)-1]
}

// Member is one entry of a relation's member list. An empty Role means the
// member carries no role. Members are transient input; they are not retained
// past bucketing.
type Member struct {
	Way      *Way
	Role     string
	Drawable bool
}

// HasRole reports whether the member carries a role tag at all.
func (m *Member) HasRole() bool {
	return m.Role != ""
}

// Relation is a snapshot of a multipolygon relation's way members.
type Relation struct {
	ID      osm.RelationID
	Members []Member
}

// NodeMovedEvent notifies the assembly that a node's coordinate changed.
// It carries the node's identity and its new planar coordinate.
type NodeMovedEvent struct {
	ID    osm.NodeID
	Point orb.Point
}
