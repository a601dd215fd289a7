package multipolygon

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

func testNode(id int64, x, y float64) *Node {
	return &Node{ID: osm.NodeID(id), Point: orb.Point{x, y}}
}

func testWay(id int64, nodes ...*Node) *Way {
	return &Way{ID: osm.WayID(id), Nodes: nodes}
}

// square returns the four corner nodes of an axis-aligned square, with node
// IDs starting at baseID.
func square(baseID int64, minX, minY, size float64) []*Node {
	return []*Node{
		testNode(baseID, minX, minY),
		testNode(baseID+1, minX+size, minY),
		testNode(baseID+2, minX+size, minY+size),
		testNode(baseID+3, minX, minY+size),
	}
}

// closedSquareWay returns a closed way tracing the square boundary, ending
// on its first node.
func closedSquareWay(wayID, baseID int64, minX, minY, size float64) *Way {
	nodes := square(baseID, minX, minY, size)
	nodes = append(nodes, nodes[0])
	return testWay(wayID, nodes...)
}

func nodeIDs(nodes []*Node) []int64 {
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = int64(n.ID)
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
