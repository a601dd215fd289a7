package multipolygon

import (
	"testing"

	"github.com/paulmach/orb"
)

func member(w *Way, role string) Member {
	return Member{Way: w, Role: role, Drawable: true}
}

func TestMultipolygonClosedOuterAndInner(t *testing.T) {
	outerWay := closedSquareWay(10, 1, 0, 0, 10)
	innerWay := closedSquareWay(11, 20, 3, 3, 2)

	mp := NewMultipolygon(&Relation{ID: 1, Members: []Member{
		member(outerWay, "outer"),
		member(innerWay, "inner"),
	}}, nil)

	if len(mp.OuterWays()) != 1 || len(mp.InnerWays()) != 1 {
		t.Fatalf("raw way lists: %d outer, %d inner, want 1 and 1",
			len(mp.OuterWays()), len(mp.InnerWays()))
	}
	combined := mp.Combined()
	if len(combined) != 1 {
		t.Fatalf("combined %d rings, want 1", len(combined))
	}
	if len(combined[0].Inners()) != 1 {
		t.Fatalf("combined ring has %d inners, want 1", len(combined[0].Inners()))
	}
	// The ring traces the closed way's node sequence.
	if !equalIDs(nodeIDs(combined[0].Nodes()), nodeIDs(outerWay.Nodes)) {
		t.Errorf("ring nodes %v, want way nodes %v",
			nodeIDs(combined[0].Nodes()), nodeIDs(outerWay.Nodes))
	}
	// The hole is actually cut.
	if combined[0].Path().ContainsPoint(orb.Point{4, 4}) {
		t.Error("point inside the inner ring still filled")
	}
}

func TestMultipolygonNoRoleCountsAsOuter(t *testing.T) {
	way := closedSquareWay(10, 1, 0, 0, 4)
	mp := NewMultipolygon(&Relation{ID: 1, Members: []Member{member(way, "")}}, nil)

	if len(mp.OuterWays()) != 1 {
		t.Errorf("role-less way not bucketed as outer (%d outer ways)", len(mp.OuterWays()))
	}
	if len(mp.Combined()) != 1 {
		t.Errorf("combined %d rings, want 1", len(mp.Combined()))
	}
}

func TestMultipolygonSkipsInvalidMembers(t *testing.T) {
	short := testWay(10, testNode(1, 0, 0))
	undrawable := closedSquareWay(11, 10, 0, 0, 4)
	unknownRole := closedSquareWay(12, 20, 0, 0, 4)

	mp := NewMultipolygon(&Relation{ID: 1, Members: []Member{
		{Way: short, Role: "outer", Drawable: true},
		{Way: undrawable, Role: "outer", Drawable: false},
		{Way: unknownRole, Role: "subarea", Drawable: true},
		{Way: nil, Role: "outer", Drawable: true},
	}}, nil)

	if len(mp.OuterWays()) != 0 || len(mp.InnerWays()) != 0 {
		t.Errorf("invalid members leaked into way lists: %d outer, %d inner",
			len(mp.OuterWays()), len(mp.InnerWays()))
	}
	if len(mp.Combined()) != 0 {
		t.Errorf("combined %d rings from invalid members, want 0", len(mp.Combined()))
	}
}

func TestMultipolygonJoinsOpenOuterWays(t *testing.T) {
	n1 := testNode(1, 0, 0)
	n2 := testNode(2, 4, 0)
	n3 := testNode(3, 4, 4)
	n4 := testNode(4, 0, 4)
	half1 := testWay(10, n1, n2, n3)
	half2 := testWay(11, n3, n4, n1)

	mp := NewMultipolygon(&Relation{ID: 1, Members: []Member{
		member(half1, "outer"),
		member(half2, "outer"),
	}}, nil)

	combined := mp.Combined()
	if len(combined) != 1 {
		t.Fatalf("combined %d rings, want 1", len(combined))
	}
	if !combined[0].Path().ContainsPoint(orb.Point{2, 2}) {
		t.Error("joined square does not contain its center")
	}
}

func TestMultipolygonBBoxAssignment(t *testing.T) {
	// Two disjoint outers; the inner's box touches only the left one.
	leftOuter := closedSquareWay(10, 1, 0, 0, 10)
	rightOuter := closedSquareWay(11, 10, 100, 0, 10)
	inner := closedSquareWay(12, 20, 2, 2, 3)

	mp := NewMultipolygon(&Relation{ID: 1, Members: []Member{
		member(leftOuter, "outer"),
		member(rightOuter, "outer"),
		member(inner, "inner"),
	}}, nil)

	combined := mp.Combined()
	if len(combined) != 2 {
		t.Fatalf("combined %d rings, want 2", len(combined))
	}
	if len(combined[0].Inners()) != 1 {
		t.Errorf("left outer has %d inners, want 1", len(combined[0].Inners()))
	}
	if len(combined[1].Inners()) != 0 {
		t.Errorf("right outer has %d inners, want 0", len(combined[1].Inners()))
	}
}

func TestMultipolygonPreciseAssignment(t *testing.T) {
	// Square and diamond outers share a bounding box; only the square
	// geometrically contains the inner, so the precise fallback decides.
	sq := closedSquareWay(10, 1, 0, 0, 20)
	diamondNodes := []*Node{
		testNode(30, 10, 0),
		testNode(31, 20, 10),
		testNode(32, 10, 20),
		testNode(33, 0, 10),
	}
	diamond := testWay(11, append(diamondNodes, diamondNodes[0])...)
	inner := closedSquareWay(12, 40, 1, 1, 1)

	mp := NewMultipolygon(&Relation{ID: 1, Members: []Member{
		member(diamond, "outer"),
		member(sq, "outer"),
		member(inner, "inner"),
	}}, nil)

	combined := mp.Combined()
	if len(combined) != 2 {
		t.Fatalf("combined %d rings, want 2", len(combined))
	}
	// combined[0] is the diamond clone, combined[1] the square clone.
	if len(combined[0].Inners()) != 0 {
		t.Errorf("diamond received %d inners, want 0", len(combined[0].Inners()))
	}
	if len(combined[1].Inners()) != 1 {
		t.Errorf("square received %d inners, want 1", len(combined[1].Inners()))
	}
}

func TestMultipolygonOnlyInnersYieldsEmpty(t *testing.T) {
	inner := closedSquareWay(10, 1, 0, 0, 4)
	mp := NewMultipolygon(&Relation{ID: 1, Members: []Member{member(inner, "inner")}}, nil)

	if len(mp.Combined()) != 0 {
		t.Errorf("combined %d rings without any outer, want 0", len(mp.Combined()))
	}
	if len(mp.InnerWays()) != 1 {
		t.Errorf("raw inner way list has %d entries, want 1", len(mp.InnerWays()))
	}
}

func TestMultipolygonNodeMovedLocality(t *testing.T) {
	leftOuter := closedSquareWay(10, 1, 0, 0, 10)
	innerWay := closedSquareWay(11, 20, 3, 3, 2)
	farOuter := closedSquareWay(12, 30, 100, 100, 10)

	mp := NewMultipolygon(&Relation{ID: 1, Members: []Member{
		member(leftOuter, "outer"),
		member(farOuter, "outer"),
		member(innerWay, "inner"),
	}}, nil)

	combined := mp.Combined()
	if len(combined) != 2 {
		t.Fatalf("combined %d rings, want 2", len(combined))
	}
	parent, sibling := combined[0], combined[1]
	if len(parent.Inners()) != 1 {
		parent, sibling = combined[1], combined[0]
	}
	inner := parent.Inners()[0]

	innerBefore := inner.Bounds()
	siblingBefore := sibling.Bounds()

	// Node 22 is the (5,5) corner of the inner square; pull it outward.
	mp.NodeMoved(NodeMovedEvent{ID: 22, Point: orb.Point{8, 8}})

	if inner.Bounds().Equal(innerBefore) {
		t.Error("inner ring bounds unchanged after node move")
	}
	if !sibling.Bounds().Equal(siblingBefore) {
		t.Error("unrelated sibling ring bounds changed by node move")
	}
	if parent.Path().ContainsPoint(orb.Point{6, 6}) {
		t.Error("parent path not rebuilt: grown hole still filled at (6,6)")
	}
}

func TestMultipolygonCustomMatcher(t *testing.T) {
	m := NewRoleMatcher(nil, []string{"outer:"}, nil, nil)
	way := closedSquareWay(10, 1, 0, 0, 4)

	mp := NewMultipolygon(&Relation{ID: 1, Members: []Member{
		member(way, "outer:bridge"),
	}}, m)

	if len(mp.OuterWays()) != 1 {
		t.Errorf("prefixed role not classified as outer (%d outer ways)", len(mp.OuterWays()))
	}
}
