package multipolygon

// JoinedWay is a chain of nodes stitched together from one or more way
// segments. It is closed if its endpoints are the same node; open chains are
// legal output (degenerate data is rendered as-is, never rejected).
type JoinedWay struct {
	Nodes    []*Node
	Selected bool
}

// IsClosed reports whether the chain forms a ring.
func (jw *JoinedWay) IsClosed() bool {
	if len(jw.Nodes) == 0 {
		return true
	}
	return jw.Nodes[0].ID == jw.Nodes[len(jw.Nodes)-1].ID
}

// Endpoint orientations for a splice candidate relative to the current chain.
const (
	noMatch  = iota
	tailHead // chain tail meets candidate head
	tailTail // chain tail meets candidate tail
	headHead // chain head meets candidate head
	headTail // chain head meets candidate tail
)

// JoinWays stitches open way segments into maximal chains by endpoint
// identity. Each chain is seeded with the first unconsumed segment, then
// grown by repeated scans over the remaining segments: a segment whose head
// or tail coincides with the chain's head or tail (any of the four
// orientations) is spliced in with the shared endpoint deduplicated, and its
// selection flag is OR-ed into the chain. When a full scan matches nothing
// the chain is emitted and the next seed starts. The pool shrinks by one per
// splice, so this terminates in O(n^2) comparisons without any endpoint
// index. Emission order is seed discovery order; it has no geometric meaning.
func JoinWays(ways []*Way) []*JoinedWay {
	pool := make([]*Way, len(ways))
	copy(pool, ways)
	left := len(pool)

	var result []*JoinedWay
	for left > 0 {
		var chain []*Node
		selected := false

		joined := true
		for joined && left > 0 {
			joined = false
			for i := 0; i < len(pool) && left > 0; i++ {
				c := pool[i]
				if c == nil {
					continue
				}
				if chain == nil {
					chain = append(chain, c.Nodes...)
					selected = c.Selected
					pool[i] = nil
					left--
					continue
				}
				mode := matchOrientation(chain, c)
				if mode == noMatch {
					continue
				}
				chain = splice(chain, c.Nodes, mode)
				if c.Selected {
					selected = true
				}
				pool[i] = nil
				left--
				joined = true
			}
		}

		result = append(result, &JoinedWay{Nodes: chain, Selected: selected})
	}
	return result
}

// matchOrientation finds which chain endpoint, if any, coincides with an
// endpoint of the candidate segment. Matching is by node identity.
func matchOrientation(chain []*Node, c *Way) int {
	head, tail := chain[0].ID, chain[len(chain)-1].ID
	cHead, cTail := c.FirstNode().ID, c.LastNode().ID
	switch {
	case tail == cHead:
		return tailHead
	case tail == cTail:
		return tailTail
	case head == cHead:
		return headHead
	case head == cTail:
		return headTail
	}
	return noMatch
}

// splice merges the candidate's nodes into the chain at the matched end,
// dropping the chain's copy of the shared endpoint and reversing the
// candidate where the orientation requires it.
func splice(chain, nodes []*Node, mode int) []*Node {
	switch mode {
	case tailHead:
		return append(chain[:len(chain)-1], nodes...)
	case tailTail:
		return append(chain[:len(chain)-1], reversedNodes(nodes)...)
	case headHead:
		return append(reversedNodes(nodes), chain[1:]...)
	default: // headTail
		merged := make([]*Node, 0, len(nodes)+len(chain)-1)
		merged = append(merged, nodes...)
		return append(merged, chain[1:]...)
	}
}

func reversedNodes(nodes []*Node) []*Node {
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}
