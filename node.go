package maple

// Node is the positional core of every widget: a position relative to a
// parent's origin plus a non-owning back-reference to that parent, used only
// for coordinate resolution, never for lifetime. A node with a nil Parent is
// a root. The parent graph must stay acyclic and rooted; AttachTo enforces
// this at the only place a parent link is created.
type Node struct {
	Position Point
	Parent   *Node
}

// AbsolutePosition resolves the node's position through every ancestor up to
// the root. For a chain of depth n this is the sum of each node's own
// Position along the chain.
func (n *Node) AbsolutePosition() Point {
	pos := n.Position
	for p := n.Parent; p != nil; p = p.Parent {
		pos = pos.Add(p.Position)
	}
	return pos
}

// AttachTo sets the node's parent. Panics if the link would create a cycle.
func (n *Node) AttachTo(parent *Node) {
	for p := parent; p != nil; p = p.Parent {
		if p == n {
			panic("maple: attaching node would create a cycle")
		}
	}
	n.Parent = parent
}
