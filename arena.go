package slc

// None marks a missing cluster reference: no parent yet, or no neighbour past
// a chain boundary. It lies outside the valid index range.
const None = -1

// Node is one entry of the cluster arena. The first n nodes are leaves whose
// index equals the original point index; the rest are merge nodes in the order
// they were created.
type Node struct {
	// Left and Right are the merged children. A leaf has both set to its own id.
	Left, Right int

	// Center is the representative value: the point value for a leaf, the
	// configured CenterRule applied to the children for a merge node.
	Center float64

	// Size is the number of leaves under the node.
	Size int

	// Height is the distance key consumed by the merge that created the node.
	// Leaves have height 0.
	Height float64

	// Parent is the merge node this one was consumed by, or None.
	Parent int

	// Prev and Next are the active neighbours in the left-to-right chain, or
	// None at a boundary. They are only meaningful while the node is unmerged.
	Prev, Next int

	// Lo and Hi are the first and last sorted ranks covered by the node.
	Lo, Hi int
}

// IsMerged reports whether the node has been consumed by a later merge.
func (c *Node) IsMerged() bool {
	return c.Parent != None
}

// arena is the append-only node store. Indices into it are stable for its
// lifetime; capacity for 2n-1 nodes is reserved up front.
type arena struct {
	nodes []Node
}

// newArena builds the n leaves and links each to the leaf before and after it
// in sorted order.
func newArena(points []float64, order, rank []int) *arena {
	n := len(points)
	total := 2*n - 1
	if total < 0 {
		total = 0
	}
	a := &arena{nodes: make([]Node, n, total)}

	for i, v := range points {
		pos := rank[i]
		prev, next := None, None
		if pos > 0 {
			prev = order[pos-1]
		}
		if pos+1 < n {
			next = order[pos+1]
		}
		a.nodes[i] = Node{
			Left:   i,
			Right:  i,
			Center: v,
			Size:   1,
			Parent: None,
			Prev:   prev,
			Next:   next,
			Lo:     pos,
			Hi:     pos,
		}
	}
	return a
}

func (a *arena) len() int {
	return len(a.nodes)
}

func (a *arena) at(id int) *Node {
	return &a.nodes[id]
}

// hasNeighbour reports whether id refers to a live cluster past a chain
// boundary. It is the single check used when repairing either side.
func (a *arena) hasNeighbour(id int) bool {
	return id != None && !a.nodes[id].IsMerged()
}

// merge appends the node formed by joining the adjacent clusters l and r,
// marks both children merged and returns the new id. Chain repair of the
// outer neighbours is left to the caller.
func (a *arena) merge(l, r int, center, height float64) int {
	id := len(a.nodes)
	left, right := a.nodes[l], a.nodes[r]
	a.nodes = append(a.nodes, Node{
		Left:   l,
		Right:  r,
		Center: center,
		Size:   left.Size + right.Size,
		Height: height,
		Parent: None,
		Prev:   left.Prev,
		Next:   right.Next,
		Lo:     left.Lo,
		Hi:     right.Hi,
	})
	a.nodes[l].Parent = id
	a.nodes[r].Parent = id
	return id
}
