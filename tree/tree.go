// Package tree builds prefix-code trees from frequency tables and derives
// code tables from them.
//
// Trees are stored as an arena of nodes addressed by NodeID; children are
// referenced by id, so there are no pointers between nodes and no recursion
// is needed to build or walk a tree. A Tree is immutable once Build returns
// and may be shared between goroutines.
//
// # Tie-break rule
//
// Every node receives its NodeID in creation order: leaves first, in the
// insertion order of the frequency table, then each merged node as it is
// created. The builder repeatedly removes the two candidates with the smallest
// (weight, NodeID) pair; the first one removed becomes the Left child (bit 0)
// and the second the Right child (bit 1). Equal weights therefore resolve to
// the older node, which makes the tree, and every code derived from it, a
// pure function of the table contents and order.
package tree

import (
	"container/heap"
	"fmt"

	"github.com/arloliu/hufftext/freq"
)

// NodeID addresses a node in a Tree.
type NodeID int32

// NoNode marks an absent child.
const NoNode NodeID = -1

// Node is a leaf (Left and Right are NoNode) or an internal node with two children.
type Node struct {
	// Symbol is the leaf symbol; empty for internal nodes.
	Symbol string
	// Label is the concatenation of the descendant symbols, left to right.
	// It is informational only and never used to identify a node.
	Label string
	// Weight is the leaf weight or the sum of the children weights.
	Weight float64
	Left   NodeID
	Right  NodeID
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// Tree is an immutable binary prefix-code tree.
type Tree struct {
	nodes []Node
	root  NodeID
}

// Build constructs the prefix-code tree of table using a priority queue.
//
// An empty table yields the degenerate tree made of a single leaf with an empty
// symbol and zero weight. A table with one symbol yields a single-leaf tree
// whose only code is empty.
//
// Parameters:
//   - table: Frequency table; read but not modified
//
// Returns:
//   - *Tree: The built tree
func Build(table *freq.Table) *Tree {
	t, ok := leaves(table)
	if !ok {
		return t
	}

	pq := make(candidateQueue, len(t.nodes))
	for i, n := range t.nodes {
		pq[i] = candidate{id: NodeID(i), weight: n.Weight}
	}
	heap.Init(&pq)

	for pq.Len() > 1 {
		left, _ := heap.Pop(&pq).(candidate)
		right, _ := heap.Pop(&pq).(candidate)
		parent := t.merge(left.id, right.id)
		heap.Push(&pq, candidate{id: parent, weight: t.nodes[parent].Weight})
	}

	t.root = NodeID(len(t.nodes) - 1)

	return t
}

// BuildNaive constructs the same tree as Build by fully re-sorting the
// candidate list before every merge. It runs in O(k² log k) and exists as a
// reference for the tie-break rule.
func BuildNaive(table *freq.Table) *Tree {
	t, ok := leaves(table)
	if !ok {
		return t
	}

	pending := make([]candidate, len(t.nodes))
	for i, n := range t.nodes {
		pending[i] = candidate{id: NodeID(i), weight: n.Weight}
	}

	for len(pending) > 1 {
		sortCandidates(pending)
		left, right := pending[0], pending[1]
		parent := t.merge(left.id, right.id)
		pending = append(pending[2:], candidate{id: parent, weight: t.nodes[parent].Weight})
	}

	t.root = NodeID(len(t.nodes) - 1)

	return t
}

// leaves creates the leaf arena. ok is false when the returned tree is
// already complete (empty table).
func leaves(table *freq.Table) (*Tree, bool) {
	if table == nil || table.Len() == 0 {
		return &Tree{
			nodes: []Node{{Left: NoNode, Right: NoNode}},
			root:  0,
		}, false
	}

	t := &Tree{nodes: make([]Node, 0, 2*table.Len()-1)}
	for symbol, weight := range table.All() {
		t.nodes = append(t.nodes, Node{
			Symbol: symbol,
			Label:  symbol,
			Weight: weight,
			Left:   NoNode,
			Right:  NoNode,
		})
	}

	if len(t.nodes) == 1 {
		t.root = 0
		return t, false
	}

	return t, true
}

func (t *Tree) merge(left, right NodeID) NodeID {
	l, r := t.nodes[left], t.nodes[right]
	t.nodes = append(t.nodes, Node{
		Label:  l.Label + r.Label,
		Weight: l.Weight + r.Weight,
		Left:   left,
		Right:  right,
	})

	return NodeID(len(t.nodes) - 1)
}

// Root returns the id of the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node with the given id. It panics if id is out of range.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsSingleLeaf reports whether the root is a leaf, i.e. the alphabet has at
// most one symbol and every code is empty.
func (t *Tree) IsSingleLeaf() bool {
	return t.nodes[t.root].IsLeaf()
}

// Child returns the left child for bit 0 and the right child for bit 1.
func (t *Tree) Child(id NodeID, bit bool) NodeID {
	if bit {
		return t.nodes[id].Right
	}

	return t.nodes[id].Left
}

// Leaves returns the leaf ids from left to right.
func (t *Tree) Leaves() []NodeID {
	out := make([]NodeID, 0, (len(t.nodes)+1)/2)
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[id]
		if n.IsLeaf() {
			out = append(out, id)
			continue
		}
		stack = append(stack, n.Right, n.Left)
	}

	return out
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	type frame struct {
		id    NodeID
		depth int
	}

	maxDepth := 0
	stack := []frame{{id: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.id]
		if n.IsLeaf() {
			maxDepth = max(maxDepth, f.depth)
			continue
		}
		stack = append(stack, frame{n.Right, f.depth + 1}, frame{n.Left, f.depth + 1})
	}

	return maxDepth
}

// String returns a short description used in debugging output.
func (t *Tree) String() string {
	root := t.nodes[t.root]
	return fmt.Sprintf("tree{nodes=%d leaves=%d depth=%d weight=%g}",
		len(t.nodes), len(t.Leaves()), t.Depth(), root.Weight)
}
