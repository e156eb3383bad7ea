// node.go: the tree node sum type and its shape predicates.
package ttree

// Node is either a *Leaf or a *Branch. The tag is fixed at build time;
// nothing downstream inspects element types to decide.
type Node interface {
	node()
}

// Leaf holds raw scattering values for one angular cell, in file order.
type Leaf struct {
	Values []float64
}

// Branch holds an ordered list of child nodes. Order encodes spatial
// quadrant identity and must never be reordered.
type Branch struct {
	Children []Node
}

func (*Leaf) node()   {}
func (*Branch) node() {}

// Len is the element-granular size of a node: value count for a leaf,
// child count for a branch. The index tables address slots at this
// granularity.
func Len(n Node) int {
	switch node := n.(type) {
	case *Leaf:
		return len(node.Values)
	case *Branch:
		return len(node.Children)
	}
	return 0
}

// isSingleEntry: a sparse one-sample node; lookups return it untouched.
func isSingleEntry(n Node) bool { return Len(n) == 1 }

// isLeafShape: at most 4 entries, the size of one terminal quadrant group.
// Nodes above this threshold are descended into; nodes at or below it are
// matched as-is.
func isLeafShape(n Node) bool { return Len(n) <= 4 }

// Depth returns the maximum nesting level reachable from n: a leaf
// contributes 1, a branch 1 + the max over its children. A branch with no
// children has no defined depth and yields a DiagStructure error.
func Depth(n Node) (int, error) {
	switch node := n.(type) {
	case *Leaf:
		return 1, nil
	case *Branch:
		if len(node.Children) == 0 {
			return 0, &Error{Kind: DiagStructure, Msg: "empty branch has no depth"}
		}
		max := 0
		for _, ch := range node.Children {
			d, err := Depth(ch)
			if err != nil {
				return 0, err
			}
			if d > max {
				max = d
			}
		}
		return 1 + max, nil
	}
	return 0, &Error{Kind: DiagStructure, Msg: "unknown node type"}
}
