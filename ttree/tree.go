// tree.go: the tensor-tree lookup engine.
//
// OVERVIEW
// --------
// A tensor tree subdivides the incidence domain recursively: anisotropic
// ("TensorTree4") data branches 16 ways per level in interleaved 4-tuples,
// isotropic ("TensorTree3") data branches 8 ways in interleaved pairs.
// A lookup descends from the root toward the cell containing the query,
// recentering the query coordinate by 1/2^n at recursion level n and
// choosing child slots from fixed index tables keyed on the recentered
// coordinate's sign (or magnitude band, for the isotropic variant).
//
// Two table families exist per variant: the branch tables select subtree
// slots while levels remain below the tree's depth, and the leaf tables
// select a contiguous block of value slots at the last level. The index
// sequences are format constants; each slot position encodes which spatial
// quadrant a child subtree represents.
//
// Boundary conventions that lookups and their tests rely on:
//
//   - x < 0 is strict everywhere: 0 and -0 take the non-negative tables.
//   - Recentering is always by 1/2^n, never normalized by total depth.
//   - Queries outside [-1, 1] are not clamped or rejected; the sign and
//     magnitude logic alone decides, deterministically. Supplying in-range
//     coordinates is the caller's responsibility.
//
// A built Tree is immutable; lookups share no state and may run
// concurrently.
package ttree

import (
	"fmt"
	"math"
)

// Variant selects the tensor-tree format family. It comes from the
// container's IncidentDataStructure metadata ("TensorTree4" or
// "TensorTree3") and is never inferred from tree shape.
type Variant int

const (
	// Anisotropic: 4-coordinate trees, 16-way branching.
	Anisotropic Variant = iota
	// Isotropic: 3-coordinate trees, 8-way branching on one magnitude.
	Isotropic
)

func (v Variant) String() string {
	if v == Isotropic {
		return "TensorTree3"
	}
	return "TensorTree4"
}

// Tree wraps a parsed scattering-data block with its cached depth and
// variant. Build one per data block ("Transmission Front", ...) and query
// it repeatedly.
type Tree struct {
	root    Node
	depth   int
	variant Variant
}

// NewTree wraps root, computing and caching its depth.
func NewTree(root Node, v Variant) (*Tree, error) {
	d, err := Depth(root)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root, depth: d, variant: v}, nil
}

// Parse builds a Tree straight from a data block's text.
func Parse(text string, v Variant) (*Tree, error) {
	root, err := ParseDocument(text)
	if err != nil {
		return nil, err
	}
	return NewTree(root, v)
}

func (t *Tree) Root() Node       { return t.root }
func (t *Tree) Depth() int       { return t.depth }
func (t *Tree) Variant() Variant { return t.variant }

// ----- quadrant index tables (format constants) -----

// branchOrder4 returns the subtree slots for one quadrant of a 16-way
// level: the quadrant's member from each interleaved 4-tuple.
func branchOrder4(x, y float64) [4]int {
	if x < 0 {
		if y < 0 {
			return [4]int{0, 4, 8, 12}
		}
		return [4]int{2, 6, 10, 14}
	}
	if y < 0 {
		return [4]int{1, 5, 9, 13}
	}
	return [4]int{3, 7, 11, 15}
}

// leafOrder4 returns the contiguous block of 4 value slots for one
// quadrant at the last level of a 16-slot node.
func leafOrder4(x, y float64) [4]int {
	if x < 0 {
		if y < 0 {
			return [4]int{0, 1, 2, 3}
		}
		return [4]int{4, 5, 6, 7}
	}
	if y < 0 {
		return [4]int{8, 9, 10, 11}
	}
	return [4]int{12, 13, 14, 15}
}

// branchOrder3 returns the subtree slots for one magnitude band of an
// 8-way level.
func branchOrder3(x float64) [4]int {
	if math.Abs(x) <= 0.5 {
		return [4]int{0, 2, 4, 6}
	}
	return [4]int{1, 3, 5, 7}
}

// leafOrder3 returns the contiguous block of 4 value slots for one
// magnitude band at the last level of an 8-slot node.
func leafOrder3(x float64) [4]int {
	if math.Abs(x) <= 0.5 {
		return [4]int{0, 1, 2, 3}
	}
	return [4]int{4, 5, 6, 7}
}

// recenter shifts x toward the center of the half-interval it fell in at
// recursion level n: by +1/2^n when x < 0, by -1/2^n otherwise.
func recenter(x float64, n int) float64 {
	h := math.Ldexp(1, -n)
	if x < 0 {
		return x + h
	}
	return x - h
}

// ----- traversal -----

// Lookup returns the exiting-distribution data matched by incident grid
// position (x, y) on an anisotropic tree: one result per top-level
// quadrant group examined. Each result is a *Leaf of matched values or a
// *Branch of nested matches mirroring the subdivision below that group.
func (t *Tree) Lookup(x, y float64) ([]Node, error) {
	if t.variant != Anisotropic {
		return nil, &Error{Kind: DiagStructure, Msg: "isotropic tree: use Lookup1"}
	}
	root, ok := t.root.(*Branch)
	if !ok {
		return nil, &Error{Kind: DiagStructure, Msg: "root node is not a branch"}
	}
	order := branchOrder4(x, y)
	out := make([]Node, 0, len(order))
	for _, i := range order {
		if i >= len(root.Children) {
			// Shallow roots carry fewer groups than a full 16-slot level;
			// only the groups present are examined.
			continue
		}
		res, err := t.matchChild(root.Children[i], x, y)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Lookup1 returns the matches for magnitude coordinate x on an isotropic
// tree. The top level always walks every other child starting at slot 0;
// there is no second coordinate to pick a quadrant with.
func (t *Tree) Lookup1(x float64) ([]Node, error) {
	if t.variant != Isotropic {
		return nil, &Error{Kind: DiagStructure, Msg: "anisotropic tree: use Lookup"}
	}
	root, ok := t.root.(*Branch)
	if !ok {
		return nil, &Error{Kind: DiagStructure, Msg: "root node is not a branch"}
	}
	var out []Node
	for i := 0; i < 8 && i < len(root.Children); i += 2 {
		res, err := t.matchChild(root.Children[i], x, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// matchChild applies the terminal-shape policy to one selected top-level
// child: single-sample and leaf-shaped nodes are matched whole, anything
// larger is descended into starting at level 1.
func (t *Tree) matchChild(n Node, x, y float64) (Node, error) {
	if isLeafShape(n) {
		return n, nil
	}
	return t.descend(n, x, y, 1)
}

// descend resolves the match for the query inside node n at recursion
// level. The level counter is threaded explicitly so concurrent lookups
// share nothing.
func (t *Tree) descend(n Node, x, y float64, level int) (Node, error) {
	if isSingleEntry(n) {
		// sparse single-sample cell: matched whole, no further descent
		return n, nil
	}
	x = recenter(x, level)
	if t.variant == Anisotropic {
		y = recenter(y, level)
	}
	level++

	var order [4]int
	if t.variant == Anisotropic {
		if level < t.depth {
			order = branchOrder4(x, y)
		} else {
			order = leafOrder4(x, y)
		}
	} else {
		if level < t.depth {
			order = branchOrder3(x)
		} else {
			order = leafOrder3(x)
		}
	}

	switch node := n.(type) {
	case *Leaf:
		// flat value block: the table picks 4 value slots directly
		vals := make([]float64, 0, len(order))
		for _, i := range order {
			if i >= len(node.Values) {
				return nil, structuralf("leaf has %d values, index table needs slot %d", len(node.Values), i)
			}
			vals = append(vals, node.Values[i])
		}
		return &Leaf{Values: vals}, nil

	case *Branch:
		out := make([]Node, 0, len(order))
		for _, i := range order {
			if i >= len(node.Children) {
				return nil, structuralf("branch has %d children, index table needs slot %d", len(node.Children), i)
			}
			ch := node.Children[i]
			if isLeafShape(ch) {
				out = append(out, ch)
				continue
			}
			sub, err := t.descend(ch, x, y, level)
			if err != nil {
				return nil, err
			}
			out = append(out, sub)
		}
		return &Branch{Children: out}, nil
	}
	return nil, &Error{Kind: DiagStructure, Msg: "unknown node type"}
}

func structuralf(format string, args ...interface{}) error {
	return &Error{Kind: DiagStructure, Msg: fmt.Sprintf(format, args...)}
}
