// validate.go: whole-tree arity checking against the variant's tables.
package ttree

// Validate walks the whole tree once and checks that every node a lookup
// could descend into has the arity the variant's index tables assume:
// nodes larger than one quadrant group must have exactly 16 slots
// (anisotropic) or 8 (isotropic), and no branch may be empty. Data that
// passes cannot produce a structure error at lookup time.
//
// Validation is optional; Lookup performs its own slot checks either way.
func (t *Tree) Validate() error {
	return t.validateNode(t.root, t.fanout())
}

func (t *Tree) fanout() int {
	if t.variant == Isotropic {
		return 8
	}
	return 16
}

func (t *Tree) validateNode(n Node, fanout int) error {
	size := Len(n)
	if size > 4 && size != fanout {
		return structuralf("node has %d slots, %s levels hold 4 or %d", size, t.variant, fanout)
	}
	br, ok := n.(*Branch)
	if !ok {
		return nil
	}
	if size == 0 {
		return &Error{Kind: DiagStructure, Msg: "empty branch"}
	}
	for _, ch := range br.Children {
		if err := t.validateNode(ch, fanout); err != nil {
			return err
		}
	}
	return nil
}
