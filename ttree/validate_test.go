// validate_test.go
package ttree

import "testing"

func Test_Validate_FullAnisotropicTree(t *testing.T) {
	if err := flatBlockTree4(t).Validate(); err != nil {
		t.Fatalf("valid tree rejected: %v", err)
	}
	if err := singlesTree4(t).Validate(); err != nil {
		t.Fatalf("sparse tree rejected: %v", err)
	}
}

func Test_Validate_FullIsotropicTree(t *testing.T) {
	if err := flatBlockTree3(t).Validate(); err != nil {
		t.Fatalf("valid tree rejected: %v", err)
	}
}

func Test_Validate_WrongArity(t *testing.T) {
	// 10 slots fits neither a quadrant group nor a 16-way level
	children := make([]Node, 16)
	for i := range children {
		children[i] = leaf(float64(i))
	}
	children[5] = leaf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	tree, err := NewTree(branch(children...), Anisotropic)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	if err := tree.Validate(); !IsStructural(err) {
		t.Fatalf("want structure error, got %v", err)
	}
}

func Test_Validate_IsotropicRejectsSixteen(t *testing.T) {
	// a 16-slot node is valid anisotropic data but not isotropic
	root := branch(flatBlockTree4(t).Root().(*Branch).Children...)
	tree, err := NewTree(root, Isotropic)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	if err := tree.Validate(); !IsStructural(err) {
		t.Fatalf("want structure error, got %v", err)
	}
}

func Test_Validate_EmptyBranchBelowLeafShapedGroup(t *testing.T) {
	// NewTree already rejects empty branches via depth; exercise Validate
	// directly on a tree built around one.
	tree := &Tree{root: branch(leaf(1), branch(), leaf(2)), depth: 2, variant: Anisotropic}
	if err := tree.Validate(); !IsStructural(err) {
		t.Fatalf("want structure error, got %v", err)
	}
}
