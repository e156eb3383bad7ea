// node_test.go
package ttree

import "testing"

func Test_Depth_LeafIsOne(t *testing.T) {
	d, err := Depth(leaf(1, 2, 3))
	if err != nil || d != 1 {
		t.Fatalf("want 1, got %d (%v)", d, err)
	}
}

func Test_Depth_TwoLevelGrid(t *testing.T) {
	children := make([]Node, 16)
	for i := range children {
		sub := make([]Node, 16)
		for j := range sub {
			sub[j] = leaf(float64(16*i + j))
		}
		children[i] = branch(sub...)
	}
	d, err := Depth(branch(children...))
	if err != nil || d != 3 {
		t.Fatalf("want 3, got %d (%v)", d, err)
	}
}

func Test_Depth_MaxOverUnevenChildren(t *testing.T) {
	n := branch(leaf(1), branch(branch(leaf(2))), leaf(3))
	d, err := Depth(n)
	if err != nil || d != 4 {
		t.Fatalf("want 4, got %d (%v)", d, err)
	}
}

func Test_Depth_EmptyBranch(t *testing.T) {
	for _, n := range []Node{branch(), branch(leaf(1), branch())} {
		if _, err := Depth(n); !IsStructural(err) {
			t.Fatalf("want structure error, got %v", err)
		}
	}
}

func Test_Len(t *testing.T) {
	if got := Len(leaf(1, 2, 3)); got != 3 {
		t.Fatalf("leaf Len: want 3, got %d", got)
	}
	if got := Len(branch(leaf(1), leaf(2))); got != 2 {
		t.Fatalf("branch Len: want 2, got %d", got)
	}
}

// The terminal-shape thresholds: one entry is a sparse single sample,
// up to four entries is one quadrant group, anything above is descended.
func Test_LeafShapeThresholds(t *testing.T) {
	if !isSingleEntry(leaf(7)) || isSingleEntry(leaf(1, 2)) {
		t.Fatalf("isSingleEntry thresholds wrong")
	}
	if !isLeafShape(leaf(1, 2, 3, 4)) {
		t.Fatalf("4-entry node must be leaf-shaped")
	}
	if isLeafShape(leaf(1, 2, 3, 4, 5)) {
		t.Fatalf("5-entry node must not be leaf-shaped")
	}
	if !isLeafShape(branch(leaf(1), leaf(2))) {
		t.Fatalf("2-child branch is a terminal group")
	}
}
