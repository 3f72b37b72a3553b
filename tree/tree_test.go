package tree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildSample() *Node[int] {
	// root(1)
	//   a(2)
	//     a1(4), a2(5)
	//   b(3)
	root := New("root", 1)
	a := New("a", 2)
	b := New("b", 3)
	root.Attach(a)
	root.Attach(b)
	a.Attach(New("a1", 4))
	a.Attach(New("a2", 5))
	return root
}

func TestAttach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.tree")
	defer teardown()
	//
	root := buildSample()
	if root.ChildCount() != 2 {
		t.Fatalf("root has %d children, expected 2", root.ChildCount())
	}
	a := root.Children()[0]
	if a.ID() != "a" || a.Parent() != root {
		t.Error("first child not attached correctly")
	}
	if a.Attach(a.Children()[0]) {
		t.Error("re-attaching an existing child should be refused")
	}
	if !a.Children()[1].IsLeaf() {
		t.Error("expected a2 to be a leaf")
	}
	if a.Children()[0].Root() != root {
		t.Error("grandchild does not find the tree root")
	}
}

func TestAttachMovesSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.tree")
	defer teardown()
	//
	root := buildSample()
	a, b := root.Children()[0], root.Children()[1]
	a2 := a.Children()[1]
	if !b.Attach(a2) {
		t.Fatal("moving a node between parents failed")
	}
	if a.ChildCount() != 1 {
		t.Errorf("old parent still has %d children", a.ChildCount())
	}
	if a2.Parent() != b {
		t.Error("moved node does not point to its new parent")
	}
}

func TestDetach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.tree")
	defer teardown()
	//
	root := buildSample()
	a := root.Children()[0]
	if !root.Detach(a) {
		t.Fatal("detaching a child failed")
	}
	if !a.IsRoot() {
		t.Error("detached node should be the root of its own subtree")
	}
	if a.ChildCount() != 2 {
		t.Error("detaching should keep the subtree intact")
	}
	if root.Detach(a) {
		t.Error("detaching a non-child should be refused")
	}
	if root.ChildCount() != 1 {
		t.Errorf("root has %d children after detach", root.ChildCount())
	}
}

func TestTraversePrunes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.tree")
	defer teardown()
	//
	root := buildSample()
	var visited []string
	root.Traverse(func(node *Node[int]) bool {
		visited = append(visited, node.ID())
		return node.ID() != "a" // do not descend below a
	})
	if got := strings.Join(visited, " "); got != "root a b" {
		t.Errorf("traversal visited %q", got)
	}
}

func TestCollectDescends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.tree")
	defer teardown()
	//
	root := buildSample()
	even := root.Collect(func(node *Node[int]) bool {
		return node.Value()%2 == 0
	})
	if len(even) != 2 {
		t.Fatalf("collected %d nodes, expected 2", len(even))
	}
	if even[0].ID() != "a" || even[1].ID() != "a1" {
		t.Errorf("collected %s and %s in traversal order", even[0].ID(), even[1].ID())
	}
}

func TestStringRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.tree")
	defer teardown()
	//
	root := New("r", "x")
	root.Attach(New("c", "y"))
	s := root.String()
	t.Logf("tree =\n%s", s)
	if !strings.Contains(s, "r(x") || !strings.Contains(s, "c(y)") {
		t.Errorf("unexpected rendering %q", s)
	}
}
