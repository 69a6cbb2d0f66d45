package hierarchy

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeTree(t *testing.T, root int) *Tree[int] {
	t.Helper()
	cfg := arbor.Ordered[int]()
	cfg.Check = true
	tree, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tree.AddRoot(root); err != nil {
		t.Fatalf("AddRoot(%d) failed: %v", root, err)
	}
	return tree
}

func mustAdd(t *testing.T, tree *Tree[int], parent int, values ...int) {
	t.Helper()
	for _, v := range values {
		if err := tree.AddChild(v, parent); err != nil {
			t.Fatalf("AddChild(%d, %d) failed: %v", v, parent, err)
		}
	}
}

func childValues[T any](n *Node[T]) []T {
	var values []T
	for ch := range n.Children() {
		values = append(values, ch.Value())
	}
	return values
}

func TestChildrenAreSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := makeTree(t, 10)
	mustAdd(t, tree, 10, 5, 8, 3)
	if got := childValues(tree.Root()); !slices.Equal(got, []int{3, 5, 8}) {
		t.Fatalf("expected children [3 5 8], got %v", got)
	}
	if tree.Size() != 4 {
		t.Errorf("expected size 4, is %d", tree.Size())
	}
	for ch := range tree.Root().Children() {
		if ch.Parent() != tree.Root() || ch.Depth() != 1 {
			t.Errorf("child %d not linked to root", ch.Value())
		}
	}
}

func TestRemoveChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := makeTree(t, 10)
	mustAdd(t, tree, 10, 5, 8, 3)
	removed, err := tree.Remove(5)
	if err != nil || !removed {
		t.Fatalf("expected Remove(5) to succeed, is %v/%v", removed, err)
	}
	if found, _ := tree.Contains(5); found {
		t.Errorf("expected 5 to be gone")
	}
	if got := childValues(tree.Root()); !slices.Equal(got, []int{3, 8}) {
		t.Errorf("expected children [3 8], got %v", got)
	}
	if tree.Size() != 3 {
		t.Errorf("expected size 3, is %d", tree.Size())
	}
}

func TestRemovePrunesSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := makeTree(t, 1)
	mustAdd(t, tree, 1, 2, 3)
	mustAdd(t, tree, 2, 20, 21)
	mustAdd(t, tree, 21, 210)
	mustAdd(t, tree, 3, 30)
	if tree.SubtreeSize(2) != 4 {
		t.Errorf("expected subtree of 2 to hold 4 nodes, is %d", tree.SubtreeSize(2))
	}
	node, _ := tree.BreadthFirstFind(2)
	removed, err := tree.Remove(2)
	if err != nil || !removed {
		t.Fatalf("expected Remove(2) to succeed, is %v/%v", removed, err)
	}
	for _, v := range []int{2, 20, 21, 210} {
		if found, _ := tree.Contains(v); found {
			t.Errorf("expected pruned value %d to be unreachable", v)
		}
	}
	if tree.Size() != 3 {
		t.Errorf("expected size 3 after pruning 4 nodes, is %d", tree.Size())
	}
	if node.Parent() != nil {
		t.Errorf("expected pruned node to be detached from its parent")
	}
	if got := tree.Levels(); len(got) != 3 || !slices.Equal(got[1], []int{3}) {
		t.Errorf("unexpected levels after prune: %v", got)
	}
}

func TestRemoveRootEmptiesTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := makeTree(t, 1)
	mustAdd(t, tree, 1, 2)
	removed, err := tree.Remove(1)
	if err != nil || !removed {
		t.Fatalf("expected Remove(1) to succeed, is %v/%v", removed, err)
	}
	if !tree.IsEmpty() || tree.Size() != 0 {
		t.Fatalf("expected empty tree, size is %d", tree.Size())
	}
	if err := tree.AddRoot(7); err != nil {
		t.Errorf("expected new root to be accepted, got %v", err)
	}
}

func TestRemoveAbsent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	empty := New[int]()
	if removed, err := empty.Remove(3); removed || err != nil {
		t.Errorf("expected false/nil on empty tree, is %v/%v", removed, err)
	}
	tree := makeTree(t, 1)
	mustAdd(t, tree, 1, 2)
	if removed, err := tree.Remove(3); removed || err != nil {
		t.Errorf("expected false/nil for absent value, is %v/%v", removed, err)
	}
	if tree.Size() != 2 {
		t.Errorf("expected size 2, is %d", tree.Size())
	}
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New[string]()
	if found, err := tree.Contains("x"); found || err != nil {
		t.Errorf("expected false/nil on empty tree, is %v/%v", found, err)
	}
	_ = tree.Add("root")
	_ = tree.Add("b")
	_ = tree.Add("a")
	_ = tree.AddChild("deep", "a")
	for _, v := range []string{"root", "a", "b", "deep"} {
		if found, _ := tree.Contains(v); !found {
			t.Errorf("expected tree to contain %q", v)
		}
	}
	if found, _ := tree.Contains("c"); found {
		t.Errorf("did not expect tree to contain %q", "c")
	}
}

func TestAddRootTwiceFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := makeTree(t, 1)
	if err := tree.AddRoot(2); !errors.Is(err, arbor.ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	if tree.Root().Value() != 1 || tree.Size() != 1 {
		t.Errorf("expected tree to be unchanged")
	}
}

func TestAddChildWithoutParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	if err := New[int]().AddChild(1, 0); !errors.Is(err, arbor.ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty tree, got %v", err)
	}
	tree := makeTree(t, 1)
	if err := tree.AddChild(5, 4); !errors.Is(err, arbor.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if tree.Size() != 1 {
		t.Errorf("expected tree to be unchanged, size is %d", tree.Size())
	}
}

func TestNilValuesAreRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	type item struct{ n int }
	tree, err := NewWithConfig(arbor.Config[*item]{
		Compare: func(a, b *item) int { return a.n - b.n },
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := tree.AddRoot(nil); !errors.Is(err, arbor.ErrIllegalArguments) {
		t.Errorf("expected nil root to be rejected, got %v", err)
	}
	_ = tree.AddRoot(&item{1})
	if err := tree.AddChild(&item{2}, nil); !errors.Is(err, arbor.ErrIllegalArguments) {
		t.Errorf("expected nil parent to be rejected, got %v", err)
	}
	if _, err := tree.Contains(nil); !errors.Is(err, arbor.ErrIllegalArguments) {
		t.Errorf("expected nil lookup to be rejected, got %v", err)
	}
}

func TestEqualValuesAreDistinctNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := makeTree(t, 0)
	mustAdd(t, tree, 0, 1, 2)
	mustAdd(t, tree, 2, 1) // second node holding 1, at depth 2
	count := 0
	tree.Walk(func(n *Node[int], depth int) bool {
		if n.Value() == 1 {
			count++
		}
		return true
	})
	if count != 2 {
		t.Fatalf("expected both nodes holding 1 to be visited, visited %d", count)
	}
	node, ok := tree.BreadthFirstFind(1)
	if !ok || node.Depth() != 1 {
		t.Fatalf("expected shallow node holding 1 to be found first")
	}
	_, _ = tree.Remove(1)
	node, ok = tree.BreadthFirstFind(1)
	if !ok || node.Depth() != 2 {
		t.Errorf("expected deep node holding 1 to survive removal of the shallow one")
	}
	if tree.Size() != 3 {
		t.Errorf("expected size 3, is %d", tree.Size())
	}
}

func TestBreadthFirstTerminatesOnCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New[int]()
	_ = tree.AddRoot(1)
	_ = tree.AddChild(2, 1)
	_ = tree.AddChild(3, 2)
	three, _ := tree.BreadthFirstFind(3)
	three.children = append(three.children, tree.root) // corrupt on purpose
	if _, ok := tree.BreadthFirstFind(99); ok {
		t.Errorf("did not expect to find 99")
	}
	visits := 0
	tree.Walk(func(*Node[int], int) bool {
		visits++
		return true
	})
	if visits != 3 {
		t.Errorf("expected 3 visits, got %d", visits)
	}
	if err := tree.Check(); !errors.Is(err, arbor.ErrStructure) {
		t.Errorf("expected cycle to be reported as ErrStructure, got %v", err)
	}
}

func TestCheckDetectsUnsortedChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New[int]()
	_ = tree.AddRoot(1)
	_ = tree.AddChild(2, 1)
	_ = tree.AddChild(3, 1)
	tree.root.children[0], tree.root.children[1] = tree.root.children[1], tree.root.children[0]
	err := tree.Check()
	if !errors.Is(err, arbor.ErrStructure) || !strings.Contains(err.Error(), "not sorted") {
		t.Errorf("expected unsorted children to be detected, got %v", err)
	}
}

func TestPrintLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := makeTree(t, 10)
	mustAdd(t, tree, 10, 5, 8, 3)
	mustAdd(t, tree, 8, 80, 81)
	var sb strings.Builder
	if err := tree.PrintLevels(&sb); err != nil {
		t.Fatal(err)
	}
	want := "10 -> 3 5 8\n8 -> 80 81\n"
	if sb.String() != want {
		t.Errorf("unexpected listing:\n%s\nwant:\n%s", sb.String(), want)
	}
	if tree.Height() != 3 {
		t.Errorf("expected height 3, is %d", tree.Height())
	}
	levels := tree.Levels()
	if len(levels) != 3 || !slices.Equal(levels[2], []int{80, 81}) {
		t.Errorf("unexpected levels: %v", levels)
	}
}

type familyMember struct {
	name string
	age  int
}

func (m familyMember) String() string {
	return fmt.Sprintf("%s, %d", m.name, m.age)
}

func TestCustomOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	byAge := func(a, b familyMember) int { return a.age - b.age }
	family, err := NewWithConfig(arbor.Config[familyMember]{Compare: byAge, Check: true})
	if err != nil {
		t.Fatal(err)
	}
	grandma := familyMember{"Rose", 81}
	_ = family.AddRoot(grandma)
	_ = family.AddChild(familyMember{"Paul", 52}, grandma)
	_ = family.AddChild(familyMember{"Anne", 49}, grandma)
	_ = family.AddChild(familyMember{"Tom", 12}, familyMember{"", 49})
	var sb strings.Builder
	_ = family.PrintLevels(&sb)
	t.Logf("\n%s", sb.String())
	want := "Rose, 81 -> Anne, 49 Paul, 52\nAnne, 49 -> Tom, 12\n"
	if sb.String() != want {
		t.Errorf("unexpected listing:\n%s", sb.String())
	}
}

func TestRandomHierarchyKeepsInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	rnd := rand.New(rand.NewPCG(7, 11))
	tree := makeTree(t, 0)
	values := []int{0}
	for i := 1; i < 500; i++ {
		parent := values[rnd.IntN(len(values))]
		v := rnd.IntN(1000) + 1
		mustAdd(t, tree, parent, v)
		values = append(values, v)
		if i%50 == 0 {
			victim := values[1+rnd.IntN(len(values)-1)]
			before := tree.Size()
			pruned := tree.SubtreeSize(victim)
			if _, err := tree.Remove(victim); err != nil {
				t.Fatal(err)
			}
			if tree.Size() != before-pruned {
				t.Fatalf("expected size %d after pruning, is %d", before-pruned, tree.Size())
			}
			values = values[:0]
			tree.Walk(func(n *Node[int], _ int) bool {
				values = append(values, n.Value())
				return true
			})
		}
	}
	visits := 0
	tree.Walk(func(*Node[int], int) bool {
		visits++
		return true
	})
	if visits != tree.Size() {
		t.Errorf("visited %d nodes, size is %d", visits, tree.Size())
	}
}

func TestDeepChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	const n = 3000
	tree := New[int]()
	_ = tree.AddRoot(0)
	for i := 1; i < n; i++ {
		if err := tree.AddChild(i, i-1); err != nil {
			t.Fatal(err)
		}
	}
	if tree.Height() != n {
		t.Errorf("expected height %d, is %d", n, tree.Height())
	}
	if removed, _ := tree.Remove(1); !removed || tree.Size() != 1 {
		t.Errorf("expected pruning at depth 1 to leave the root only, size=%d", tree.Size())
	}
}

func TestToDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := makeTree(t, 1)
	mustAdd(t, tree, 1, 2, 3)
	var sb strings.Builder
	if err := tree.ToDot(&sb); err != nil {
		t.Fatal(err)
	}
	dot := sb.String()
	if !strings.Contains(dot, `"1" -> "2";`) || !strings.Contains(dot, `"1" -> "3";`) {
		t.Errorf("expected edges from root to children, got\n%s", dot)
	}
}

func TestAddChildTo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := makeTree(t, 1)
	a, err := tree.AddChildTo(2, tree.Root())
	if err != nil {
		t.Fatalf("AddChildTo failed: %v", err)
	}
	if _, err := tree.AddChildTo(2, a); err != nil {
		t.Fatalf("AddChildTo failed: %v", err)
	}
	if tree.Size() != 3 || tree.Height() != 3 {
		t.Errorf("expected size 3 and height 3, have %d and %d", tree.Size(), tree.Height())
	}
	other := makeTree(t, 1)
	if _, err := tree.AddChildTo(5, other.Root()); !errors.Is(err, arbor.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign parent, have %v", err)
	}
	if _, err := tree.AddChildTo(5, nil); !errors.Is(err, arbor.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil parent, have %v", err)
	}
	if tree.Size() != 3 {
		t.Errorf("failed calls changed size to %d", tree.Size())
	}
}
