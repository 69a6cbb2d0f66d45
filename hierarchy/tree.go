package hierarchy

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"github.com/npillmayer/arbor"
)

// Tree is an N-ary tree with ordered children.
//
// A tree created by
//
//	hierarchy.New[int]()
//
// is empty and ready to use. The zero value of Tree is not usable, as it lacks
// a comparison function.
type Tree[T any] struct {
	cfg   arbor.Config[T]
	root  *Node[T]
	count int // number of nodes reachable from root
}

var _ arbor.Container[int] = (*Tree[int])(nil)

// New creates an empty tree for a type with a natural order.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{cfg: arbor.Ordered[T]()}
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig[T any](cfg arbor.Config[T]) (*Tree[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() arbor.Config[T] {
	return t.cfg
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Clear removes all nodes from the tree.
func (t *Tree[T]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.count = 0
}

// AddRoot creates the root node of an empty tree. Calling AddRoot for a tree
// which already has a root is an error.
func (t *Tree[T]) AddRoot(value T) error {
	if err := t.validate("AddRoot", value); err != nil {
		return err
	}
	if t.root != nil {
		return fmt.Errorf("%w: AddRoot(%v): root already set", arbor.ErrIllegalArguments, value)
	}
	t.root = &Node[T]{value: value}
	t.count = 1
	tracer().Debugf("hierarchy: new root %v", value)
	return t.checkAfter("AddRoot")
}

// Add inserts value as the root of an empty tree, or as a child of the root
// otherwise.
func (t *Tree[T]) Add(value T) error {
	if err := t.validate("Add", value); err != nil {
		return err
	}
	if t.root == nil {
		return t.AddRoot(value)
	}
	t.attach(t.root, value)
	return t.checkAfter("Add")
}

// AddChild inserts value as a child of the first node (in breadth-first order)
// holding parent. If no such node exists, AddChild returns an error wrapping
// arbor.ErrNotFound and leaves the tree unchanged.
func (t *Tree[T]) AddChild(value, parent T) error {
	if err := t.validate("AddChild", value); err != nil {
		return err
	}
	if err := arbor.CheckArgument("AddChild", parent); err != nil {
		return err
	}
	p, ok := t.BreadthFirstFind(parent)
	if !ok {
		return fmt.Errorf("%w: AddChild(%v): no parent %v", arbor.ErrNotFound, value, parent)
	}
	t.attach(p, value)
	return t.checkAfter("AddChild")
}

// AddChildTo inserts value as a child of node parent, which must be a node of
// t, and returns the new node. Unlike AddChild it does not search for the
// parent.
func (t *Tree[T]) AddChildTo(value T, parent *Node[T]) (*Node[T], error) {
	if err := t.validate("AddChildTo", value); err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: AddChildTo(%v) without parent node", arbor.ErrIllegalArguments, value)
	}
	top := parent
	for top.parent != nil {
		top = top.parent
	}
	if top != t.root {
		return nil, fmt.Errorf("%w: AddChildTo(%v): parent %v is not part of this tree",
			arbor.ErrNotFound, value, parent.value)
	}
	child := t.attach(parent, value)
	return child, t.checkAfter("AddChildTo")
}

// Remove prunes the first node (in breadth-first order) holding value, together
// with all of its descendants. It returns false if value is not present. If the
// node is the root, the tree becomes empty.
func (t *Tree[T]) Remove(value T) (bool, error) {
	if err := t.validate("Remove", value); err != nil {
		return false, err
	}
	node, ok := t.BreadthFirstFind(value)
	if !ok {
		return false, nil
	}
	pruned := subtreeSize(node)
	if node == t.root {
		t.root = nil
		t.count = 0
		tracer().Debugf("hierarchy: removed root %v, tree is empty", value)
		return true, t.checkAfter("Remove")
	}
	p := node.parent
	assert(p != nil, "hierarchy: non-root node without parent")
	i := slices.Index(p.children, node)
	assert(i >= 0, "hierarchy: node missing from its parent's children")
	p.children = slices.Delete(p.children, i, i+1)
	node.parent = nil
	t.count -= pruned
	tracer().Debugf("hierarchy: pruned %v with %d node(s)", value, pruned)
	return true, t.checkAfter("Remove")
}

// Contains reports whether a node holding value is reachable from the root.
func (t *Tree[T]) Contains(value T) (bool, error) {
	if err := t.validate("Contains", value); err != nil {
		return false, err
	}
	_, ok := t.BreadthFirstFind(value)
	return ok, nil
}

// SubtreeSize returns the number of nodes in the subtree rooted at the first
// node holding value, including that node. If value is not present,
// SubtreeSize returns 0.
func (t *Tree[T]) SubtreeSize(value T) int {
	node, ok := t.BreadthFirstFind(value)
	if !ok {
		return 0
	}
	return subtreeSize(node)
}

// --- Internals -------------------------------------------------------------

func (t *Tree[T]) validate(op string, value T) error {
	if t == nil {
		return fmt.Errorf("%w: %s called on nil tree", arbor.ErrIllegalArguments, op)
	}
	assert(t.cfg.Compare != nil, "hierarchy: tree has no comparison function; use a constructor")
	return arbor.CheckArgument(op, value)
}

// attach creates a child of p holding value. The child is placed behind all
// children comparing less or equal, keeping the child list sorted.
func (t *Tree[T]) attach(p *Node[T], value T) *Node[T] {
	child := &Node[T]{value: value, parent: p}
	i := sort.Search(len(p.children), func(i int) bool {
		return t.cfg.Compare(p.children[i].value, value) > 0
	})
	p.children = slices.Insert(p.children, i, child)
	t.count++
	tracer().Debugf("hierarchy: %v attached to %v at position %d", value, p.value, i)
	return child
}

func (t *Tree[T]) checkAfter(op string) error {
	if !t.cfg.Check {
		return nil
	}
	if err := t.Check(); err != nil {
		tracer().Errorf("hierarchy: %s left tree inconsistent: %v", op, err)
		return err
	}
	return nil
}

// subtreeSize counts the nodes of the subtree rooted at n.
func subtreeSize[T any](n *Node[T]) int {
	size := 0
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		stack = append(stack, top.children...)
	}
	return size
}
