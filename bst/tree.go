package bst

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/arbor"
)

// Tree is an unbalanced binary search tree.
//
// A tree created by
//
//	bst.New[int]()
//
// is empty and ready to use. The zero value of Tree is not usable, as it lacks
// a comparison function.
//
//	Operation     |   average    |  worst case
//	--------------+--------------+------------
//	Insert        |   O(log n)   |   O(n)
//	Remove        |   O(log n)   |   O(n)
//	Contains      |   O(log n)   |   O(n)
//	Size          |   O(1)       |   O(1)
//	InOrder       |   O(n)       |   O(n)
type Tree[T any] struct {
	cfg   arbor.Config[T]
	root  *Node[T]
	count int // number of nodes
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

// FromValues creates a tree and inserts values in the given order.
func FromValues[T cmp.Ordered](values ...T) (*Tree[T], error) {
	t := New[T]()
	if err := t.InsertAll(values...); err != nil {
		return nil, err
	}
	return t, nil
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

// IsEmpty reports whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Size returns the number of values in the tree.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Clear removes all values from the tree.
func (t *Tree[T]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.count = 0
}

// Add inserts value into the tree. It is Insert without the result flag.
func (t *Tree[T]) Add(value T) error {
	_, err := t.Insert(value)
	return err
}

// Insert inserts value into the tree. If an equal value is already present,
// the tree is left unchanged and Insert returns false.
func (t *Tree[T]) Insert(value T) (bool, error) {
	if err := t.validate("Insert", value); err != nil {
		return false, err
	}
	link := &t.root
	for *link != nil {
		c := t.cfg.Compare(value, (*link).value)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			tracer().Debugf("bst: value %v already present, insert dropped", value)
			return false, nil
		}
	}
	*link = &Node[T]{value: value}
	t.count++
	return true, t.checkAfter("Insert")
}

// InsertAll inserts values in the given order. Duplicates are dropped.
// Calling InsertAll without values is an error.
func (t *Tree[T]) InsertAll(values ...T) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: InsertAll called without values", arbor.ErrIllegalArguments)
	}
	for _, v := range values {
		if _, err := t.Insert(v); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes value from the tree. It returns false if value is not present,
// leaving the tree unchanged.
func (t *Tree[T]) Remove(value T) (bool, error) {
	if err := t.validate("Remove", value); err != nil {
		return false, err
	}
	link := t.locate(value)
	if link == nil {
		return false, nil
	}
	t.unlink(link)
	t.count--
	assert(t.count >= 0, "bst: node count dropped below zero")
	if t.root == nil {
		tracer().Debugf("bst: removed last value, tree is empty")
	}
	return true, t.checkAfter("Remove")
}

// Contains reports whether value is stored in the tree.
func (t *Tree[T]) Contains(value T) (bool, error) {
	if err := t.validate("Contains", value); err != nil {
		return false, err
	}
	return t.locate(value) != nil, nil
}

// Min returns the smallest value of the tree.
// Calling Min on an empty tree is an error.
func (t *Tree[T]) Min() (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, fmt.Errorf("%w: Min of empty tree", arbor.ErrIllegalArguments)
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, nil
}

// Max returns the largest value of the tree.
// Calling Max on an empty tree is an error.
func (t *Tree[T]) Max() (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, fmt.Errorf("%w: Max of empty tree", arbor.ErrIllegalArguments)
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, nil
}

// Height returns the number of levels of the tree, where 0 means empty and
// 1 means a single root node.
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	height := 0
	level := []*Node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*Node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// --- Internals -------------------------------------------------------------

func (t *Tree[T]) validate(op string, value T) error {
	if t == nil {
		return fmt.Errorf("%w: %s called on nil tree", arbor.ErrIllegalArguments, op)
	}
	assert(t.cfg.Compare != nil, "bst: tree has no comparison function; use a constructor")
	return arbor.CheckArgument(op, value)
}

// locate returns the link pointing to the node holding value, or nil.
func (t *Tree[T]) locate(value T) **Node[T] {
	link := &t.root
	for *link != nil {
		c := t.cfg.Compare(value, (*link).value)
		if c == 0 {
			return link
		}
		if c < 0 {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	return nil
}

// unlink removes the node *link points to, keeping the ordering intact.
func (t *Tree[T]) unlink(link **Node[T]) {
	node := *link
	assert(node != nil, "bst: unlink called for nil link")
	switch {
	case node.left == nil:
		*link = node.right
	case node.right == nil:
		*link = node.left
	default:
		succ := &node.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		tracer().Debugf("bst: replacing %v by successor %v", node.value, (*succ).value)
		node.value = (*succ).value
		*succ = (*succ).right
	}
}

func (t *Tree[T]) checkAfter(op string) error {
	if !t.cfg.Check {
		return nil
	}
	if err := t.Check(); err != nil {
		tracer().Errorf("bst: %s left tree inconsistent: %v", op, err)
		return err
	}
	return nil
}
