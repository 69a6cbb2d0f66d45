package bst

import "iter"

// All returns an iterator over all values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		var stack []*Node[T]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// ForEach walks values in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEach(fn func(value T) bool) {
	if fn == nil {
		return
	}
	for v := range t.All() {
		if !fn(v) {
			return
		}
	}
}

// InOrder returns all values of the tree in ascending order.
// For an empty tree the result is nil.
func (t *Tree[T]) InOrder() []T {
	var values []T
	if !t.IsEmpty() {
		values = make([]T, 0, t.count)
	}
	for v := range t.All() {
		values = append(values, v)
	}
	return values
}

// Walk visits nodes in pre-order (node, left subtree, right subtree), passing
// each node together with its depth, the root having depth 0. If fn returns
// false, the subtree of the node is skipped.
func (t *Tree[T]) Walk(fn func(node *Node[T], depth int) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	type entry struct {
		node  *Node[T]
		depth int
	}
	stack := []entry{{t.root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(e.node, e.depth) {
			continue
		}
		if e.node.right != nil {
			stack = append(stack, entry{e.node.right, e.depth + 1})
		}
		if e.node.left != nil {
			stack = append(stack, entry{e.node.left, e.depth + 1})
		}
	}
}
