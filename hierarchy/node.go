package hierarchy

import "iter"

// Node is a node of a hierarchy tree.
//
// Nodes are handed out read-only; the tree is the only party modifying them.
type Node[T any] struct {
	value    T
	parent   *Node[T]   // navigation only, nil for the root and for pruned nodes
	children []*Node[T] // sorted ascending by the tree's order
}

// Value returns the value stored at n.
func (n *Node[T]) Value() T {
	return n.value
}

// Parent returns the parent node of n, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}
	return n.parent
}

// ChildCount returns the number of direct children of n.
func (n *Node[T]) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i-th child of n, or nil if i is out of range.
func (n *Node[T]) Child(i int) *Node[T] {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns an iterator over the direct children of n in ascending order.
func (n *Node[T]) Children() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if n == nil {
			return
		}
		for _, ch := range n.children {
			if !yield(ch) {
				return
			}
		}
	}
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && len(n.children) == 0
}

// Depth returns the number of ancestors of n, 0 for the root.
func (n *Node[T]) Depth() int {
	depth := 0
	for p := n.Parent(); p != nil; p = p.parent {
		depth++
	}
	return depth
}
