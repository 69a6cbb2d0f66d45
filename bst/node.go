package bst

// Node is a node of a binary search tree.
//
// Nodes are handed out read-only; the tree is the only party modifying them.
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the value stored at n.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}
