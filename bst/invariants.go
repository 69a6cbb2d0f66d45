package bst

import (
	"fmt"

	"github.com/npillmayer/arbor"
)

// Check validates structural tree invariants: every value is strictly greater
// than all values in its left subtree and strictly less than all values in its
// right subtree, and the node count matches Size.
//
// Check is used in tests and, if the tree's configuration asks for it, after
// every mutation.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", arbor.ErrIllegalArguments)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with count=%d", arbor.ErrStructure, t.count)
		}
		return nil
	}
	type bounded struct {
		node   *Node[T]
		lo, hi *Node[T] // nearest ancestors bounding node from below/above
	}
	var nodes int
	stack := []bounded{{node: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++
		if nodes > t.count {
			return fmt.Errorf("%w: more nodes reachable than counted (%d)",
				arbor.ErrStructure, t.count)
		}
		if b.lo != nil && t.cfg.Compare(b.node.value, b.lo.value) <= 0 {
			return fmt.Errorf("%w: value %v not greater than ancestor %v",
				arbor.ErrStructure, b.node.value, b.lo.value)
		}
		if b.hi != nil && t.cfg.Compare(b.node.value, b.hi.value) >= 0 {
			return fmt.Errorf("%w: value %v not less than ancestor %v",
				arbor.ErrStructure, b.node.value, b.hi.value)
		}
		if b.node.left != nil {
			stack = append(stack, bounded{node: b.node.left, lo: b.lo, hi: b.node})
		}
		if b.node.right != nil {
			stack = append(stack, bounded{node: b.node.right, lo: b.node, hi: b.hi})
		}
	}
	if nodes != t.count {
		return fmt.Errorf("%w: count mismatch (%d nodes != %d)", arbor.ErrStructure, nodes, t.count)
	}
	return nil
}
