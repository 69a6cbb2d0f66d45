package hierarchy

import (
	"fmt"

	"github.com/npillmayer/arbor"
)

// Check validates structural tree invariants:
//
//   - the root has no parent,
//   - every child's parent link points to the node holding it,
//   - children are sorted ascending,
//   - no node is reachable twice (no sharing, no cycles),
//   - the number of reachable nodes matches Size.
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
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", arbor.ErrStructure, t.root.value)
	}
	seen := map[*Node[T]]struct{}{t.root: {}}
	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, ch := range n.children {
			if ch == nil {
				return fmt.Errorf("%w: nil child at index %d of %v", arbor.ErrStructure, i, n.value)
			}
			if _, dup := seen[ch]; dup {
				return fmt.Errorf("%w: node %v reachable more than once", arbor.ErrStructure, ch.value)
			}
			seen[ch] = struct{}{}
			if ch.parent != n {
				return fmt.Errorf("%w: child %v does not link back to parent %v",
					arbor.ErrStructure, ch.value, n.value)
			}
			if i > 0 && t.cfg.Compare(n.children[i-1].value, ch.value) > 0 {
				return fmt.Errorf("%w: children of %v not sorted at index %d",
					arbor.ErrStructure, n.value, i)
			}
			stack = append(stack, ch)
		}
	}
	if len(seen) != t.count {
		return fmt.Errorf("%w: count mismatch (%d nodes != %d)", arbor.ErrStructure, len(seen), t.count)
	}
	return nil
}
