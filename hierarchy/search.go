package hierarchy

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor"
)

// breadthFirst is the level-order traversal underlying all searches.
//
// The visited set is keyed by node identity, not by value: distinct nodes
// holding equal values are all visited. A node which has already been
// expanded is never enqueued again, so the traversal visits every reachable
// node at most once, even for a corrupted tree containing a cycle.
// Traversal stops as soon as fn returns false.
func (t *Tree[T]) breadthFirst(fn func(node *Node[T], depth int) bool) {
	if t.IsEmpty() {
		return
	}
	type entry struct {
		node  *Node[T]
		depth int
	}
	queue := []entry{{t.root, 0}}
	visited := make(map[*Node[T]]struct{})
	for len(queue) > 0 {
		e := queue[0]
		queue[0] = entry{}
		queue = queue[1:]
		if _, seen := visited[e.node]; seen {
			continue
		}
		if !fn(e.node, e.depth) {
			return
		}
		visited[e.node] = struct{}{}
		for _, ch := range e.node.children {
			if _, seen := visited[ch]; !seen {
				queue = append(queue, entry{ch, e.depth + 1})
			}
		}
	}
}

// BreadthFirstFind searches the tree in level order and returns the first node
// holding target.
func (t *Tree[T]) BreadthFirstFind(target T) (*Node[T], bool) {
	if t.IsEmpty() {
		return nil, false
	}
	var found *Node[T]
	t.breadthFirst(func(node *Node[T], _ int) bool {
		if t.cfg.Compare(node.value, target) == 0 {
			found = node
			return false
		}
		return true
	})
	return found, found != nil
}

// Walk visits all nodes in level order, passing each node together with its
// depth, the root having depth 0. Walking stops as soon as fn returns false.
func (t *Tree[T]) Walk(fn func(node *Node[T], depth int) bool) {
	if fn == nil {
		return
	}
	t.breadthFirst(fn)
}

// Levels returns the values of the tree grouped by depth. Within a level,
// values appear in breadth-first order.
func (t *Tree[T]) Levels() [][]T {
	var levels [][]T
	t.breadthFirst(func(node *Node[T], depth int) bool {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], node.value)
		return true
	})
	return levels
}

// Height returns the number of levels of the tree, where 0 means empty and
// 1 means a single root node.
func (t *Tree[T]) Height() int {
	height := 0
	t.breadthFirst(func(_ *Node[T], depth int) bool {
		height = max(height, depth+1)
		return true
	})
	return height
}

// PrintLevels writes a level-order listing of the tree to w. For every node
// with children there is one line
//
//	value -> child1 child2 …
//
// Leaves do not get a line of their own. Printing does not modify the tree.
func (t *Tree[T]) PrintLevels(w io.Writer) error {
	if t == nil || w == nil {
		return fmt.Errorf("%w: PrintLevels needs a tree and a writer", arbor.ErrIllegalArguments)
	}
	var err error
	t.breadthFirst(func(node *Node[T], _ int) bool {
		if len(node.children) == 0 {
			return true
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%v ->", node.value)
		for _, ch := range node.children {
			fmt.Fprintf(&sb, " %v", ch.value)
		}
		sb.WriteByte('\n')
		_, err = io.WriteString(w, sb.String())
		return err == nil
	})
	return err
}
