package render

import (
	"fmt"
	"io"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/bst"
	"github.com/npillmayer/arbor/hierarchy"
	"github.com/xlab/treeprint"
)

const emptyTree = "(empty)\n"

// BST writes a binary search tree as an ASCII tree. Children are tagged with
// [L] and [R], so a single child's side is visible.
func BST[T any](w io.Writer, tree *bst.Tree[T]) error {
	if w == nil || tree == nil {
		return fmt.Errorf("%w: render.BST needs a tree and a writer", arbor.ErrIllegalArguments)
	}
	if tree.IsEmpty() {
		_, err := io.WriteString(w, emptyTree)
		return err
	}
	type entry struct {
		node   *bst.Node[T]
		branch treeprint.Tree
	}
	root := treeprint.NewWithRoot(label(tree.Root().Value()))
	stack := []entry{{tree.Root(), root}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, side := range []struct {
			tag   string
			child *bst.Node[T]
		}{{"L", e.node.Left()}, {"R", e.node.Right()}} {
			if side.child == nil {
				continue
			}
			if side.child.IsLeaf() {
				e.branch.AddMetaNode(side.tag, label(side.child.Value()))
				continue
			}
			b := e.branch.AddMetaBranch(side.tag, label(side.child.Value()))
			stack = append(stack, entry{side.child, b})
		}
	}
	_, err := io.WriteString(w, root.String())
	return err
}

// Hierarchy writes a hierarchy tree as an ASCII tree, children in ascending order.
func Hierarchy[T any](w io.Writer, tree *hierarchy.Tree[T]) error {
	return HierarchyWithLabels(w, tree, func(v T) string { return label(v) })
}

// HierarchyWithLabels is Hierarchy with node labels produced by labelFn.
func HierarchyWithLabels[T any](w io.Writer, tree *hierarchy.Tree[T], labelFn func(T) string) error {
	if w == nil || tree == nil || labelFn == nil {
		return fmt.Errorf("%w: render.Hierarchy needs a tree, a writer and labels", arbor.ErrIllegalArguments)
	}
	if tree.IsEmpty() {
		_, err := io.WriteString(w, emptyTree)
		return err
	}
	type entry struct {
		node   *hierarchy.Node[T]
		branch treeprint.Tree
	}
	root := treeprint.NewWithRoot(labelFn(tree.Root().Value()))
	stack := []entry{{tree.Root(), root}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for ch := range e.node.Children() {
			if ch.IsLeaf() {
				e.branch.AddNode(labelFn(ch.Value()))
				continue
			}
			b := e.branch.AddBranch(labelFn(ch.Value()))
			stack = append(stack, entry{ch, b})
		}
	}
	_, err := io.WriteString(w, root.String())
	return err
}

func label(v any) string {
	return fmt.Sprint(v)
}
