package hierarchy

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor"
)

// ToDot outputs the structure of a tree in Graphviz DOT format (for debugging
// purposes). Nodes are numbered in level order; parent links are drawn as
// dashed edges.
func (t *Tree[T]) ToDot(w io.Writer) error {
	if t == nil || w == nil {
		return fmt.Errorf("%w: ToDot needs a tree and a writer", arbor.ErrIllegalArguments)
	}
	ids := make(map[*Node[T]]int)
	var nodelist, edgelist strings.Builder
	t.breadthFirst(func(node *Node[T], depth int) bool {
		ID := len(ids) + 1
		ids[node] = ID
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%v\"%s];\n", ID, node.value, nodeDotStyles(node.IsLeaf()))
		if p, ok := ids[node.parent]; ok {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", p, ID)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [style=dashed,color=gray];\n", ID, p)
		}
		return true
	})
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("hierarchy DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}
