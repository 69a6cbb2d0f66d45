package bst

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children of inner nodes are drawn as
// empty circles, so left and right links can be told apart.
func (t *Tree[T]) ToDot(w io.Writer) error {
	if t == nil || w == nil {
		return fmt.Errorf("%w: ToDot needs a tree and a writer", arbor.ErrIllegalArguments)
	}
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	nilid := 0
	t.Walk(func(node *Node[T], depth int) bool {
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%v\"%s];\n", ID, node.value, nodeDotStyles(node.IsLeaf()))
		if node.IsLeaf() {
			return true
		}
		for _, child := range []*Node[T]{node.left, node.right} {
			if child == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return true
	})
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("bst DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
