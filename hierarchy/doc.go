/*
Package hierarchy provides an N-ary tree whose nodes keep their children in
ascending order.

Values are attached either as the root or as a child of a node holding a given
parent value. Parents are located by breadth-first search, so the first node
in level order holding the parent value receives the child. Values need not be
unique; equal values in different nodes are different nodes.

Removing a value prunes the first node holding it together with its entire
subtree. Size always reports the number of nodes reachable from the root, so a
removal decrements it by the size of the pruned subtree.

Every node knows its parent. The parent link is for navigation only: a node is
owned by its parent's child list, and the link is cleared when a node is pruned.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package hierarchy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
