/*
Package bst provides an unbalanced binary search tree over totally ordered values.

The tree keeps values unique: inserting a value which compares equal to a value
already stored is a no-op. Size always reports the number of nodes actually
present.

Deletion of a node with two children uses the in-order successor, i.e. the
smallest value of the node's right subtree. The successor's value moves up into
the deleted node, and the successor node is unlinked from the right subtree.

No rebalancing is done. Inserting values in ascending order produces a chain of
right children with height equal to the number of values. All operations are
iterative, so chain-shaped trees cost time but no stack space.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

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
