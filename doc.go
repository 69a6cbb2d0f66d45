/*
Package arbor offers ordered, in-memory trees: a binary search tree over totally
ordered values and an N-ary hierarchy tree with parent/child navigation.

Trees

Both trees live in sub-packages and share the small contract defined here:

	bst.Tree[T]        binary search tree, no rebalancing
	hierarchy.Tree[T]  N-ary tree, children kept in ascending order

Values are ordered by a comparison function carried in a Config. For types
satisfying cmp.Ordered the constructors of the sub-packages use cmp.Compare,
so

	t := bst.New[int]()

is all that is needed. Other types bring their own comparator:

	t, err := bst.NewWithConfig(arbor.Config[Member]{
		Compare: func(a, b Member) int { return a.Age - b.Age },
	})

Neither tree is balanced. A binary search tree fed with sorted input degenerates
to a chain; all algorithms in this module are therefore iterative and will not
exhaust the call stack on deep trees.

Trees are not safe for concurrent use. Clients sharing a tree between goroutines
have to synchronize access themselves.

Errors

Operations signal errors by wrapping the constants of type TreeError, so clients
test them with errors.Is:

	ErrIllegalArguments   a missing (nil) value, an empty argument list, or
	                      an operation which requires a non-empty tree
	ErrNotFound           a referenced value (e.g., a parent) is absent
	ErrStructure          an invariant check failed after a mutation

Absence of a value for Remove or Contains is a regular outcome and is reported
as a boolean result.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the arbor module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrNotFound is flagged whenever an operation references a value which is not
// part of the tree, and the operation cannot proceed without it.
const ErrNotFound = TreeError("value not found")

// ErrStructure signals a violated structural invariant of a tree.
const ErrStructure = TreeError("structural inconsistency")
