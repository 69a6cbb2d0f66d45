/*
Package treefile loads trees of integers from plain text files.

A tree file holds one record per line. A record is a sequence of integers,
separated by whitespace. Empty lines are skipped, and lines starting with '#'
are comments:

	# three binary search trees
	50 30 70 20 40
	8 3 10
	7

A Reader scans a file in a background goroutine and broadcasts every record
to all of its subscribers. The stream of records is terminated by an end
message carrying the scanning error, if any. Builders for binary search trees
and hierarchy trees consume the stream; more than one builder may listen to
a single file.

For hierarchy files, the first record names the root. Every following record
is a pair "child parent".

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package treefile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
