/*
Package render outputs trees of package bst and package hierarchy to consoles.

There are two kinds of output. ASCII trees draw one node per line, indented by
depth:

	10
	├── 3
	├── 5
	└── 8
	    ├── 80
	    └── 81

Level listings print one line per tree level, values aligned in columns and
colored by depth, wrapping lines at the configured width:

	 0: 10
	 1: 3  5  8
	 2: 80 81

Column widths are measured in fixed-width positions (“en”s) as terminals
display them, so labels with East Asian wide characters line up correctly.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
