package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/bst"
	"github.com/npillmayer/arbor/hierarchy"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Levels writes a level listing of a hierarchy tree. config may be nil, in
// which case defaults are used (no colors).
func Levels[T any](w io.Writer, tree *hierarchy.Tree[T], config *Config) error {
	if w == nil || tree == nil {
		return fmt.Errorf("%w: render.Levels needs a tree and a writer", arbor.ErrIllegalArguments)
	}
	var levels [][]string
	for _, level := range tree.Levels() {
		labels := make([]string, len(level))
		for i, v := range level {
			labels[i] = label(v)
		}
		levels = append(levels, labels)
	}
	return writeLevels(w, levels, config.normalized())
}

// BSTLevels writes a level listing of a binary search tree, values of a level
// ordered from left to right. config may be nil, in which case defaults are
// used (no colors).
func BSTLevels[T any](w io.Writer, tree *bst.Tree[T], config *Config) error {
	if w == nil || tree == nil {
		return fmt.Errorf("%w: render.BSTLevels needs a tree and a writer", arbor.ErrIllegalArguments)
	}
	var levels [][]string
	tree.Walk(func(n *bst.Node[T], depth int) bool {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], label(n.Value()))
		return true
	})
	return writeLevels(w, levels, config.normalized())
}

func writeLevels(w io.Writer, levels [][]string, config *Config) error {
	if len(levels) == 0 {
		_, err := io.WriteString(w, emptyTree)
		return err
	}
	colwidth := 1
	for _, level := range levels {
		for _, l := range level {
			colwidth = max(colwidth, displayWidth(l, config.Context))
		}
	}
	prefixWidth := len(fmt.Sprintf("%2d: ", len(levels)-1))
	indent := strings.Repeat(" ", prefixWidth)
	tracer().Debugf("render: %d levels, column width %d", len(levels), colwidth)
	var out strings.Builder
	for depth, level := range levels {
		fmt.Fprintf(&out, "%*d: ", prefixWidth-2, depth)
		c := config.Palette[depth%len(config.Palette)]
		linelen := prefixWidth
		var cells []string
		flush := func() {
			out.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
			out.WriteByte('\n')
			cells = cells[:0]
		}
		for _, l := range level {
			if len(cells) > 0 && linelen+colwidth+1 > config.LineWidth {
				flush()
				out.WriteString(indent)
				linelen = prefixWidth
			}
			pad := strings.Repeat(" ", colwidth-displayWidth(l, config.Context))
			if config.Color {
				l = c.Sprint(l)
			}
			cells = append(cells, l+pad)
			linelen += colwidth + 1
		}
		flush()
	}
	_, err := io.WriteString(w, out.String())
	return err
}

var graphemeSetup sync.Once

// displayWidth returns the width of s in en. ASCII text is measured by its
// length, as uax11 reports digits as wide.
func displayWidth(s string, context *uax11.Context) int {
	if isASCII(s) {
		return len(s)
	}
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
