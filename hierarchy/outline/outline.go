/*
Package outline creates hierarchy trees from the element structure of HTML
documents.

Every element becomes one node of the tree. Nodes are labeled with the path of
the element from the document root, which makes labels unique:

	html/body/div#main/p[2]

A path segment is the element's tag name, followed by “#id” if the element
carries an id attribute, or by “[k]” if it is the k-th (k > 1) sibling with the
same tag name. Siblings sharing an id get “[k]” appended to their “#id” segment
from the second one on. Children are ordered by label, not by document order.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package outline

import (
	"fmt"
	"io"
	"path"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/hierarchy"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// FromHTML parses an HTML document and returns the outline of its elements.
func FromHTML(input io.Reader) (*hierarchy.Tree[string], error) {
	if input == nil {
		return nil, fmt.Errorf("%w: FromHTML called without input", arbor.ErrIllegalArguments)
	}
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	return FromNode(doc)
}

// FromNode returns the outline of the elements below n. If n is a document
// node, the outline starts at its first element child (usually <html>).
func FromNode(n *html.Node) (*hierarchy.Tree[string], error) {
	if n == nil {
		return nil, arbor.ErrIllegalArguments
	}
	if n.Type == html.DocumentNode {
		n = firstElement(n)
		if n == nil {
			return nil, fmt.Errorf("%w: document has no elements", arbor.ErrIllegalArguments)
		}
	} else if n.Type != html.ElementNode {
		return nil, fmt.Errorf("%w: outline needs an element or document node", arbor.ErrIllegalArguments)
	}
	tree := hierarchy.New[string]()
	root := segment(n, 1)
	if err := tree.AddRoot(root); err != nil {
		return nil, err
	}
	if err := collectElements(n, tree.Root(), tree); err != nil {
		return nil, err
	}
	tracer().Debugf("outline: %d elements", tree.Size())
	return tree, nil
}

// Base returns the last path segment of an outline label.
func Base(label string) string {
	return path.Base(label)
}

func collectElements(n *html.Node, parent *hierarchy.Node[string], tree *hierarchy.Tree[string]) error {
	tags := make(map[string]int)
	segments := make(map[string]int)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		tags[c.Data]++
		seg := segment(c, tags[c.Data])
		segments[seg]++
		if k := segments[seg]; k > 1 { // repeated id
			seg = fmt.Sprintf("%s[%d]", seg, k)
		}
		child, err := tree.AddChildTo(parent.Value()+"/"+seg, parent)
		if err != nil {
			return err
		}
		if err := collectElements(c, child, tree); err != nil {
			return err
		}
	}
	return nil
}

// segment is the path segment for element n, being the k-th sibling with its tag.
func segment(n *html.Node, k int) string {
	for _, a := range n.Attr {
		if a.Key == "id" && a.Val != "" {
			return n.Data + "#" + a.Val
		}
	}
	if k > 1 {
		return fmt.Sprintf("%s[%d]", n.Data, k)
	}
	return n.Data
}

func firstElement(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}
