// Package markup parses serialized static trees the way the runtime does,
// so the code generator can check its templates against the same parser.
package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses src in <body> context and returns its single root.
// With svg set the markup is parsed inside an <svg> element so that the
// root lands in the SVG namespace.
func ParseFragment(src string, svg bool) (*html.Node, error) {
	doc := src
	if svg {
		doc = "<svg>" + src + "</svg>"
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(doc), body)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}
	if svg {
		if len(nodes) != 1 {
			return nil, fmt.Errorf("%q: unexpected svg wrapper", src)
		}
		nodes = Children(nodes[0])
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("%q must have exactly one root node, got %d", src, len(nodes))
	}
	return nodes[0], nil
}

// Children returns the element, text and comment children of n. Other node
// types have no counterpart in a static tree.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode, html.TextNode, html.CommentNode:
			out = append(out, c)
		}
	}
	return out
}
