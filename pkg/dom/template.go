package dom

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/vango-dev/domgen/internal/markup"
)

// Template parses a serialized static tree once and returns a factory that
// yields a fresh deep copy on every call. With svg set the markup is parsed
// inside an <svg> element so that its root lands in the SVG namespace.
//
// Template panics if html does not have exactly one root node; generated
// code hoists templates to package level, so this fails at program start.
func Template(src string, svg ...bool) func() *Node {
	root, err := parseTemplate(src, len(svg) > 0 && svg[0])
	if err != nil {
		panic(err)
	}
	return func() *Node {
		return root.Clone()
	}
}

func parseTemplate(src string, svg bool) (*Node, error) {
	root, err := markup.ParseFragment(src, svg)
	if err != nil {
		return nil, fmt.Errorf("dom: template %w", err)
	}
	return convert(root), nil
}

// convert copies a parsed HTML node into a Node tree.
func convert(n *html.Node) *Node {
	switch n.Type {
	case html.TextNode:
		return CreateText(n.Data)
	case html.CommentNode:
		return &Node{Kind: KindComment, Text: n.Data}
	case html.ElementNode:
		out := &Node{Kind: KindElement, Tag: n.Data, Namespace: n.Namespace}
		for _, a := range n.Attr {
			out.Attrs = append(out.Attrs, Attr{Name: a.Key, Value: a.Val})
		}
		children := markup.Children(n)
		out.Children = make([]*Node, 0, len(children))
		for _, c := range children {
			out.Children = append(out.Children, convert(c))
		}
		return out
	default:
		return nil
	}
}
