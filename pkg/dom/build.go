package dom

import (
	"fmt"
)

// CreateElement creates an element. A nil child becomes an empty comment
// placeholder so that child positions match the template path.
func CreateElement(tag string, attrs Attrs, children []any, svg ...bool) *Node {
	node := &Node{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: make([]*Node, 0, len(children)),
	}
	if len(svg) > 0 && svg[0] {
		node.Namespace = NamespaceSVG
	}
	for _, child := range children {
		if child == nil {
			node.Children = append(node.Children, &Node{Kind: KindComment})
			continue
		}
		appendValue(node, child)
	}
	return node
}

// CreateText creates a text node.
func CreateText(value string) *Node {
	return &Node{Kind: KindText, Text: value}
}

// CreateComment creates an empty comment node.
func CreateComment() *Node {
	return &Node{Kind: KindComment}
}

// CreateFragment groups children without a wrapper element.
func CreateFragment(children []any) *Node {
	node := &Node{Kind: KindFragment, Children: make([]*Node, 0, len(children))}
	for _, child := range children {
		appendValue(node, child)
	}
	return node
}

// CreateComponent renders a component. A component returning nil yields an
// empty fragment.
func CreateComponent(component Component, props Props, children []any) *Node {
	if component == nil {
		panic("dom: CreateComponent called with a nil component")
	}
	if out := component(props, children); out != nil {
		return out
	}
	return &Node{Kind: KindFragment}
}

// SetProp assigns a single prop on node.
func SetProp(node *Node, name string, value any) {
	if node.Props == nil {
		node.Props = make(map[string]any)
	}
	node.Props[name] = value
}

// SetProps assigns every entry of object on node.
func SetProps(node *Node, object any) {
	for k, v := range spreadEntries(object) {
		SetProp(node, k, v)
	}
}

// On attaches an event handler.
func On(node *Node, event string, handler any) {
	if node.Handlers == nil {
		node.Handlers = make(map[string][]any)
	}
	node.Handlers[event] = append(node.Handlers[event], handler)
}

// GetChild resolves a child-index path against node.
func GetChild(node *Node, address []int) *Node {
	cur := node
	for depth, i := range address {
		if cur == nil || i < 0 || i >= len(cur.Children) {
			panic(fmt.Sprintf("dom: address %v does not resolve at depth %d", address, depth))
		}
		cur = cur.Children[i]
	}
	return cur
}

// AppendChild appends a computed value to parent.
func AppendChild(value any, parent *Node) {
	appendValue(parent, value)
}

// appendValue converts value to nodes and appends them. Fragments are
// spliced, slices are flattened, and scalars become text.
func appendValue(parent *Node, value any) {
	switch v := value.(type) {
	case nil:
		return
	case *Node:
		if v == nil {
			return
		}
		if v.Kind == KindFragment {
			parent.Children = append(parent.Children, v.Children...)
			return
		}
		parent.Children = append(parent.Children, v)
	case string:
		parent.Children = append(parent.Children, CreateText(v))
	case Marker:
		parent.Children = append(parent.Children, &Node{Kind: KindComment, Text: v.Value})
	case []Marker:
		for _, m := range v {
			appendValue(parent, m)
		}
	case []*Node:
		for _, c := range v {
			appendValue(parent, c)
		}
	case []any:
		for _, c := range v {
			appendValue(parent, c)
		}
	case fmt.Stringer:
		parent.Children = append(parent.Children, CreateText(v.String()))
	default:
		parent.Children = append(parent.Children, CreateText(fmt.Sprint(v)))
	}
}
