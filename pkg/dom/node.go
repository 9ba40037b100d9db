package dom

import (
	"fmt"
	"strings"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindComment              // Comment or placeholder
	KindFragment             // Grouping without wrapper
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// NamespaceSVG is the namespace of SVG elements.
const NamespaceSVG = "svg"

// Node is a constructed UI node.
type Node struct {
	Kind      Kind
	Tag       string
	Namespace string
	Attrs     Attrs
	Text      string
	Children  []*Node

	// Props holds values assigned after construction by SetProp and SetProps.
	Props map[string]any
	// Handlers holds event handlers by event name, in attachment order.
	Handlers map[string][]any
}

// Attr is a static attribute.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// Get returns the value of the named attribute.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Marker is a comment handed to a component as data.
type Marker struct {
	Type  Kind
	Value string
}

// Prop is one entry of an ordered props object. A spread entry carries the
// object to spread in Value and has no Key.
type Prop struct {
	Key    string
	Value  any
	Spread bool
}

// Props is an ordered props object.
type Props []Prop

// Resolve flattens the props into a map, applying entries in order so later
// entries win.
func (p Props) Resolve() map[string]any {
	out := make(map[string]any, len(p))
	for _, prop := range p {
		if !prop.Spread {
			out[prop.Key] = prop.Value
			continue
		}
		for k, v := range spreadEntries(prop.Value) {
			out[k] = v
		}
	}
	return out
}

// Get returns the resolved value of key.
func (p Props) Get(key string) (any, bool) {
	v, ok := p.Resolve()[key]
	return v, ok
}

// spreadEntries converts a spread operand to a map.
func spreadEntries(v any) map[string]any {
	switch obj := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return obj
	case map[string]string:
		out := make(map[string]any, len(obj))
		for k, s := range obj {
			out[k] = s
		}
		return out
	case Props:
		return obj.Resolve()
	case Attrs:
		out := make(map[string]any, len(obj))
		for _, a := range obj {
			out[a.Name] = a.Value
		}
		return out
	default:
		panic(fmt.Sprintf("dom: cannot spread value of type %T", v))
	}
}

// Component renders props and children data into a node.
type Component func(props Props, children []any) *Node

// Child returns the i-th child, or nil.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Clone returns a deep copy of the node. Props and handlers are copied
// shallowly per node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := *n
	if n.Attrs != nil {
		out.Attrs = append(Attrs(nil), n.Attrs...)
	}
	if n.Props != nil {
		out.Props = make(map[string]any, len(n.Props))
		for k, v := range n.Props {
			out.Props[k] = v
		}
	}
	if n.Handlers != nil {
		out.Handlers = make(map[string][]any, len(n.Handlers))
		for k, v := range n.Handlers {
			out.Handlers[k] = append([]any(nil), v...)
		}
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return &out
}

// String returns a compact markup rendering of the node, for debugging.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindText:
		b.WriteString(n.Text)
	case KindComment:
		b.WriteString("<!--" + n.Text + "-->")
	case KindFragment:
		for _, c := range n.Children {
			c.write(b)
		}
	case KindElement:
		b.WriteString("<" + n.Tag)
		for _, a := range n.Attrs {
			fmt.Fprintf(b, " %s=%q", a.Name, a.Value)
		}
		b.WriteString(">")
		for _, c := range n.Children {
			c.write(b)
		}
		b.WriteString("</" + n.Tag + ">")
	}
}
