package tree

import "fmt"

// NodeKind is the static node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <svg>, etc.
	KindText                    // Literal text
	KindComment                 // <!-- ... -->
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// StaticAttr is a literal attribute or prop: a name and its literal value.
type StaticAttr struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// StaticNode is a node of the purely static part of an element literal.
type StaticNode struct {
	Kind     NodeKind      `yaml:"kind"`
	Tag      string        `yaml:"tag,omitempty"`
	Attrs    []StaticAttr  `yaml:"attrs,omitempty"`
	Children []*StaticNode `yaml:"children,omitempty"`
	// Text is the content of KindText and KindComment nodes.
	Text string `yaml:"text,omitempty"`
}

// Element returns a static element node.
func Element(tag string, attrs []StaticAttr, children ...*StaticNode) *StaticNode {
	return &StaticNode{Kind: KindElement, Tag: tag, Attrs: attrs, Children: children}
}

// Text returns a static text node.
func Text(s string) *StaticNode {
	return &StaticNode{Kind: KindText, Text: s}
}

// Comment returns a static comment node.
func Comment(s string) *StaticNode {
	return &StaticNode{Kind: KindComment, Text: s}
}

// Attrs builds a StaticAttr list from alternating name/value pairs.
func Attrs(pairs ...string) []StaticAttr {
	if len(pairs)%2 != 0 {
		panic("tree.Attrs: odd number of arguments")
	}
	attrs := make([]StaticAttr, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		attrs = append(attrs, StaticAttr{Name: pairs[i], Value: pairs[i+1]})
	}
	return attrs
}

// Resolve returns the node at addr, or false if addr leaves the tree.
// An empty address resolves to n itself.
func (n *StaticNode) Resolve(addr Address) (*StaticNode, bool) {
	cur := n
	for _, i := range addr {
		if cur == nil || i < 0 || i >= len(cur.Children) {
			return nil, false
		}
		cur = cur.Children[i]
	}
	return cur, cur != nil
}

// Depth returns the number of levels in the subtree rooted at n.
func (n *StaticNode) Depth() int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Walk calls fn for n and every descendant in document order, passing each
// node's address. Returning false from fn skips the node's children.
func (n *StaticNode) Walk(fn func(addr Address, node *StaticNode) bool) {
	n.walk(nil, fn)
}

func (n *StaticNode) walk(addr Address, fn func(Address, *StaticNode) bool) {
	if n == nil || !fn(addr, n) {
		return
	}
	for i, c := range n.Children {
		c.walk(addr.Child(i), fn)
	}
}

// Address is a depth-first child-index path from a subtree root.
type Address []int

// Child returns a new address extended by index i.
func (a Address) Child(i int) Address {
	out := make(Address, len(a)+1)
	copy(out, a)
	out[len(a)] = i
	return out
}

// String returns the address in bracket notation, e.g. "[0 2]".
func (a Address) String() string {
	return fmt.Sprint([]int(a))
}
