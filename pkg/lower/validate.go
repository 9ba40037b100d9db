package lower

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/domgen/internal/markup"
	"github.com/vango-dev/domgen/pkg/tree"
)

// validate checks the whole literal before anything is emitted, so a
// literal either lowers completely or contributes nothing to its unit.
func (lw *lowering) validate(lit *tree.Literal) error {
	switch lit.Kind {
	case tree.LiteralElement:
		if lit.Element == nil {
			return lw.fail("E101", "element literal %d has no element payload", lit.ID)
		}
		return lw.validateElement(lit.Element, 0)
	case tree.LiteralComponent:
		if lit.Component == nil {
			return lw.fail("E101", "component literal %d has no component payload", lit.ID)
		}
		return lw.validateComponent(lit.Component, 0)
	case tree.LiteralFragment:
		if lit.Fragment == nil {
			return lw.fail("E101", "fragment literal %d has no fragment payload", lit.ID)
		}
		return lw.validateFragment(lit.Fragment, 0)
	default:
		return lw.fail("E100", "literal %d has kind %s", lit.ID, lit.Kind)
	}
}

// validateElement checks an element literal whose root sits at depth.
func (lw *lowering) validateElement(el *tree.ElementInfo, depth int) error {
	if el.Static == nil {
		return lw.fail("E101", "element literal has no static tree")
	}
	if err := lw.validateStatic(el.Static, depth); err != nil {
		return err
	}

	for i, b := range el.Dynamic {
		target, ok := el.Static.Resolve(b.Address)
		if !ok {
			return lw.fail("E102", "binding %d: address %s is outside the static tree", i, b.Address)
		}
		if target.Kind != tree.KindElement {
			return lw.fail("E102", "binding %d: address %s is a %s node", i, b.Address, target.Kind)
		}

		switch b.Kind {
		case tree.BindProps:
			for _, p := range b.Props {
				if err := lw.validateProp(p); err != nil {
					return err
				}
			}
		case tree.BindExpr:
			if err := lw.checkExpr(b.Expr.Src); err != nil {
				return err
			}
		case tree.BindComponent:
			if b.Component == nil {
				return lw.fail("E101", "binding %d: component binding has no component", i)
			}
			if err := lw.validateComponent(b.Component, depth+len(b.Address)+1); err != nil {
				return err
			}
		default:
			return lw.fail("E105", "binding %d at %s has kind %s", i, b.Address, b.Kind)
		}
	}
	return nil
}

func (lw *lowering) validateComponent(c *tree.ComponentInfo, depth int) error {
	if depth >= lw.opts.MaxDepth {
		return lw.fail("E104", "component at depth %d exceeds maxDepth %d", depth, lw.opts.MaxDepth)
	}
	if strings.TrimSpace(c.Tag.Src) == "" {
		return lw.fail("E101", "component literal has no tag expression")
	}
	if err := lw.checkExpr(c.Tag.Src); err != nil {
		return err
	}
	for _, p := range c.Dynamic.Props {
		if err := lw.validateProp(p); err != nil {
			return err
		}
	}
	return lw.validateChildren(c.Dynamic.Children, depth)
}

func (lw *lowering) validateFragment(f *tree.FragmentInfo, depth int) error {
	if depth >= lw.opts.MaxDepth {
		return lw.fail("E104", "fragment at depth %d exceeds maxDepth %d", depth, lw.opts.MaxDepth)
	}
	return lw.validateChildren(f.Dynamic, depth)
}

// validateChildren checks the dynamic children of a component or fragment
// that sits at depth.
func (lw *lowering) validateChildren(children tree.Children, depth int) error {
	for _, pos := range sortedKeys(children) {
		ch := children[pos]
		switch ch.Kind {
		case tree.ChildExpr:
			if err := lw.checkExpr(ch.Expr.Src); err != nil {
				return err
			}
		case tree.ChildElement:
			if ch.Element == nil {
				return lw.fail("E101", "child %d: element child has no element", pos)
			}
			if err := lw.validateElement(ch.Element, depth+1); err != nil {
				return err
			}
		case tree.ChildComponent:
			if ch.Component == nil {
				return lw.fail("E101", "child %d: component child has no component", pos)
			}
			if err := lw.validateComponent(ch.Component, depth+1); err != nil {
				return err
			}
		default:
			return lw.fail("E110", "child %d has kind %s", pos, ch.Kind)
		}
	}
	return nil
}

func (lw *lowering) validateProp(p tree.Prop) error {
	switch p.Kind {
	case tree.PropLiteral:
		if p.Key == "" {
			return lw.fail("E103", "prop with literal value %q has no key", p.Value)
		}
		return nil
	case tree.PropExpr:
		if p.Key == "" {
			return lw.fail("E103", "prop with expression %q has no key", p.Value)
		}
		return lw.checkExpr(p.Value)
	case tree.PropSpread:
		return lw.checkExpr(p.Value)
	default:
		return lw.fail("E103", "prop %q has kind %s", p.Key, p.Kind)
	}
}

func (lw *lowering) checkExpr(src string) error {
	_, err := lw.parseExpr(src)
	return err
}

// staticFrame is a pending node of the iterative static tree walk.
type staticFrame struct {
	node  *tree.StaticNode
	addr  tree.Address
	depth int
}

// validateStatic walks the static tree without recursion so that hostile
// nesting is reported as E104 instead of exhausting the stack.
func (lw *lowering) validateStatic(root *tree.StaticNode, depth int) error {
	stack := []staticFrame{{node: root, depth: depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node == nil {
			return lw.fail("E106", "nil static node at %s", f.addr)
		}
		if f.depth >= lw.opts.MaxDepth {
			return lw.fail("E104", "static node at %s exceeds maxDepth %d", f.addr, lw.opts.MaxDepth)
		}

		switch f.node.Kind {
		case tree.KindElement:
			if f.node.Tag == "" {
				return lw.fail("E106", "element at %s has no tag", f.addr)
			}
		case tree.KindText, tree.KindComment:
			if len(f.node.Children) > 0 {
				return lw.fail("E106", "%s node at %s has children", f.node.Kind, f.addr)
			}
		default:
			return lw.fail("E106", "node at %s has kind %s", f.addr, f.node.Kind)
		}

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, staticFrame{
				node:  f.node.Children[i],
				addr:  f.addr.Child(i),
				depth: f.depth + 1,
			})
		}
	}
	if lw.opts.TemplateMode {
		return lw.checkTemplate(root)
	}
	return nil
}

// checkTemplate renders root as the runtime will receive it, parses it back
// with the runtime's parser and requires the same shape: every node keeps
// its kind, tag, namespace and number of children. The first node that
// differs is reported, since a reshaped template would move the addresses
// that bindings resolve.
func (lw *lowering) checkTemplate(root *tree.StaticNode) error {
	src, err := lw.renderer.RenderToString(root)
	if err != nil {
		return lw.fail("E123", "serializing static tree: %v", err)
	}
	parsed, err := markup.ParseFragment(src, lw.rootSVG(root))
	if err != nil {
		return lw.fail("E123", "template does not parse back to one root: %v", err)
	}

	type pair struct {
		want *tree.StaticNode
		got  *html.Node
		addr tree.Address
		svg  bool
	}
	stack := []pair{{want: root, got: parsed, svg: lw.rootSVG(root)}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if reason := shapeMismatch(p.want, p.got, p.svg); reason != "" {
			return lw.fail("E123", "template changes shape at %s: %s", p.addr, reason)
		}
		if p.want.Kind != tree.KindElement {
			continue
		}
		got := markup.Children(p.got)
		if len(got) != len(p.want.Children) {
			return lw.fail("E123", "template changes shape at %s: <%s> has %d children after parsing, want %d",
				p.addr, p.want.Tag, len(got), len(p.want.Children))
		}
		for i := len(got) - 1; i >= 0; i-- {
			c := p.want.Children[i]
			svg := false
			if c.Kind == tree.KindElement {
				svg = lw.childSVG(p.want.Tag, p.svg, c.Tag)
			}
			stack = append(stack, pair{want: c, got: got[i], addr: p.addr.Child(i), svg: svg})
		}
	}
	lw.templates[root] = src
	return nil
}

// shapeMismatch describes how a parsed node differs from the static node it
// was rendered from, or returns "" when they agree.
func shapeMismatch(want *tree.StaticNode, got *html.Node, svg bool) string {
	switch want.Kind {
	case tree.KindText:
		if got.Type != html.TextNode {
			return fmt.Sprintf("text parsed as %s", nodeType(got))
		}
	case tree.KindComment:
		if got.Type != html.CommentNode {
			return fmt.Sprintf("comment parsed as %s", nodeType(got))
		}
	case tree.KindElement:
		if got.Type != html.ElementNode {
			return fmt.Sprintf("<%s> parsed as %s", want.Tag, nodeType(got))
		}
		if !strings.EqualFold(got.Data, want.Tag) {
			return fmt.Sprintf("<%s> parsed as <%s>", want.Tag, got.Data)
		}
		ns := ""
		if svg {
			ns = "svg"
		}
		if got.Namespace != ns {
			return fmt.Sprintf("<%s> parsed in namespace %q, want %q", want.Tag, got.Namespace, ns)
		}
	}
	return ""
}

func nodeType(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return "text"
	case html.CommentNode:
		return "a comment"
	case html.ElementNode:
		return "<" + n.Data + ">"
	default:
		return "another node"
	}
}
