package lower

import (
	"go/ast"

	"github.com/vango-dev/domgen/pkg/tree"
)

// component lowers a component literal to
//
//	dom.CreateComponent(Tag, dom.Props{...}, []any{...})
func (lw *lowering) component(c *tree.ComponentInfo) (ast.Expr, error) {
	tag, err := lw.parseExpr(c.Tag.Src)
	if err != nil {
		return nil, err
	}
	props, err := lw.componentProps(c)
	if err != nil {
		return nil, err
	}

	var children []ast.Expr
	for _, s := range mergeChildren(c.Static.Children, c.Dynamic.Children) {
		var child ast.Expr
		if s.static != nil {
			if s.static.IsComments {
				child = lw.b.markers(s.static.Comments)
			} else {
				child = str(s.static.Text)
			}
		} else {
			child, err = lw.dynamicChild(*s.dynamic)
			if err != nil {
				return nil, err
			}
		}
		children = append(children, child)
	}

	return lw.b.createComponent(tag, props, children), nil
}

// componentProps builds the ordered dom.Props literal, or nil when the
// component has no props.
func (lw *lowering) componentProps(c *tree.ComponentInfo) (ast.Expr, error) {
	merged := mergeProps(c.Static.Props, c.Dynamic.Props)
	if len(merged) == 0 {
		return ast.NewIdent("nil"), nil
	}

	elts := make([]ast.Expr, 0, len(merged))
	for _, p := range merged {
		if p.Kind == tree.PropSpread {
			obj, err := lw.parseExpr(p.Value)
			if err != nil {
				return nil, err
			}
			elts = append(elts, &ast.CompositeLit{Elts: []ast.Expr{
				field("Value", obj),
				field("Spread", ast.NewIdent("true")),
			}})
			continue
		}
		value, err := lw.propValue(p)
		if err != nil {
			return nil, err
		}
		elts = append(elts, &ast.CompositeLit{Elts: []ast.Expr{
			field("Key", str(p.Key)),
			field("Value", value),
		}})
	}
	return &ast.CompositeLit{Type: lw.unit.Ref(typeProps), Elts: elts}, nil
}

// dynamicChild lowers a dynamic child of a component or fragment.
func (lw *lowering) dynamicChild(ch tree.Child) (ast.Expr, error) {
	switch ch.Kind {
	case tree.ChildExpr:
		return lw.parseExpr(ch.Expr.Src)
	case tree.ChildElement:
		return lw.element(ch.Element)
	case tree.ChildComponent:
		return lw.component(ch.Component)
	default:
		return nil, lw.fail("E110", "child kind %s", ch.Kind)
	}
}
