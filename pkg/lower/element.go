package lower

import (
	"go/ast"

	"github.com/vango-dev/domgen/pkg/tree"
)

// element lowers an element literal to
//
//	func() *dom.Node {
//		_el := <skeleton>
//		<one group of instructions per binding, in binding order>
//		return _el
//	}()
func (lw *lowering) element(el *tree.ElementInfo) (ast.Expr, error) {
	skel, err := lw.skeleton.materialize(lw, el.Static)
	if err != nil {
		return nil, err
	}

	root := lw.unit.UniqueName("_el")
	stmts := []ast.Stmt{define(root, skel)}

	for _, b := range el.Dynamic {
		bound, err := lw.binding(root.Name, b)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, bound...)
	}

	stmts = append(stmts, &ast.ReturnStmt{Results: []ast.Expr{ast.NewIdent(root.Name)}})
	return lw.b.iife(stmts), nil
}

// binding emits the instructions of one dynamic binding. The address is
// resolved once; a binding with several props resolves it into a local.
func (lw *lowering) binding(root string, b tree.Binding) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	target := func() ast.Expr { return lw.b.getChild(ast.NewIdent(root), b.Address) }

	switch b.Kind {
	case tree.BindProps:
		ref := target
		if len(b.Props) > 1 && len(b.Address) > 0 {
			local := lw.unit.UniqueName("_node")
			stmts = append(stmts, define(local, target()))
			ref = func() ast.Expr { return ast.NewIdent(local.Name) }
		}
		for _, p := range b.Props {
			s, err := lw.prop(ref(), p)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, s)
		}
	case tree.BindExpr:
		value, err := lw.parseExpr(b.Expr.Src)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, lw.b.appendChild(value, target()))
	case tree.BindComponent:
		value, err := lw.component(b.Component)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, lw.b.appendChild(value, target()))
	default:
		return nil, lw.fail("E105", "binding kind %s", b.Kind)
	}
	return stmts, nil
}

// prop emits one prop entry: a spread assigns every entry of its object,
// an event key attaches a handler and anything else sets a single prop.
func (lw *lowering) prop(target ast.Expr, p tree.Prop) (ast.Stmt, error) {
	if p.Kind == tree.PropSpread {
		obj, err := lw.parseExpr(p.Value)
		if err != nil {
			return nil, err
		}
		return lw.b.setProps(target, obj), nil
	}

	value, err := lw.propValue(p)
	if err != nil {
		return nil, err
	}
	if lw.classifier.IsEvent(p.Key) {
		return lw.b.on(target, lw.classifier.EventName(p.Key), value), nil
	}
	return lw.b.setProp(target, p.Key, value), nil
}

func (lw *lowering) propValue(p tree.Prop) (ast.Expr, error) {
	if p.Kind == tree.PropLiteral {
		return str(p.Value), nil
	}
	return lw.parseExpr(p.Value)
}
