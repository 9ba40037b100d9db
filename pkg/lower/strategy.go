package lower

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/vango-dev/domgen/pkg/tree"
)

// skeleton materializes the static tree of an element literal. The choice is
// made once per Lowerer, so every literal of a unit uses the same strategy.
type skeleton interface {
	materialize(lw *lowering, root *tree.StaticNode) (ast.Expr, error)
}

// directStrategy builds the skeleton with nested runtime calls.
type directStrategy struct{}

func (directStrategy) materialize(lw *lowering, root *tree.StaticNode) (ast.Expr, error) {
	switch root.Kind {
	case tree.KindText:
		return lw.b.createText(root.Text), nil
	case tree.KindComment:
		return lw.b.createComment(), nil
	}
	return lw.construct(root, lw.rootSVG(root)), nil
}

// construct emits CreateElement for an element node and its subtree.
// Text children are passed as strings and comments as nil, which the
// runtime turns into empty comment nodes so addresses keep counting them.
func (lw *lowering) construct(n *tree.StaticNode, svg bool) ast.Expr {
	children := make([]ast.Expr, len(n.Children))
	for i, c := range n.Children {
		switch c.Kind {
		case tree.KindText:
			children[i] = str(c.Text)
		case tree.KindComment:
			children[i] = ast.NewIdent("nil")
		default:
			children[i] = lw.construct(c, lw.childSVG(n.Tag, svg, c.Tag))
		}
	}
	return lw.b.createElement(n.Tag, n.Attrs, children, svg)
}

// integrationPoints are the SVG elements whose children the HTML parser
// puts back in the HTML namespace.
var integrationPoints = map[string]bool{
	"foreignobject": true,
	"desc":          true,
	"title":         true,
}

// childSVG reports whether a child element tagged tag is built in the SVG
// namespace, given its parent's tag and namespace.
func (lw *lowering) childSVG(parent string, parentSVG bool, tag string) bool {
	if parentSVG && !integrationPoints[strings.ToLower(parent)] {
		return true
	}
	return lw.classifier.IsSVG(tag)
}

// rootSVG reports whether the root of a static tree is built in the SVG
// namespace.
func (lw *lowering) rootSVG(root *tree.StaticNode) bool {
	return root.Kind == tree.KindElement && lw.classifier.IsSVG(root.Tag)
}

// templateStrategy hoists the serialized skeleton and clones it.
type templateStrategy struct{}

func (templateStrategy) materialize(lw *lowering, root *tree.StaticNode) (ast.Expr, error) {
	name, err := lw.hoistTemplate(root)
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Fun: ast.NewIdent(name)}, nil
}

// hoistTemplate hoists
//
//	var _tmplN = dom.Template("<html>")
//
// into the unit and returns the declared name. The markup is the one
// rendered and checked during validation.
func (lw *lowering) hoistTemplate(root *tree.StaticNode) (string, error) {
	html, ok := lw.templates[root]
	if !ok {
		return "", lw.fail("E123", "static tree was not rendered before hoisting")
	}
	svg := lw.rootSVG(root)

	name := lw.unit.UniqueName("_tmpl")
	lw.unit.Hoist(&ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names:  []*ast.Ident{name},
			Values: []ast.Expr{lw.b.template(html, svg)},
		}},
	})
	lw.observer.TemplateHoisted()
	return name.Name, nil
}
