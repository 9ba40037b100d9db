package lower

import (
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"

	"github.com/vango-dev/domgen/pkg/tree"
)

// Runtime operations, named after the builder runtime functions they call.
const (
	OpCreateElement   = "CreateElement"
	OpCreateText      = "CreateText"
	OpCreateComment   = "CreateComment"
	OpCreateFragment  = "CreateFragment"
	OpCreateComponent = "CreateComponent"
	OpSetProp         = "SetProp"
	OpSetProps        = "SetProps"
	OpOn              = "On"
	OpGetChild        = "GetChild"
	OpAppendChild     = "AppendChild"
	OpTemplate        = "Template"
)

// Ops lists every runtime operation.
var Ops = []string{
	OpCreateElement, OpCreateText, OpCreateComment, OpCreateFragment,
	OpCreateComponent, OpSetProp, OpSetProps, OpOn, OpGetChild,
	OpAppendChild, OpTemplate,
}

// Runtime types referenced by emitted code.
const (
	typeNode         = "Node"
	typeAttrs        = "Attrs"
	typeProps        = "Props"
	typeMarker       = "Marker"
	constKindComment = "KindComment"
)

// builder emits runtime calls into a unit.
type builder struct {
	unit     Unit
	observer Observer
}

func (b *builder) call(op string, args ...ast.Expr) *ast.CallExpr {
	b.observer.InstructionEmitted(op)
	return &ast.CallExpr{Fun: b.unit.Ref(op), Args: args}
}

func (b *builder) createElement(tag string, attrs []tree.StaticAttr, children []ast.Expr, svg bool) ast.Expr {
	args := []ast.Expr{str(tag), b.attrs(attrs), anySlice(children)}
	if svg {
		args = append(args, ast.NewIdent("true"))
	}
	return b.call(OpCreateElement, args...)
}

func (b *builder) createText(text string) ast.Expr {
	return b.call(OpCreateText, str(text))
}

func (b *builder) createComment() ast.Expr {
	return b.call(OpCreateComment)
}

func (b *builder) createFragment(children []ast.Expr) ast.Expr {
	return b.call(OpCreateFragment, anySlice(children))
}

func (b *builder) createComponent(tag, props ast.Expr, children []ast.Expr) ast.Expr {
	return b.call(OpCreateComponent, tag, props, anySlice(children))
}

func (b *builder) setProp(node ast.Expr, name string, value ast.Expr) ast.Stmt {
	return stmt(b.call(OpSetProp, node, str(name), value))
}

func (b *builder) setProps(node, object ast.Expr) ast.Stmt {
	return stmt(b.call(OpSetProps, node, object))
}

func (b *builder) on(node ast.Expr, event string, handler ast.Expr) ast.Stmt {
	return stmt(b.call(OpOn, node, str(event), handler))
}

// getChild resolves addr against root. The empty address is root itself and
// emits nothing.
func (b *builder) getChild(root ast.Expr, addr tree.Address) ast.Expr {
	if len(addr) == 0 {
		return root
	}
	idx := make([]ast.Expr, len(addr))
	for i, n := range addr {
		idx[i] = &ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(n)}
	}
	path := &ast.CompositeLit{Type: &ast.ArrayType{Elt: ast.NewIdent("int")}, Elts: idx}
	return b.call(OpGetChild, root, path)
}

func (b *builder) appendChild(value, parent ast.Expr) ast.Stmt {
	return stmt(b.call(OpAppendChild, value, parent))
}

func (b *builder) template(html string, svg bool) ast.Expr {
	args := []ast.Expr{str(html)}
	if svg {
		args = append(args, ast.NewIdent("true"))
	}
	return b.call(OpTemplate, args...)
}

// attrs returns a dom.Attrs literal, or nil when there are none.
func (b *builder) attrs(attrs []tree.StaticAttr) ast.Expr {
	if len(attrs) == 0 {
		return ast.NewIdent("nil")
	}
	elts := make([]ast.Expr, len(attrs))
	for i, a := range attrs {
		elts[i] = &ast.CompositeLit{Elts: []ast.Expr{
			field("Name", str(a.Name)),
			field("Value", str(a.Value)),
		}}
	}
	return &ast.CompositeLit{Type: b.unit.Ref(typeAttrs), Elts: elts}
}

// markers returns a []dom.Marker literal for a comment group.
func (b *builder) markers(comments []string) ast.Expr {
	elts := make([]ast.Expr, len(comments))
	for i, c := range comments {
		elts[i] = &ast.CompositeLit{Elts: []ast.Expr{
			field("Type", b.unit.Ref(constKindComment)),
			field("Value", str(c)),
		}}
	}
	return &ast.CompositeLit{
		Type: &ast.ArrayType{Elt: b.unit.Ref(typeMarker)},
		Elts: elts,
	}
}

// iife wraps stmts in an immediately invoked func() *dom.Node.
func (b *builder) iife(stmts []ast.Stmt) ast.Expr {
	return &ast.CallExpr{Fun: &ast.FuncLit{
		Type: &ast.FuncType{
			Params: &ast.FieldList{},
			Results: &ast.FieldList{List: []*ast.Field{
				{Type: &ast.StarExpr{X: b.unit.Ref(typeNode)}},
			}},
		},
		Body: &ast.BlockStmt{List: stmts},
	}}
}

func str(s string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func field(name string, value ast.Expr) *ast.KeyValueExpr {
	return &ast.KeyValueExpr{Key: ast.NewIdent(name), Value: value}
}

func stmt(x ast.Expr) ast.Stmt {
	return &ast.ExprStmt{X: x}
}

func define(name *ast.Ident, value ast.Expr) ast.Stmt {
	return &ast.AssignStmt{Lhs: []ast.Expr{name}, Tok: token.DEFINE, Rhs: []ast.Expr{value}}
}

// anySlice returns a []any literal, or nil when elts is empty.
func anySlice(elts []ast.Expr) ast.Expr {
	if len(elts) == 0 {
		return ast.NewIdent("nil")
	}
	return &ast.CompositeLit{Type: &ast.ArrayType{Elt: ast.NewIdent("any")}, Elts: elts}
}

// parseExpr parses embedded expression source. Positions are cleared so the
// expression prints cleanly wherever it is spliced.
func (lw *lowering) parseExpr(src string) (ast.Expr, error) {
	x, err := parser.ParseExpr(src)
	if err != nil {
		return nil, lw.fail("E103", "%q: %v", src, err)
	}
	clearPositions(x)
	return x, nil
}

var posType = reflect.TypeOf(token.NoPos)

func clearPositions(root ast.Node) {
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		v := reflect.ValueOf(n)
		if v.Kind() != reflect.Pointer || v.IsNil() {
			return true
		}
		v = v.Elem()
		if v.Kind() != reflect.Struct {
			return true
		}
		for i := 0; i < v.NumField(); i++ {
			if f := v.Field(i); f.Type() == posType && f.CanSet() {
				f.SetInt(int64(token.NoPos))
			}
		}
		return true
	})
}
