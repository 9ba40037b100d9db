package lower

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"testing"
	"time"

	"github.com/vango-dev/domgen/pkg/tree"
)

// testUnit is an in-memory Unit that refers to the runtime as "dom".
type testUnit struct {
	refs    map[string]ast.Expr
	hoisted []ast.Decl
	counter int
}

func newTestUnit() *testUnit {
	return &testUnit{refs: make(map[string]ast.Expr)}
}

func (u *testUnit) Ref(name string) ast.Expr {
	if ref, ok := u.refs[name]; ok {
		return ref
	}
	ref := &ast.SelectorExpr{X: ast.NewIdent("dom"), Sel: ast.NewIdent(name)}
	u.refs[name] = ref
	return ref
}

func (u *testUnit) Hoist(decl ast.Decl) {
	u.hoisted = append(u.hoisted, decl)
}

func (u *testUnit) UniqueName(prefix string) *ast.Ident {
	u.counter++
	return ast.NewIdent(fmt.Sprintf("%s%d", prefix, u.counter))
}

// recorder is an Observer that keeps every event.
type recorder struct {
	ops      []string
	hoisted  int
	literals []tree.LiteralKind
	errs     []error
}

func (r *recorder) LiteralLowered(kind tree.LiteralKind, _ time.Duration, err error) {
	r.literals = append(r.literals, kind)
	r.errs = append(r.errs, err)
}

func (r *recorder) InstructionEmitted(op string) { r.ops = append(r.ops, op) }

func (r *recorder) TemplateHoisted() { r.hoisted++ }

func (r *recorder) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}

func newLowerer(t *testing.T, opts Options, options ...Option) *Lowerer {
	t.Helper()
	l, err := New(opts, options...)
	if err != nil {
		t.Fatalf("New(%+v) error = %v", opts, err)
	}
	return l
}

// lower lowers lit into a fresh unit and returns the printed expression.
func lower(t *testing.T, l *Lowerer, lit *tree.Literal) (string, ast.Expr, *testUnit) {
	t.Helper()
	u := newTestUnit()
	expr, err := l.Lower(u, lit)
	if err != nil {
		t.Fatalf("Lower() error = %v", err)
	}
	return printNode(t, expr), expr, u
}

func printNode(t *testing.T, n any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), n); err != nil {
		t.Fatalf("format.Node() error = %v", err)
	}
	return buf.String()
}

// calls lists the runtime functions called in n, in source order.
func calls(n ast.Node) []string {
	var out []string
	ast.Inspect(n, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if sel, ok := call.Fun.(*ast.SelectorExpr); ok {
			if x, ok := sel.X.(*ast.Ident); ok && x.Name == "dom" {
				out = append(out, sel.Sel.Name)
			}
		}
		return true
	})
	return out
}
