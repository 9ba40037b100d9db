package lower

import (
	"go/ast"

	"github.com/vango-dev/domgen/pkg/tree"
)

// fragment lowers a fragment literal to
//
//	dom.CreateFragment([]any{...})
//
// Static text becomes a text node and each comment of a comment group
// becomes its own empty comment node.
func (lw *lowering) fragment(f *tree.FragmentInfo) (ast.Expr, error) {
	var children []ast.Expr
	for _, s := range mergeChildren(f.Static, f.Dynamic) {
		if s.static == nil {
			child, err := lw.dynamicChild(*s.dynamic)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			continue
		}
		if !s.static.IsComments {
			children = append(children, lw.b.createText(s.static.Text))
			continue
		}
		for range s.static.Comments {
			children = append(children, lw.b.createComment())
		}
	}
	return lw.b.createFragment(children), nil
}
