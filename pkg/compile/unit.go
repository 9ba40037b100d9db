package compile

import (
	"fmt"
	"go/ast"
	"go/token"
	"path"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
)

// unit is the compilation unit of one file. It implements lower.Unit.
type unit struct {
	fset *token.FileSet
	file *ast.File

	importPath  string
	runtimeName string
	local       string // runtime package name as seen in the file
	needImport  bool

	refs    map[string]ast.Expr
	hoisted []ast.Decl
	taken   map[string]bool
	counter int
}

func newUnit(fset *token.FileSet, file *ast.File, importPath, runtimeName string) *unit {
	u := &unit{
		fset:        fset,
		file:        file,
		importPath:  importPath,
		runtimeName: runtimeName,
		refs:        make(map[string]ast.Expr),
		taken:       make(map[string]bool),
	}
	ast.Inspect(file, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			u.taken[id.Name] = true
		}
		return true
	})
	return u
}

// Ref returns a selector of name on the runtime package. The same
// expression is returned for every request of name.
func (u *unit) Ref(name string) ast.Expr {
	if ref, ok := u.refs[name]; ok {
		return ref
	}
	ref := &ast.SelectorExpr{X: ast.NewIdent(u.runtime()), Sel: ast.NewIdent(name)}
	u.refs[name] = ref
	return ref
}

// runtime returns the file-local name of the runtime package. If the file
// has no usable import of it, one is added by flush.
func (u *unit) runtime() string {
	if u.local != "" {
		return u.local
	}
	for _, spec := range u.file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil || p != u.importPath {
			continue
		}
		switch {
		case spec.Name == nil:
			u.local = u.runtimeName
		case spec.Name.Name != "_" && spec.Name.Name != ".":
			u.local = spec.Name.Name
		}
		if u.local != "" {
			return u.local
		}
	}

	u.local = u.runtimeName
	u.needImport = true
	return u.local
}

func (u *unit) Hoist(decl ast.Decl) {
	u.hoisted = append(u.hoisted, decl)
}

// UniqueName returns prefix followed by the next counter value, skipping
// names already used in the file.
func (u *unit) UniqueName(prefix string) *ast.Ident {
	for {
		u.counter++
		name := fmt.Sprintf("%s%d", prefix, u.counter)
		if !u.taken[name] {
			u.taken[name] = true
			return ast.NewIdent(name)
		}
	}
}

// flush adds the runtime import if needed and inserts the hoisted
// declarations after the imports, in the order they were hoisted. The file
// is not modified before flush, so it can be walked while lowering.
func (u *unit) flush() {
	if u.needImport {
		if path.Base(u.importPath) == u.runtimeName {
			astutil.AddImport(u.fset, u.file, u.importPath)
		} else {
			astutil.AddNamedImport(u.fset, u.file, u.runtimeName, u.importPath)
		}
		u.needImport = false
	}
	if len(u.hoisted) == 0 {
		return
	}
	at := 0
	for i, decl := range u.file.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
			at = i + 1
		}
	}
	decls := make([]ast.Decl, 0, len(u.file.Decls)+len(u.hoisted))
	decls = append(decls, u.file.Decls[:at]...)
	decls = append(decls, u.hoisted...)
	decls = append(decls, u.file.Decls[at:]...)
	u.file.Decls = decls
	u.hoisted = nil
}
