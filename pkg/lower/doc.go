// Package lower turns UI-tree literals into Go construction programs.
//
// A literal is an element, a component or a fragment (see package tree).
// Lowering produces a single Go expression that builds the literal at run
// time by calling the builder runtime (package dom by default):
//
//	func() *dom.Node {
//		_el1 := dom.CreateElement("div", dom.Attrs{{Name: "id", Value: "a"}},
//			[]any{dom.CreateElement("span", nil, nil)})
//		dom.AppendChild(expr, dom.GetChild(_el1, []int{0}))
//		return _el1
//	}()
//
// # Skeleton strategies
//
// The static skeleton of an element is built either directly, with nested
// CreateElement calls, or by cloning a template: the skeleton is serialized
// to HTML once, hoisted to a package-level
//
//	var _tmpl2 = dom.Template("<div id=\"a\"><span></span></div>")
//
// and each evaluation calls _tmpl2(). Both strategies yield the same node at
// every address, so the binding instructions that follow do not depend on
// which one was used.
//
// # Compilation units
//
// Lowering never edits source files itself. It asks a Unit for references to
// runtime functions, for fresh local names and to hoist declarations; package
// compile provides the implementation over a Go file.
package lower
