// Package compile rewrites Go source files that contain markup literal
// placeholders.
//
// The markup parser leaves a call such as
//
//	__literal(3)
//
// wherever literal 3 appeared and describes every literal in a Document.
// Compile lowers each literal with package lower, splices the resulting
// expression in place of its placeholder, hoists template declarations,
// imports the builder runtime and returns the formatted file.
//
// A Document without source gets a synthesized file that declares one
// function per literal:
//
//	func Card() *dom.Node {
//		return ...
//	}
package compile
