// Package tree defines the parsed form of a UI-tree literal as handed over by
// the markup parser: a static skeleton plus an ordered list of dynamic
// bindings addressed into it.
//
// # Literals
//
// A Literal is exactly one of an element, a component or a fragment. The
// variant is carried by an explicit Kind discriminator and the matching
// payload pointer; nothing in this package infers the variant from the shape
// of the value.
//
// # Addresses
//
// An Address is the depth-first child-index path from the root of a static
// tree to one of its nodes. StaticNode.Resolve walks it. Addresses are only
// meaningful against the tree they were computed from.
//
// # Documents
//
// Literals are usually decoded from YAML or JSON. Position-keyed child maps
// are written as sequences of entries with an "at" field:
//
//	static:
//	  - at: 0
//	    text: "Hello, "
//	dynamic:
//	  - at: 1
//	    expr: name
package tree
