// Package dom is the reference builder runtime for programs emitted by domgen.
//
// Generated code never builds trees by hand; it calls the builder vocabulary
// defined here:
//
//	CreateElement(tag, attrs, children[, svg])
//	CreateText(value)  CreateComment()  CreateFragment(children)
//	CreateComponent(component, props, children)
//	SetProp(node, name, value)  SetProps(node, object)  On(node, event, handler)
//	GetChild(node, address)  AppendChild(value, parent)
//	Template(html[, svg]) -> clone factory
//
// Any runtime exposing the same names and shapes can be targeted instead by
// pointing the compiler's runtime.import setting at it.
//
// # Positions
//
// Both construction paths produce the same child positions for the same
// static tree. CreateElement turns a nil child into an empty comment
// placeholder, which is exactly where the template path has a materialized
// comment, so an address computed at compile time resolves to the same node
// either way.
//
// # Failures
//
// The builders panic on contract violations (an address that does not
// resolve, a template string that does not have exactly one root). These can
// only come from a miscompiled program, never from user data.
package dom
