// Package render serializes static UI trees to HTML.
//
// The output is the template string domgen hoists for clone-based
// construction, so it must parse back into a tree with the same node at
// every child position:
//
//   - text and attribute values are escaped
//   - comments are materialized as <!--...--> markers
//   - void elements (input, br, img, etc.) have no closing tag
//   - children of raw-text elements (script, style) are written verbatim
//   - nothing is pretty-printed, since added whitespace would add text nodes
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Minification
//
// With RendererConfig.Minify set, output passes through an HTML minifier
// configured to keep comments, whitespace, end tags and quotes.
package render
