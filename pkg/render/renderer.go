package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/domgen/pkg/tree"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Minify passes the output through the HTML minifier.
	Minify bool
}

// Renderer serializes static trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

// RenderToString renders a static tree to an HTML string.
func (r *Renderer) RenderToString(node *tree.StaticNode) (string, error) {
	var buf strings.Builder
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	if !r.config.Minify {
		return buf.String(), nil
	}
	return Minify(buf.String())
}

// RenderToWriter streams a static tree to the given writer. Minification is
// not applied.
func (r *Renderer) RenderToWriter(w io.Writer, node *tree.StaticNode) error {
	return r.renderNode(w, node, false)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *tree.StaticNode, rawText bool) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case tree.KindElement:
		return r.renderElement(w, node)
	case tree.KindText:
		return r.renderText(w, node, rawText)
	case tree.KindComment:
		return r.renderComment(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *tree.StaticNode) error {
	tag := node.Tag

	// Opening tag
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	model := modelOf(tag)
	if model == voidContent {
		return nil
	}

	raw := model == rawContent
	for _, child := range node.Children {
		if err := r.renderNode(w, child, raw); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", tag)
	return err
}

// renderText renders a text node, escaped unless inside a raw-text element.
func (r *Renderer) renderText(w io.Writer, node *tree.StaticNode, raw bool) error {
	text := node.Text
	if !raw {
		text = html.EscapeString(text)
	}
	_, err := io.WriteString(w, text)
	return err
}

// renderComment renders a comment marker.
func (r *Renderer) renderComment(w io.Writer, node *tree.StaticNode) error {
	_, err := io.WriteString(w, "<!--"+node.Text+"-->")
	return err
}

// renderAttributes renders static attributes in source order. Empty values
// are written as a bare name, which parses back to the same empty value.
func (r *Renderer) renderAttributes(w io.Writer, node *tree.StaticNode) error {
	for _, attr := range node.Attrs {
		if attr.Value == "" {
			if _, err := fmt.Fprintf(w, " %s", attr.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, attr.Name, html.EscapeString(attr.Value)); err != nil {
			return err
		}
	}
	return nil
}
