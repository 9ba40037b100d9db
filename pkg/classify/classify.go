// Package classify decides how literal attribute keys and element tags are
// treated during lowering.
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Default is the HTML classifier.
var Default = HTML{}

// HTML classifies keys and tags by HTML and SVG conventions.
type HTML struct{}

// IsEvent reports whether key names an event handler: "on" in any case
// followed by a letter, as in onClick, onclick or ONCLICK.
func (HTML) IsEvent(key string) bool {
	if len(key) <= 2 || !strings.EqualFold(key[:2], "on") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key[2:])
	return unicode.IsLetter(r)
}

// EventName returns the canonical event name of an event key: the part
// after "on", lowercased. onDblClick becomes "dblclick".
func (HTML) EventName(key string) string {
	if len(key) <= 2 {
		return ""
	}
	return strings.ToLower(key[2:])
}

// IsSVG reports whether tag is an SVG element.
func (HTML) IsSVG(tag string) bool {
	return svgElements[tag]
}

// svgElements lists the SVG element names, with their SVG spelling.
var svgElements = map[string]bool{
	"a": false, // shared with HTML; anchors are built as HTML elements
	"animate": true, "animateMotion": true, "animateTransform": true,
	"circle": true, "clipPath": true, "defs": true, "desc": true,
	"ellipse": true, "feBlend": true, "feColorMatrix": true,
	"feComponentTransfer": true, "feComposite": true,
	"feConvolveMatrix": true, "feDiffuseLighting": true,
	"feDisplacementMap": true, "feDistantLight": true,
	"feDropShadow": true, "feFlood": true, "feFuncA": true,
	"feFuncB": true, "feFuncG": true, "feFuncR": true,
	"feGaussianBlur": true, "feImage": true, "feMerge": true,
	"feMergeNode": true, "feMorphology": true, "feOffset": true,
	"fePointLight": true, "feSpecularLighting": true,
	"feSpotLight": true, "feTile": true, "feTurbulence": true,
	"filter": true, "foreignObject": true, "g": true, "image": true,
	"line": true, "linearGradient": true, "marker": true, "mask": true,
	"metadata": true, "mpath": true, "path": true, "pattern": true,
	"polygon": true, "polyline": true, "radialGradient": true,
	"rect": true, "set": true, "stop": true, "svg": true,
	"switch": true, "symbol": true, "text": true, "textPath": true,
	"tspan": true, "use": true, "view": true,
}
