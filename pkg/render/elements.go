package render

import "strings"

// contentModel is how the HTML parser treats the children of an element.
type contentModel uint8

const (
	normalContent contentModel = iota
	// voidContent elements have no children and no end tag.
	voidContent
	// rawContent elements hold text that is neither parsed for tags nor
	// unescaped, up to the matching end tag. noscript counts as raw because
	// the runtime parses with scripting enabled.
	rawContent
)

var contentModels = map[string]contentModel{
	"area":   voidContent,
	"base":   voidContent,
	"br":     voidContent,
	"col":    voidContent,
	"embed":  voidContent,
	"hr":     voidContent,
	"img":    voidContent,
	"input":  voidContent,
	"link":   voidContent,
	"meta":   voidContent,
	"param":  voidContent,
	"source": voidContent,
	"track":  voidContent,
	"wbr":    voidContent,

	"iframe":   rawContent,
	"noembed":  rawContent,
	"noframes": rawContent,
	"noscript": rawContent,
	"script":   rawContent,
	"style":    rawContent,
	"xmp":      rawContent,
}

func modelOf(tag string) contentModel {
	return contentModels[strings.ToLower(tag)]
}

// IsVoidElement reports whether tag has no children and no end tag.
func IsVoidElement(tag string) bool {
	return modelOf(tag) == voidContent
}

// IsRawTextElement reports whether the text content of tag is written and
// parsed verbatim.
func IsRawTextElement(tag string) bool {
	return modelOf(tag) == rawContent
}
