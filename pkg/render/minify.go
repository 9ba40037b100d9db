package render

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

var (
	minifier *minify.M
	once     sync.Once
)

// getMinifier returns a configured HTML minifier (singleton).
// Everything that would change the parsed node list is kept.
func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.Add("text/html", &html.Minifier{
			KeepComments:        true,
			KeepWhitespace:      true,
			KeepEndTags:         true,
			KeepQuotes:          true,
			KeepDefaultAttrVals: true,
			KeepDocumentTags:    true,
		})
	})
	return minifier
}

// Minify minifies a serialized static tree.
func Minify(htmlContent string) (string, error) {
	return getMinifier().String("text/html", htmlContent)
}
