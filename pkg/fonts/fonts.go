// Package fonts holds the font names and web-font references used by the
// logo renderer and the HTML previews.
//
// The display face is loaded from Google Fonts at view time; nothing is
// embedded in the binary. Viewers without network access fall back through
// the rest of [DefaultStack].
package fonts

import "fmt"

// GoogleFontName is the display face used for the wordmark.
const GoogleFontName = "Black Ops One"

// ImportURL is the Google Fonts stylesheet for [GoogleFontName].
const ImportURL = "https://fonts.googleapis.com/css2?family=Black+Ops+One&display=swap"

// DefaultStack is the CSS font-family list for the wordmark text.
const DefaultStack = `"Black Ops One", Impact, "Arial Black", Arial, sans-serif`

// TagStack is the CSS font-family list for taglines and banner captions.
const TagStack = "Arial, Helvetica, sans-serif"

// CSSImport returns the @import rule embedded in every SVG style block.
func CSSImport() string {
	return fmt.Sprintf("@import url(%q);", ImportURL)
}

// PreviewLinks returns the <link> tags that preload the display face in an
// HTML preview page.
func PreviewLinks() string {
	return `<link rel="preconnect" href="https://fonts.googleapis.com">` + "\n" +
		`<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>` + "\n" +
		`<link href="` + ImportURL + `" rel="stylesheet">`
}
