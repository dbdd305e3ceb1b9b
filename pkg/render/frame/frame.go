// Package frame wraps variant bodies into standalone SVG documents.
//
// Every document carries the same header: an XML declaration, the root <svg>
// element sized to the variant's canvas, and a <defs><style> block with the
// web-font import and two classes, ".w" for the wordmark and ".tag" for
// taglines and captions. The body is never inspected.
package frame

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/fonts"
	"github.com/matzehuels/wordmark/pkg/svg"
)

// TagClass is the CSS class for tagline text.
const TagClass = "tag"

// Document is a complete SVG document and its canvas size.
type Document struct {
	Width  int
	Height int
	Root   *svg.Node
}

// Wrap builds a document of size w×h around body. Extra defs (gradients,
// patterns) are placed after the style block.
func Wrap(c brand.Config, w, h int, body []*svg.Node, defs ...*svg.Node) Document {
	root := svg.El("svg",
		svg.A("xmlns", svg.Namespace),
		svg.A("viewBox", fmt.Sprintf("0 0 %d %d", w, h)),
		svg.A("width", w),
		svg.A("height", h),
	)
	d := svg.El("defs").Append(svg.El("style").Append(svg.CharData(Stylesheet(c))))
	d.Append(defs...)
	root.Append(d)
	root.Append(body...)
	return Document{Width: w, Height: h, Root: root}
}

// Stylesheet returns the CSS embedded in every document for c.
func Stylesheet(c brand.Config) string {
	var b strings.Builder
	b.WriteString("\n" + fonts.CSSImport() + "\n")
	b.WriteString(".w {\n")
	fmt.Fprintf(&b, "  font-family: %s;\n", c.FontStack)
	b.WriteString("  font-weight: 400;\n")
	if c.LetterSpacing != 0 {
		fmt.Fprintf(&b, "  letter-spacing: %spx;\n", svg.Num(c.LetterSpacing))
	}
	b.WriteString("}\n")
	b.WriteString("." + TagClass + " {\n")
	fmt.Fprintf(&b, "  font-family: %s;\n", fonts.TagStack)
	b.WriteString("  font-weight: 600;\n")
	b.WriteString("}\n")
	return b.String()
}

// String returns the serialized document including the XML declaration.
func (d Document) String() string {
	return string(d.Bytes())
}

// Bytes returns the serialized document including the XML declaration.
func (d Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(svg.Header)
	buf.WriteByte('\n')
	if d.Root != nil {
		d.Root.Encode(&buf)
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

// Empty returns a minimal document with no body, used as a placeholder for
// variants that failed to render.
func Empty() Document {
	return Document{Root: svg.El("svg", svg.A("xmlns", svg.Namespace))}
}
