// Package preview assembles HTML viewer pages around rendered variants.
//
// The pages embed each SVG verbatim and only escape labels; they never
// change what was rendered.
package preview

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/wordmark/pkg/fonts"
	"github.com/matzehuels/wordmark/pkg/render/variants"
)

// NoSelection disables the highlighted card in [Gallery].
const NoSelection = -1

const (
	galleryCSS = `body{font-family:Arial,sans-serif;margin:16px;background:#f4f4f4}svg{width:100%;height:auto;display:block}`
	singleCSS  = `body{font-family:Arial,sans-serif;margin:24px;background:#f4f4f4}svg{width:100%;max-width:1400px;height:auto;display:block}.box{background:#fff;border:1px solid #ddd;border-radius:12px;padding:20px}`

	borderSelected = "3px solid #e30613"
	borderDefault  = "1px solid #ddd"
)

// Gallery renders every output as a card. The card at index selected (0-based
// position in outs) gets a highlighted border.
func Gallery(outs []variants.Output, selected int) string {
	var buf bytes.Buffer
	head(&buf, galleryCSS)
	fmt.Fprintf(&buf, "<h2 style=\"margin:0 0 16px\">Logo Preview (%d variants)</h2>\n", len(outs))
	for i, o := range outs {
		border := borderDefault
		if i == selected {
			border = borderSelected
		}
		fmt.Fprintf(&buf, "<div style=\"background:#fff;border:%s;border-radius:12px;padding:16px;margin-bottom:12px;\">\n", border)
		fmt.Fprintf(&buf, "<div style=\"font:bold 14px Arial;color:#444;margin-bottom:8px;\">%s</div>\n", html.EscapeString(o.Label))
		buf.WriteString(o.SVG)
		buf.WriteString("\n</div>\n")
	}
	buf.WriteString("</body></html>")
	return buf.String()
}

// Single renders one document under its label.
func Single(label, svg string) string {
	var buf bytes.Buffer
	head(&buf, singleCSS)
	fmt.Fprintf(&buf, "<h2>%s</h2>\n", html.EscapeString(label))
	fmt.Fprintf(&buf, "<div class=\"box\">%s</div>\n", svg)
	buf.WriteString("</body></html>")
	return buf.String()
}

func head(buf *bytes.Buffer, css string) {
	buf.WriteString("<!doctype html><html><head><meta charset=\"utf-8\">\n")
	buf.WriteString(fonts.PreviewLinks())
	buf.WriteString("\n<style>" + css + "</style></head><body>\n")
}
