// Package wordmark lays out the three-segment brand text (left word, right
// word, domain suffix) as a single styled <text> run.
package wordmark

import (
	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/svg"
)

// ClassName is the CSS class carrying the wordmark font rules.
const ClassName = "w"

// Colors paints the three wordmark segments.
type Colors struct {
	Left  string
	Right string
	TLD   string
}

// DefaultColors returns the dark/red/dark palette of the plain wordmark.
func DefaultColors(c brand.Config) Colors {
	return Colors{Left: c.Dark, Right: c.Red, TLD: c.Dark}
}

// Main renders the wordmark at (x, y) in the default palette. Extra attrs
// are appended to the <text> element.
func Main(c brand.Config, x, y int, attrs ...svg.Attr) *svg.Node {
	return MainColors(c, x, y, DefaultColors(c), attrs...)
}

// MainColors renders the wordmark at (x, y) with explicit segment colors.
//
// The right and suffix spans get a dx attribute only when the matching gap
// is non-zero; a zero gap leaves the attribute off entirely.
func MainColors(c brand.Config, x, y int, col Colors, attrs ...svg.Attr) *svg.Node {
	text := svg.El("text",
		append([]svg.Attr{
			svg.A("x", x),
			svg.A("y", y),
			svg.A("class", ClassName),
			svg.A("font-size", c.FSMain),
		}, attrs...)...,
	)

	left := svg.El("tspan", svg.A("fill", col.Left)).Append(svg.CharData(c.Left))

	right := svg.El("tspan", svg.A("fill", col.Right))
	if c.WordGap != 0 {
		right.Set("dx", c.WordGap)
	}
	right.Append(svg.CharData(c.Right))

	tld := svg.El("tspan", svg.A("fill", col.TLD), svg.A("font-size", TLDSize(c)))
	if c.TLDGap != 0 {
		tld.Set("dx", c.TLDGap)
	}
	tld.Append(svg.CharData(c.TLD))

	return text.Append(left, right, tld)
}

// TLDSize is the suffix font size: FSMain × TLDScale, truncated.
func TLDSize(c brand.Config) int {
	return int(float64(c.FSMain) * c.TLDScale)
}

// Baseline is the default text baseline for a canvas of c.OutHeight:
// floor(height × 0.5 + fsMain × 0.35).
func Baseline(c brand.Config) int {
	return int(float64(c.OutHeight)*0.5 + float64(c.FSMain)*0.35)
}
