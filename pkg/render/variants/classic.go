package variants

import (
	"fmt"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/render/frame"
	"github.com/matzehuels/wordmark/pkg/render/shapes"
	"github.com/matzehuels/wordmark/pkg/render/wordmark"
	"github.com/matzehuels/wordmark/pkg/svg"
)

// margin is the left inset of the wordmark on every variant.
const margin = 24

// scaled truncates base × the config's icon scale.
func scaled(c brand.Config, base int) int {
	return int(float64(base) * c.IconScale)
}

// background fills a w×h canvas from the origin.
func background(w, h int, fill string) *svg.Node {
	return svg.El("rect", svg.A("width", w), svg.A("height", h), svg.A("fill", fill))
}

// Basic is the wordmark alone on the configured canvas.
func Basic(c brand.Config) frame.Document {
	body := []*svg.Node{wordmark.Main(c, margin, wordmark.Baseline(c))}
	return frame.Wrap(c, c.OutWidth, c.OutHeight, body)
}

// Flag underlines the wordmark with black, red and gold bands.
func Flag(c brand.Config) frame.Document {
	h := c.OutHeight + 30
	by := wordmark.Baseline(c)
	uw := c.OutWidth - 2*margin
	y0 := by + 20

	body := []*svg.Node{
		wordmark.Main(c, margin, by),
		svg.Rect(margin, y0, uw, 5, svg.A("fill", "#000")),
		svg.Rect(margin, y0+6, uw, 5, svg.A("fill", "#dd0000")),
		svg.Rect(margin, y0+12, uw, 5, svg.A("fill", c.Gold)),
	}
	return frame.Wrap(c, c.OutWidth, h, body)
}

// Crown centers a crown in a band above the wordmark.
func Crown(c brand.Config) frame.Document {
	iconH := scaled(c, 70)
	band := iconH + 10
	h := c.OutHeight + band
	by := band + wordmark.Baseline(c)

	crownW := scaled(c, shapes.CrownBase)
	cx := c.OutWidth/2 - crownW/2 + c.IconOffsetX
	cy := 5 + c.IconOffsetY

	body := []*svg.Node{
		svg.Group(svg.Translate(cx, cy, c.IconScale)).Append(shapes.Crown(shapes.CrownBase, c.Red)),
		wordmark.Main(c, margin, by),
	}
	return frame.Wrap(c, c.OutWidth, h, body)
}

// BearingRadius is the icon radius of the bearing variant at icon scale s.
func BearingRadius(s float64) int {
	return int(55 * s)
}

// Bearing places a bearing icon left of the wordmark and widens the canvas
// by the icon's footprint.
func Bearing(c brand.Config) frame.Document {
	r := BearingRadius(c.IconScale)
	icx := margin + r + 10 + c.IconOffsetX
	icy := c.OutHeight/2 + c.IconOffsetY
	shift := 2*r + 30
	w := c.OutWidth + shift

	body := []*svg.Node{
		svg.Group(svg.Translate(icx, icy, c.IconScale)).Append(shapes.Bearing(c.Dark, c.Red)),
		wordmark.Main(c, margin+shift, wordmark.Baseline(c)),
	}
	return frame.Wrap(c, w, c.OutHeight, body)
}

// Monogram puts a rounded badge with the brand initials left of the
// wordmark.
func Monogram(c brand.Config) frame.Document {
	side := int(float64(c.OutHeight) * 0.85)
	shift := side + 20
	boxY := (c.OutHeight - side) / 2
	w := c.OutWidth + shift

	badge := svg.Group(svg.A("transform", fmt.Sprintf("translate(%d %d)", margin, boxY))).Append(
		svg.El("rect", svg.A("width", side), svg.A("height", side), svg.A("rx", 12), svg.A("fill", c.Red)),
		svg.Text(c.Monogram(),
			svg.A("x", side/2),
			svg.A("y", int(float64(side)*0.72)),
			svg.A("text-anchor", "middle"),
			svg.A("class", wordmark.ClassName),
			svg.A("font-size", int(float64(side)*0.55)),
			svg.A("fill", c.White),
		),
	)
	body := []*svg.Node{badge, wordmark.Main(c, margin+shift, wordmark.Baseline(c))}
	return frame.Wrap(c, w, c.OutHeight, body)
}

// Inverted renders light text on the dark background color.
func Inverted(c brand.Config) frame.Document {
	body := []*svg.Node{
		background(c.OutWidth, c.OutHeight, c.BgDark),
		wordmark.MainColors(c, margin, wordmark.Baseline(c), wordmark.Colors{Left: c.White, Right: c.Red, TLD: c.White}),
	}
	return frame.Wrap(c, c.OutWidth, c.OutHeight, body)
}

// Diagonal puts a skewed red panel behind the right half of the canvas.
func Diagonal(c brand.Config) frame.Document {
	const skew = 35
	w, h := c.OutWidth, c.OutHeight
	start := int(float64(w) * 0.5)

	panel := svg.Polygon([]svg.Point{
		svg.Pt(start, 0), svg.Pt(w, 0), svg.Pt(w, h), svg.Pt(start-skew, h),
	}, svg.A("fill", c.Red))

	body := []*svg.Node{
		panel,
		wordmark.MainColors(c, margin, wordmark.Baseline(c), wordmark.Colors{Left: c.Dark, Right: c.White, TLD: c.White}),
	}
	return frame.Wrap(c, w, h, body)
}
