package shapes

import (
	"fmt"

	"github.com/matzehuels/wordmark/pkg/svg"
)

// MiterColors paints the bishop's miter.
type MiterColors struct {
	Body string
	Trim string
}

// PumpkinColors paints the jack-o'-lantern.
type PumpkinColors struct {
	Skin   string
	Ridge  string
	Stem   string
	Carved string
}

// TreeColors paints the christmas tree.
type TreeColors struct {
	Needles string
	Trunk   string
	Star    string
	Bauble  string
}

// Themed defaults.
var (
	DefaultMiterColors   = MiterColors{Body: "#e30613", Trim: "#ffce00"}
	DefaultPumpkinColors = PumpkinColors{Skin: "#FF6600", Ridge: "#E55500", Stem: "#2d8a4e", Carved: "#1a0a2e"}
	DefaultTreeColors    = TreeColors{Needles: "#2d8a4e", Trunk: "#8B4513", Star: "#ffce00", Bauble: "#e30613"}
)

// Miter draws a bishop's miter size units tall, 0.8×size wide, with its
// top-left corner at the origin.
func Miter(size int, c MiterColors) *svg.Node {
	w, h := int(float64(size)*0.8), size
	bh := max(4, int(float64(h)*0.18))
	cx := w / 2
	crossY := int(float64(h) * 0.45)
	trim := []svg.Attr{svg.A("stroke", c.Trim), svg.A("stroke-width", 3)}

	return svg.Group().Append(
		svg.Path(fmt.Sprintf("M0,%d L%d,0 L%d,%d Z", h, w/2, w, h), svg.A("fill", c.Body)),
		svg.Rect(0, h-bh, w, bh, svg.A("fill", c.Trim)),
		svg.Line(cx, int(float64(h)*0.15), cx, h-bh, trim...),
		svg.Line(int(float64(cx)-float64(w)*0.2), crossY, int(float64(cx)+float64(w)*0.2), crossY, trim...),
	)
}

// Pumpkin draws a carved pumpkin centered at the origin.
func Pumpkin(size int, c PumpkinColors) *svg.Node {
	r := size / 2
	fr := float64(r)
	ry := int(fr * 0.8)
	eye := int(-fr * 0.2)
	mouth := int(fr * 0.2)
	l, rt := floorDiv(-r, 3), r/3

	return svg.Group().Append(
		svg.Ellipse(0, 0, r, ry, svg.A("fill", c.Skin)),
		svg.Ellipse(0, 0, int(fr*0.6), ry, svg.A("fill", "none"), svg.A("stroke", c.Ridge), svg.A("stroke-width", 2)),
		svg.Rect(-3, int(-fr*0.8-10), 6, 12, svg.A("rx", 2), svg.A("fill", c.Stem)),
		svg.Polygon([]svg.Point{svg.Pt(l, eye), svg.Pt(l+5, eye-10), svg.Pt(l+10, eye)}, svg.A("fill", c.Carved)),
		svg.Polygon([]svg.Point{svg.Pt(rt-10, eye), svg.Pt(rt-5, eye-10), svg.Pt(rt, eye)}, svg.A("fill", c.Carved)),
		svg.Path(fmt.Sprintf("M%d %d Q0 %d %d %d", l, mouth, mouth+12, rt, mouth), svg.A("fill", c.Carved)),
	)
}

// treeTiers lists (top, bottom, width) fractions of size for each tier.
var treeTiers = [][3]float64{{0, 0.35, 0.3}, {0.2, 0.55, 0.45}, {0.4, 0.75, 0.6}}

// Tree draws a three-tier christmas tree whose base sits at the origin and
// whose star tip reaches y = -size.
func Tree(size int, c TreeColors) *svg.Node {
	s := float64(size)
	g := svg.Group()
	for _, t := range treeTiers {
		top := int(-s * (1 - t[0]))
		bot := int(-s * (1 - t[1]))
		half := int(s * t[2] * 0.5)
		g.Append(svg.Polygon([]svg.Point{svg.Pt(0, top), svg.Pt(-half, bot), svg.Pt(half, bot)}, svg.A("fill", c.Needles)))
	}

	tw := max(4, int(s*0.12))
	th := max(6, int(s*0.15))
	g.Append(svg.Rect(floorDiv(-tw, 2), int(-s*0.25), tw, th, svg.A("fill", c.Trunk)))
	g.Append(Star(0, float64(int(-s)), float64(max(4, int(s*0.12))), float64(max(2, int(s*0.05))), 5, c.Star, 1))

	for _, b := range [][2]int{{-8, int(-s * 0.5)}, {10, int(-s * 0.35)}, {-5, int(-s * 0.65)}} {
		g.Append(svg.Circle(b[0], b[1], 3, svg.A("fill", c.Bauble)))
	}
	return g
}

// Egg draws a decorated egg centered at the origin with radii wr and hr.
func Egg(wr, hr int, fill, stripe string) *svg.Node {
	upper := floorDiv(-hr, 3)
	return svg.Group().Append(
		svg.Ellipse(0, 0, wr, hr, svg.A("fill", fill)),
		svg.Line(-wr+2, 0, wr-2, 0, svg.A("stroke", stripe), svg.A("stroke-width", 2)),
		svg.Line(-wr+4, upper, wr-4, upper, svg.A("stroke", stripe), svg.A("stroke-width", 1.5), svg.A("opacity", 0.6)),
	)
}
