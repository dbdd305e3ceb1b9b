package shapes

import (
	"fmt"
	"math"

	"github.com/matzehuels/wordmark/pkg/svg"
)

// CrownBase is the edge length of the crown's reference design.
const CrownBase = 108

// BearingRadius is the outer ring radius of the bearing icon.
const BearingRadius = 52

// Crown draws a five-peak crown band with dots on three of the peaks.
// The 108-unit reference design is scaled to size; the top-left corner of
// the bounding box sits at the origin.
func Crown(size float64, fill string) *svg.Node {
	s := size / CrownBase
	at := func(v float64) int { return int(v * s) }

	outline := [][2]float64{
		{0, 70}, {18, 30}, {36, 70}, {54, 20}, {72, 70},
		{90, 30}, {108, 70}, {108, 92}, {0, 92},
	}
	pts := make([]svg.Point, len(outline))
	for i, p := range outline {
		pts[i] = svg.Pt(at(p[0]), at(p[1]))
	}

	g := svg.Group(svg.A("fill", fill)).Append(svg.Polygon(pts))
	for _, p := range [][2]float64{{18, 30}, {54, 20}, {90, 30}} {
		g.Append(svg.Circle(at(p[0]), at(p[1]), at(6)))
	}
	return g
}

var bearingBalls = []svg.Point{
	{X: 36, Y: 0}, {X: 25.5, Y: 25.5}, {X: 0, Y: 36}, {X: -25.5, Y: 25.5},
	{X: -36, Y: 0}, {X: -25.5, Y: -25.5}, {X: 0, Y: -36}, {X: 25.5, Y: -25.5},
}

// Bearing draws a ball bearing centered at the origin: outer and inner
// races in stroke and eight rolling elements in accent.
func Bearing(stroke, accent string) *svg.Node {
	ring := func(r int) *svg.Node {
		return svg.El("circle", svg.A("r", r), svg.A("fill", "none"), svg.A("stroke", stroke), svg.A("stroke-width", 10))
	}
	balls := svg.Group(svg.A("fill", accent))
	for _, p := range bearingBalls {
		balls.Append(svg.Circle(p.X, p.Y, 6))
	}
	return svg.Group().Append(ring(BearingRadius), ring(24), balls)
}

// Star draws an n-pointed star centered at (cx, cy). The outline walks 2n
// vertices starting straight up, alternating outer and inner radius.
func Star(cx, cy, outer, inner float64, n int, fill string, opacity float64) *svg.Node {
	pts := make([]svg.Point, 0, 2*n)
	for i := range 2 * n {
		angle := math.Pi*float64(i)/float64(n) - math.Pi/2
		r := inner
		if i%2 == 0 {
			r = outer
		}
		pts = append(pts, svg.Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}.Round1())
	}
	return svg.Polygon(pts, svg.A("fill", fill), svg.A("opacity", opacity))
}

// Snowflake draws a three-axis asterisk with a center dot.
func Snowflake(cx, cy, size int, fill string, opacity float64) *svg.Node {
	g := svg.Group(
		svg.A("transform", fmt.Sprintf("translate(%d %d)", cx, cy)),
		svg.A("fill", fill),
		svg.A("opacity", opacity),
	)
	for _, angle := range []int{0, 60, 120} {
		g.Append(svg.Rect(floorDiv(-size, 16), floorDiv(-size, 2), max(1, floorDiv(size, 8)), size,
			svg.A("rx", 1), svg.A("transform", fmt.Sprintf("rotate(%d)", angle))))
	}
	return g.Append(svg.El("circle", svg.A("r", max(1, floorDiv(size, 6)))))
}

// Heart draws a heart from two cubic arcs. Size is relative to a 30-unit
// reference heart.
func Heart(cx, cy int, size float64, fill string, opacity float64) *svg.Node {
	s := size / 30
	at := func(v float64) int { return int(v * s) }
	d := fmt.Sprintf("M%d %d C%d %d %d %d %d %d C%d %d %d %d %d %dZ",
		cx, cy+at(8),
		cx, cy+at(3), cx-at(15), cy-at(8), cx, cy-at(15),
		cx+at(15), cy-at(8), cx, cy+at(3), cx, cy+at(8),
	)
	return svg.Path(d, svg.A("fill", fill), svg.A("opacity", opacity))
}

// DefaultRays is the ray count used by [Firework] callers.
const DefaultRays = 12

// Firework draws rays from 30% of r out to r around (cx, cy), plus a dot.
func Firework(cx, cy, r int, fill string, rays int) *svg.Node {
	burst := svg.Group(svg.A("stroke", fill), svg.A("stroke-width", 2), svg.A("opacity", 0.9))
	for i := range rays {
		angle := 2 * math.Pi * float64(i) / float64(rays)
		cos, sin := math.Cos(angle), math.Sin(angle)
		fr := float64(r)
		burst.Append(svg.Line(
			cx+int(fr*0.3*cos), cy+int(fr*0.3*sin),
			cx+int(fr*cos), cy+int(fr*sin),
		))
	}
	return svg.Group().Append(burst, svg.Circle(cx, cy, 3, svg.A("fill", fill)))
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
