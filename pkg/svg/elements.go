package svg

import (
	"math"
	"strings"
)

// Point is a 2D coordinate in user units.
type Point struct{ X, Y float64 }

// Pt builds a Point from integer or float coordinates.
func Pt[T int | float64](x, y T) Point { return Point{float64(x), float64(y)} }

func (p Point) String() string { return Num(p.X) + "," + Num(p.Y) }

// Round1 rounds both coordinates to one decimal place.
func (p Point) Round1() Point {
	return Point{round1(p.X), round1(p.Y)}
}

func round1(v float64) float64 {
	v = math.Round(v*10) / 10
	if v == 0 {
		return 0 // drop the sign of -0
	}
	return v
}

// Points formats a polygon point list ("x1,y1 x2,y2 ...").
func Points(pts ...Point) string {
	s := make([]string, len(pts))
	for i, p := range pts {
		s[i] = p.String()
	}
	return strings.Join(s, " ")
}

// Group creates a <g> element.
func Group(attrs ...Attr) *Node { return El("g", attrs...) }

// Translate returns a transform attribute that moves and uniformly scales
// a locally-drawn fragment.
func Translate(x, y any, scale float64) Attr {
	return Attr{Name: "transform", Value: "translate(" + format(x) + " " + format(y) + ") scale(" + Num(scale) + ")"}
}

// Rect creates a <rect> at (x, y).
func Rect(x, y, w, h any, attrs ...Attr) *Node {
	return El("rect", append([]Attr{A("x", x), A("y", y), A("width", w), A("height", h)}, attrs...)...)
}

// Circle creates a <circle>.
func Circle(cx, cy, r any, attrs ...Attr) *Node {
	return El("circle", append([]Attr{A("cx", cx), A("cy", cy), A("r", r)}, attrs...)...)
}

// Ellipse creates an <ellipse>.
func Ellipse(cx, cy, rx, ry any, attrs ...Attr) *Node {
	return El("ellipse", append([]Attr{A("cx", cx), A("cy", cy), A("rx", rx), A("ry", ry)}, attrs...)...)
}

// Line creates a <line>.
func Line(x1, y1, x2, y2 any, attrs ...Attr) *Node {
	return El("line", append([]Attr{A("x1", x1), A("y1", y1), A("x2", x2), A("y2", y2)}, attrs...)...)
}

// Polygon creates a <polygon> from points.
func Polygon(pts []Point, attrs ...Attr) *Node {
	return El("polygon", append([]Attr{A("points", Points(pts...))}, attrs...)...)
}

// Path creates a <path> from path data.
func Path(d string, attrs ...Attr) *Node {
	return El("path", append([]Attr{A("d", d)}, attrs...)...)
}

// Text creates a <text> element containing character data.
func Text(s string, attrs ...Attr) *Node {
	return El("text", attrs...).Append(CharData(s))
}
