package shapes

import (
	"strings"
	"testing"

	"github.com/matzehuels/wordmark/pkg/svg"
)

func attr(t *testing.T, n *svg.Node, name string) string {
	t.Helper()
	v, ok := n.Get(name)
	if !ok {
		t.Fatalf("<%s> has no %s attribute", n.Name, name)
	}
	return v
}

func TestCrown(t *testing.T) {
	tests := []struct {
		size   float64
		points string
		r      string
	}{
		{108, "0,70 18,30 36,70 54,20 72,70 90,30 108,70 108,92 0,92", "6"},
		{54, "0,35 9,15 18,35 27,10 36,35 45,15 54,35 54,46 0,46", "3"},
	}
	for _, tt := range tests {
		g := Crown(tt.size, "#e30613")
		if got := attr(t, g, "fill"); got != "#e30613" {
			t.Errorf("Crown(%v) fill = %q", tt.size, got)
		}
		poly := g.Find("polygon")
		if len(poly) != 1 {
			t.Fatalf("Crown(%v) polygons = %d, want 1", tt.size, len(poly))
		}
		if got := attr(t, poly[0], "points"); got != tt.points {
			t.Errorf("Crown(%v) points = %q, want %q", tt.size, got, tt.points)
		}
		dots := g.Find("circle")
		if len(dots) != 3 {
			t.Fatalf("Crown(%v) dots = %d, want 3", tt.size, len(dots))
		}
		for _, d := range dots {
			if got := attr(t, d, "r"); got != tt.r {
				t.Errorf("Crown(%v) dot r = %q, want %q", tt.size, got, tt.r)
			}
		}
	}
}

func TestBearing(t *testing.T) {
	g := Bearing("#1b1b1b", "#e30613")
	circles := g.Find("circle")
	if len(circles) != 10 {
		t.Fatalf("circles = %d, want 10", len(circles))
	}
	if got := attr(t, circles[0], "r"); got != "52" {
		t.Errorf("outer race r = %q, want 52", got)
	}
	if got := attr(t, circles[1], "r"); got != "24" {
		t.Errorf("inner race r = %q, want 24", got)
	}
	if got := attr(t, circles[1], "stroke"); got != "#1b1b1b" {
		t.Errorf("inner race stroke = %q", got)
	}
	if got := attr(t, circles[3], "cx") + "," + attr(t, circles[3], "cy"); got != "25.5,25.5" {
		t.Errorf("second ball at %q, want 25.5,25.5", got)
	}
}

func TestStar(t *testing.T) {
	for _, n := range []int{4, 5, 7} {
		p := Star(0, 0, 10, 5, n, "#ffce00", 0.6)
		pts := strings.Fields(attr(t, p, "points"))
		if len(pts) != 2*n {
			t.Errorf("Star(n=%d) vertices = %d, want %d", n, len(pts), 2*n)
		}
		if pts[0] != "0,-10" {
			t.Errorf("Star(n=%d) first vertex = %q, want 0,-10", n, pts[0])
		}
		if got := attr(t, p, "opacity"); got != "0.6" {
			t.Errorf("opacity = %q, want 0.6", got)
		}
	}

	pts := strings.Fields(attr(t, Star(100, 50, 10, 4, 4, "#fff", 1), "points"))
	want := []string{"100,40", "102.8,47.2", "110,50", "102.8,52.8", "100,60", "97.2,52.8", "90,50", "97.2,47.2"}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("vertex %d = %q, want %q", i, pts[i], want[i])
		}
	}
}

func TestSnowflake(t *testing.T) {
	tests := []struct {
		size             int
		x, y, width, dot string
	}{
		{12, "-1", "-6", "1", "2"},
		{20, "-2", "-10", "2", "3"},
		{4, "-1", "-2", "1", "1"},
	}
	for _, tt := range tests {
		g := Snowflake(80, 20, tt.size, "#ffffff", 0.4)
		if got := attr(t, g, "transform"); got != "translate(80 20)" {
			t.Errorf("transform = %q", got)
		}
		arms := g.Find("rect")
		if len(arms) != 3 {
			t.Fatalf("arms = %d, want 3", len(arms))
		}
		a := arms[0]
		if x, y, w := attr(t, a, "x"), attr(t, a, "y"), attr(t, a, "width"); x != tt.x || y != tt.y || w != tt.width {
			t.Errorf("Snowflake(%d) arm = x %s y %s w %s, want x %s y %s w %s", tt.size, x, y, w, tt.x, tt.y, tt.width)
		}
		if got := attr(t, arms[2], "transform"); got != "rotate(120)" {
			t.Errorf("third arm transform = %q", got)
		}
		if got := attr(t, g.Find("circle")[0], "r"); got != tt.dot {
			t.Errorf("Snowflake(%d) dot r = %q, want %q", tt.size, got, tt.dot)
		}
	}
}

func TestHeart(t *testing.T) {
	p := Heart(100, 50, 30, "#e30613", 0.25)
	want := "M100 58 C100 53 85 42 100 35 C115 42 100 53 100 58Z"
	if got := attr(t, p, "d"); got != want {
		t.Errorf("d = %q, want %q", got, want)
	}
	if got := attr(t, p, "opacity"); got != "0.25" {
		t.Errorf("opacity = %q", got)
	}
}

func TestFirework(t *testing.T) {
	g := Firework(0, 0, 10, "#ffce00", 4)
	lines := g.Find("line")
	if len(lines) != 4 {
		t.Fatalf("rays = %d, want 4", len(lines))
	}
	want := [][4]string{{"3", "0", "10", "0"}, {"0", "3", "0", "10"}, {"-3", "0", "-10", "0"}, {"0", "-3", "0", "-10"}}
	for i, l := range lines {
		got := [4]string{attr(t, l, "x1"), attr(t, l, "y1"), attr(t, l, "x2"), attr(t, l, "y2")}
		if got != want[i] {
			t.Errorf("ray %d = %v, want %v", i, got, want[i])
		}
	}
	if n := len(Firework(5, 5, 20, "#fff", DefaultRays).Find("line")); n != DefaultRays {
		t.Errorf("default rays = %d, want %d", n, DefaultRays)
	}
	dot := g.Find("circle")
	if len(dot) != 1 || attr(t, dot[0], "fill") != "#ffce00" {
		t.Errorf("center dot = %v", dot)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3}, {-7, 2, -4}, {-8, 2, -4}, {-25, 3, -9}, {0, 5, 0}, {7, -2, -4},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
