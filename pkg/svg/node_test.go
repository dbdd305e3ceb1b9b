package svg

import (
	"bytes"
	"html"
	"strings"
	"testing"
)

func TestSerializeSelfClosing(t *testing.T) {
	got := Rect(0, 5, 100, 20, A("fill", "#000")).String()
	want := `<rect x="0" y="5" width="100" height="20" fill="#000"/>`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSerializeInlineText(t *testing.T) {
	got := El("tspan", A("fill", "#e30613")).Append(CharData("KONIG")).String()
	want := `<tspan fill="#e30613">KONIG</tspan>`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSerializeNested(t *testing.T) {
	g := Group(A("fill", "red")).Append(Circle(1, 2, 3), nil, Circle(4, 5, 6))
	want := "<g fill=\"red\">\n" +
		"  <circle cx=\"1\" cy=\"2\" r=\"3\"/>\n" +
		"  <circle cx=\"4\" cy=\"5\" r=\"6\"/>\n" +
		"</g>"
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if len(g.Children) != 2 {
		t.Errorf("Append should skip nil, got %d children", len(g.Children))
	}
}

func TestEscapeTextRoundTrip(t *testing.T) {
	tests := []string{
		"A<B",
		"R&D",
		"x > y",
		`say "hi"`,
		"<script>&amp;</script>",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			out := Text(s).String()
			inner := strings.TrimSuffix(strings.TrimPrefix(out, "<text>"), "</text>")
			if strings.ContainsAny(inner, "<>") {
				t.Errorf("text content %q contains raw angle brackets", inner)
			}
			if got := html.UnescapeString(inner); got != s {
				t.Errorf("unescape(%q) = %q, want %q", inner, got, s)
			}
		})
	}
}

func TestEscapeLeavesQuotesInText(t *testing.T) {
	if got := Escape(`"Black Ops One"`); got != `"Black Ops One"` {
		t.Errorf("Escape() = %q, quotes should be left untouched", got)
	}
}

func TestEscapeAttrQuotes(t *testing.T) {
	out := El("text", A("data-x", `a"b`)).String()
	if strings.Contains(out, `a"b`) {
		t.Errorf("attribute quote not escaped: %s", out)
	}
}

func TestSetAndGet(t *testing.T) {
	n := El("tspan", A("fill", "#000"))
	n.Set("fill", "#fff").Set("dx", 5)
	if v, _ := n.Get("fill"); v != "#fff" {
		t.Errorf("fill = %q, want #fff", v)
	}
	if v, ok := n.Get("dx"); !ok || v != "5" {
		t.Errorf("dx = %q (%v), want 5", v, ok)
	}
	if _, ok := n.Get("missing"); ok {
		t.Error("Get(missing) should report false")
	}
}

func TestFindAndContent(t *testing.T) {
	txt := El("text").Append(
		El("tspan").Append(CharData("LEFT")),
		El("tspan").Append(CharData("RIGHT")),
	)
	root := El("svg").Append(Group().Append(txt))
	spans := root.Find("tspan")
	if len(spans) != 2 {
		t.Fatalf("Find(tspan) = %d nodes, want 2", len(spans))
	}
	if got := root.Content(); got != "LEFTRIGHT" {
		t.Errorf("Content() = %q, want LEFTRIGHT", got)
	}
}

func TestNumFormatting(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{1.0, "1"},
		{0.7, "0.7"},
		{25.5, "25.5"},
		{-2, "-2"},
		{"x", "x"},
	}
	for _, tt := range tests {
		if got := A("v", tt.in).Value; got != tt.want {
			t.Errorf("A(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPointsRound(t *testing.T) {
	p := Point{X: 12.345, Y: -0.06}.Round1()
	if got := p.String(); got != "12.3,-0.1" {
		t.Errorf("Round1().String() = %q, want %q", got, "12.3,-0.1")
	}
	if got := (Point{X: -1e-16, Y: 0.04}).Round1().String(); got != "0,0" {
		t.Errorf("Round1() near zero = %q, want %q", got, "0,0")
	}
	if got := Points(Pt(0, 70), Pt(18, 30)); got != "0,70 18,30" {
		t.Errorf("Points() = %q", got)
	}
}

func TestTranslate(t *testing.T) {
	a := Translate(10, 5, 1.0)
	if a.Value != "translate(10 5) scale(1)" {
		t.Errorf("Translate() = %q", a.Value)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Circle(0, 0, 1).Encode(&buf); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if buf.String() != `<circle cx="0" cy="0" r="1"/>` {
		t.Errorf("Encode() = %q", buf.String())
	}
}
