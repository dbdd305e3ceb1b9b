package frame

import (
	"strings"
	"testing"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/svg"
)

func TestWrap(t *testing.T) {
	c := brand.Defaults()
	doc := Wrap(c, 1200, 170, []*svg.Node{svg.Rect(0, 0, 10, 10)})

	if doc.Width != 1200 || doc.Height != 170 {
		t.Errorf("size = %dx%d, want 1200x170", doc.Width, doc.Height)
	}

	out := doc.String()
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>` + "\n<svg ",
		`xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="0 0 1200 170" width="1200" height="170"`,
		`@import url("https://fonts.googleapis.com/css2?family=Black+Ops+One&amp;display=swap");`,
		`font-family: "Black Ops One", Impact, "Arial Black", Arial, sans-serif;`,
		`.tag {`,
		`font-weight: 600;`,
		`<rect x="0" y="0" width="10" height="10"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("document does not end with </svg>:\n%s", out)
	}

	root := doc.Root
	if len(root.Children) != 2 || root.Children[0].Name != "defs" {
		t.Errorf("root children = %d, want defs + body", len(root.Children))
	}
}

func TestLetterSpacing(t *testing.T) {
	c := brand.Defaults()
	if strings.Contains(Stylesheet(c), "letter-spacing") {
		t.Error("zero letter spacing emitted a rule")
	}

	c.LetterSpacing = 1.5
	if css := Stylesheet(c); !strings.Contains(css, "letter-spacing: 1.5px;") {
		t.Errorf("stylesheet = %q, want letter-spacing: 1.5px", css)
	}
	c.LetterSpacing = -2
	if css := Stylesheet(c); !strings.Contains(css, "letter-spacing: -2px;") {
		t.Errorf("stylesheet = %q, want letter-spacing: -2px", css)
	}
}

func TestExtraDefs(t *testing.T) {
	grad := svg.El("linearGradient", svg.A("id", "g1"))
	doc := Wrap(brand.Defaults(), 100, 50, nil, grad)

	defs := doc.Root.Find("defs")[0]
	if len(defs.Children) != 2 || defs.Children[1] != grad {
		t.Errorf("defs children = %v, want style + gradient", defs.Children)
	}
}

func TestEmpty(t *testing.T) {
	out := Empty().String()
	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + `<svg xmlns="http://www.w3.org/2000/svg"/>` + "\n"
	if out != want {
		t.Errorf("Empty() = %q, want %q", out, want)
	}
}
