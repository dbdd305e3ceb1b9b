package variants

import (
	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/render/frame"
	"github.com/matzehuels/wordmark/pkg/render/shapes"
	"github.com/matzehuels/wordmark/pkg/render/wordmark"
	"github.com/matzehuels/wordmark/pkg/svg"
)

// Theme colors. Seasonal variants use these literally instead of the
// configured palette.
const (
	white     = "#ffffff"
	gold      = "#ffce00"
	signalRed = "#e30613"
	leafGreen = "#2d8a4e"
	nightSky  = "#0a0a2e"
	dusk      = "#1a0a2e"
	orange    = "#FF6600"
	dutchRed  = "#AE1C28"
	dutchBlue = "#21468B"
)

type spot struct{ x, y int }

// Christmas draws a tree band with snowflakes and stars on dark green.
func Christmas(c brand.Config) frame.Document {
	band := scaled(c, 90)
	w, h := c.OutWidth, c.OutHeight+band
	by := band + wordmark.Baseline(c)

	body := []*svg.Node{background(w, h, "#1a3a1a")}
	for _, f := range []struct{ x, y, size int }{
		{80, 20, 18}, {250, 40, 12}, {450, 15, 20}, {650, 35, 14}, {850, 10, 16}, {1050, 25, 10},
	} {
		if f.x < w {
			body = append(body, shapes.Snowflake(f.x, f.y, f.size, white, 0.4))
		}
	}
	body = append(body,
		svg.Group(svg.Translate(w/2+c.IconOffsetX, band-5+c.IconOffsetY, c.IconScale)).
			Append(shapes.Tree(70, shapes.DefaultTreeColors)),
		shapes.Star(float64(w-80), 25, 14, 6, 5, gold, 0.9),
		shapes.Star(float64(w-40), 50, 8, 3, 5, gold, 0.6),
		shapes.Star(100, 35, 10, 4, 5, gold, 0.7),
		wordmark.MainColors(c, margin, by, wordmark.Colors{Left: white, Right: signalRed, TLD: gold}),
		svg.Rect(margin, h-6, w-2*margin, 4, svg.A("fill", gold), svg.A("rx", 2)),
	)
	return frame.Wrap(c, w, h, body)
}

// Sinterklaas draws a miter over scattered pepernoten on dark red.
func Sinterklaas(c brand.Config) frame.Document {
	band := scaled(c, 80)
	w, h := c.OutWidth, c.OutHeight+band+20
	by := band + wordmark.Baseline(c)

	mx := w/2 - scaled(c, 24) + c.IconOffsetX
	my := 8 + c.IconOffsetY
	body := []*svg.Node{
		background(w, h, "#8B0000"),
		svg.Group(svg.Translate(mx, my, c.IconScale)).Append(shapes.Miter(60, shapes.DefaultMiterColors)),
	}

	rng := newRand(SeedSinterklaas)
	for range 8 {
		px := between(rng, margin, w-margin)
		py := between(rng, 5, band-5)
		body = append(body, svg.Circle(px, py, 6, svg.A("fill", "#D2691E"), svg.A("opacity", 0.6)))
	}

	body = append(body,
		wordmark.MainColors(c, margin, by, wordmark.Colors{Left: white, Right: gold, TLD: white}),
		svg.Rect(0, h-6, w, 6, svg.A("fill", gold)),
	)
	return frame.Wrap(c, w, h, body)
}

// Koningsdag draws a white crown on orange with a Dutch flag footer.
func Koningsdag(c brand.Config) frame.Document {
	band := scaled(c, 75)
	w, h := c.OutWidth, c.OutHeight+band
	by := band + wordmark.Baseline(c)

	crownW := scaled(c, shapes.CrownBase)
	cx := w/2 - crownW/2 + c.IconOffsetX
	cy := 5 + c.IconOffsetY

	body := []*svg.Node{
		background(w, h, orange),
		svg.Group(svg.Translate(cx, cy, c.IconScale*0.7)).Append(shapes.Crown(shapes.CrownBase, white)),
		wordmark.MainColors(c, margin, by, wordmark.Colors{Left: white, Right: c.Dark, TLD: white}),
		svg.Rect(0, h-9, w, 3, svg.A("fill", dutchRed)),
		svg.Rect(0, h-6, w, 3, svg.A("fill", "#FFFFFF")),
		svg.Rect(0, h-3, w, 3, svg.A("fill", dutchBlue)),
	}
	return frame.Wrap(c, w, h, body)
}

var eggColors = []string{signalRed, gold, "#4CAF50", "#2196F3", "#FF9800", "#9C27B0"}

// Easter draws a row of bobbing eggs and flowers above a grass line.
func Easter(c brand.Config) frame.Document {
	band := scaled(c, 60)
	w, h := c.OutWidth, c.OutHeight+band
	by := band + wordmark.Baseline(c)

	body := []*svg.Node{background(w, h, "#f0f8e8")}
	spacing := w / 8
	for i, col := range eggColors {
		bob := 8
		if i%2 == 1 {
			bob = -8
		}
		ex := spacing + i*spacing + c.IconOffsetX
		ey := band/2 + bob + c.IconOffsetY
		body = append(body, svg.Group(svg.Translate(ex, ey, c.IconScale*0.8)).Append(shapes.Egg(12, 16, col, white)))
	}
	for _, f := range []spot{{100, band - 10}, {400, band - 8}, {700, band - 12}, {1000, band - 9}} {
		if f.x < w {
			body = append(body,
				svg.Circle(f.x, f.y, 5, svg.A("fill", "#FFD700")),
				svg.Circle(f.x, f.y, 2.5, svg.A("fill", "#FF6347")),
			)
		}
	}
	body = append(body,
		svg.Rect(0, band-4, w, 4, svg.A("fill", "#4CAF50"), svg.A("opacity", 0.5), svg.A("rx", 2)),
		wordmark.Main(c, margin, by),
	)
	return frame.Wrap(c, w, h, body)
}

// Valentine scatters translucent hearts on pale pink.
func Valentine(c brand.Config) frame.Document {
	w, h := c.OutWidth, c.OutHeight+10
	by := wordmark.Baseline(c) + 5

	body := []*svg.Node{background(w, h, "#fff0f3")}
	rng := newRand(SeedValentine)
	for range 15 {
		hx := between(rng, 10, w-10)
		hy := between(rng, 5, h-5)
		size := between(rng, 10, 22)
		op := uniform(rng, 0.15, 0.4)
		body = append(body, shapes.Heart(hx, hy, float64(size), signalRed, op))
	}
	body = append(body, wordmark.MainColors(c, margin, by, wordmark.Colors{Left: c.Dark, Right: signalRed, TLD: c.Dark}))
	return frame.Wrap(c, w, h, body)
}

// NewYear draws fireworks and twinkles on a night sky.
func NewYear(c brand.Config) frame.Document {
	band := scaled(c, 60)
	w, h := c.OutWidth, c.OutHeight+band
	by := band + wordmark.Baseline(c)

	body := []*svg.Node{background(w, h, nightSky)}
	for _, f := range []struct {
		x, y, r int
		fill    string
	}{
		{120, 25, 30, gold}, {350, 35, 35, signalRed}, {600, 20, 28, "#4fc3f7"},
		{850, 30, 32, "#ff9800"}, {1050, 25, 25, "#ab47bc"},
	} {
		if f.x < w {
			body = append(body, shapes.Firework(f.x+c.IconOffsetX, f.y+c.IconOffsetY, scaled(c, f.r), f.fill, shapes.DefaultRays))
		}
	}
	body = append(body, twinkles(w, 0.6, []spot{{50, 15}, {250, 8}, {450, 18}, {700, 5}, {900, 12}, {1100, 20}})...)
	body = append(body,
		wordmark.MainColors(c, margin, by, wordmark.Colors{Left: white, Right: gold, TLD: white}),
		svg.Rect(margin, h-4, w-2*margin, 3, svg.A("fill", gold), svg.A("rx", 1)),
	)
	return frame.Wrap(c, w, h, body)
}

// Unity stacks the German flag above the wordmark and a date caption.
func Unity(c brand.Config) frame.Document {
	return flagBanner(c, 24, [3]string{"#000000", "#DD0000", "#FFCE00"},
		"Tag der Deutschen Einheit - 3. Oktober", c.Grey)
}

// Liberation stacks the Dutch flag above the wordmark and a date caption.
func Liberation(c brand.Config) frame.Document {
	return flagBanner(c, 20, [3]string{dutchRed, "#FFFFFF", dutchBlue},
		"Bevrijdingsdag - 5 mei", dutchBlue)
}

func flagBanner(c brand.Config, stripe int, bands [3]string, caption, captionFill string) frame.Document {
	flagH := 3 * stripe
	const gap, footer = 10, 40
	w, h := c.OutWidth, c.OutHeight+flagH+gap+footer
	by := flagH + gap + wordmark.Baseline(c)

	body := make([]*svg.Node, 0, 5)
	for i, fill := range bands {
		body = append(body, svg.Rect(0, i*stripe, w, stripe, svg.A("fill", fill)))
	}
	body = append(body,
		wordmark.Main(c, margin, by),
		svg.Text(caption,
			svg.A("x", margin),
			svg.A("y", by+35),
			svg.A("class", frame.TagClass),
			svg.A("font-size", 22),
			svg.A("fill", captionFill),
		),
	)
	return frame.Wrap(c, w, h, body)
}

// Oktoberfest draws the Bavarian lozenge pattern in translucent white.
func Oktoberfest(c brand.Config) frame.Document {
	const ds = 16
	w, h := c.OutWidth, c.OutHeight+20
	by := wordmark.Baseline(c) + 10

	body := []*svg.Node{background(w, h, "#0066B3")}
	for dx := 0; dx < w+ds; dx += 2 * ds {
		for row := range 3 {
			px := dx + (row%2)*ds
			py := row * ds
			if px >= w+ds {
				continue
			}
			body = append(body, svg.Polygon([]svg.Point{
				svg.Pt(px, py), svg.Pt(px+ds, py+ds), svg.Pt(px, py+2*ds), svg.Pt(px-ds, py+ds),
			}, svg.A("fill", white), svg.A("opacity", 0.2)))
		}
	}
	body = append(body, wordmark.MainColors(c, margin, by, wordmark.Colors{Left: white, Right: gold, TLD: white}))
	return frame.Wrap(c, w, h, body)
}

var confettiColors = []string{signalRed, gold, leafGreen, "#2196F3", "#FF9800", "#9C27B0"}

// Carnival lays faint vertical stripes under seeded confetti.
func Carnival(c brand.Config) frame.Document {
	w, h := c.OutWidth, c.OutHeight+10
	by := wordmark.Baseline(c) + 5

	body := []*svg.Node{background(w, h, white)}
	sw := w/len(confettiColors) + 1
	for i, col := range confettiColors {
		body = append(body, svg.Rect(i*sw, 0, sw, h, svg.A("fill", col), svg.A("opacity", 0.12)))
	}

	rng := newRand(SeedCarnival)
	for range 25 {
		cx := between(rng, 10, w-10)
		cy := between(rng, 5, h-5)
		r := between(rng, 3, 7)
		col := confettiColors[rng.IntN(len(confettiColors))]
		body = append(body, svg.Circle(cx, cy, r, svg.A("fill", col), svg.A("opacity", 0.35)))
	}
	body = append(body, wordmark.Main(c, margin, by))
	return frame.Wrap(c, w, h, body)
}

// Halloween draws pumpkins under a crescent moon.
func Halloween(c brand.Config) frame.Document {
	band := scaled(c, 70)
	w, h := c.OutWidth, c.OutHeight+band
	by := band + wordmark.Baseline(c)

	body := []*svg.Node{
		background(w, h, dusk),
		svg.Circle(w-60, 35, 25, svg.A("fill", gold), svg.A("opacity", 0.9)),
		svg.Circle(w-48, 30, 23, svg.A("fill", dusk)),
		svg.Group(svg.Translate(w/2+c.IconOffsetX, band/2+5+c.IconOffsetY, c.IconScale)).
			Append(shapes.Pumpkin(50, shapes.DefaultPumpkinColors)),
	}
	for _, x := range []int{int(float64(w) * 0.15), int(float64(w) * 0.85)} {
		body = append(body, svg.Group(svg.Translate(x, band/2, 0.5)).Append(shapes.Pumpkin(40, shapes.DefaultPumpkinColors)))
	}
	body = append(body, twinkles(w, 0.5, []spot{{50, 12}, {200, 8}, {400, 18}, {700, 5}, {900, 15}})...)
	body = append(body, wordmark.MainColors(c, margin, by, wordmark.Colors{Left: orange, Right: signalRed, TLD: gold}))
	return frame.Wrap(c, w, h, body)
}

// BlackFriday renders the wordmark on black with gold rules and a sales line.
func BlackFriday(c brand.Config) frame.Document {
	w, h := c.OutWidth, c.OutHeight+40
	by := wordmark.Baseline(c) + 5

	body := []*svg.Node{
		background(w, h, "#000000"),
		svg.Rect(0, 0, w, 3, svg.A("fill", gold)),
		svg.Rect(0, h-3, w, 3, svg.A("fill", gold)),
		wordmark.MainColors(c, margin, by, wordmark.Colors{Left: white, Right: gold, TLD: white}),
		svg.Text("BLACK FRIDAY DEALS",
			svg.A("x", margin),
			svg.A("y", by+35),
			svg.A("class", wordmark.ClassName),
			svg.A("font-size", 28),
			svg.A("fill", gold),
		),
	}
	return frame.Wrap(c, w, h, body)
}

// twinkles draws small four-point white stars at the spots inside width w.
func twinkles(w int, opacity float64, at []spot) []*svg.Node {
	var out []*svg.Node
	for _, s := range at {
		if s.x < w {
			out = append(out, shapes.Star(float64(s.x), float64(s.y), 3, 1.5, 4, white, opacity))
		}
	}
	return out
}
