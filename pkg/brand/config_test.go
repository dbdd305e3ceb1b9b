package brand

import (
	"math"
	"testing"

	"github.com/matzehuels/wordmark/pkg/fonts"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	if d.OutWidth != 1200 || d.OutHeight != 140 || d.FSMain != 96 {
		t.Errorf("canvas = %dx%d fs %d, want 1200x140 fs 96", d.OutWidth, d.OutHeight, d.FSMain)
	}
	if d.TLDScale != 0.44 {
		t.Errorf("TLDScale = %v, want 0.44", d.TLDScale)
	}
	if d.IconScale != 1.0 {
		t.Errorf("IconScale = %v, want 1", d.IconScale)
	}
	if d.FontStack != fonts.DefaultStack {
		t.Errorf("FontStack = %q, want %q", d.FontStack, fonts.DefaultStack)
	}
	if d.Red != "#e30613" || d.Gold != "#ffce00" || d.Dark != "#1b1b1b" {
		t.Errorf("palette = %s/%s/%s", d.Dark, d.Red, d.Gold)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(t *testing.T, c Config)
	}{
		{
			name: "clamps icon scale",
			in:   Config{IconScale: 0},
			check: func(t *testing.T, c Config) {
				if c.IconScale != MinIconScale {
					t.Errorf("IconScale = %v, want %v", c.IconScale, MinIconScale)
				}
			},
		},
		{
			name: "clamps canvas",
			in:   Config{OutWidth: 10, OutHeight: -5, FSMain: 2},
			check: func(t *testing.T, c Config) {
				if c.OutWidth != MinWidth || c.OutHeight != MinHeight || c.FSMain != MinFontSize {
					t.Errorf("got %dx%d fs %d", c.OutWidth, c.OutHeight, c.FSMain)
				}
			},
		},
		{
			name: "keeps values above minimum",
			in:   Config{OutWidth: 800, OutHeight: 120, FSMain: 64, IconScale: 2},
			check: func(t *testing.T, c Config) {
				if c.OutWidth != 800 || c.OutHeight != 120 || c.FSMain != 64 || c.IconScale != 2 {
					t.Errorf("got %+v", c)
				}
			},
		},
		{
			name: "restores blank words",
			in:   Config{Left: "  ", Right: "KONIG", TLD: ""},
			check: func(t *testing.T, c Config) {
				if c.Left != "LEFT" || c.Right != "KONIG" || c.TLD != ".COM" {
					t.Errorf("words = %q %q %q", c.Left, c.Right, c.TLD)
				}
			},
		},
		{
			name: "trims colors",
			in:   Config{Red: " #ff0000 \n"},
			check: func(t *testing.T, c Config) {
				if c.Red != "#ff0000" {
					t.Errorf("Red = %q, want #ff0000", c.Red)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.in.Normalize())
		})
	}
}

func TestNormalizeResetsNonFinite(t *testing.T) {
	c := Defaults()
	c.IconScale = math.NaN()
	c.TLDScale = math.Inf(1)
	c.LetterSpacing = math.Inf(-1)

	n := c.Normalize()
	d := Defaults()
	if n.IconScale != d.IconScale {
		t.Errorf("IconScale = %v, want %v", n.IconScale, d.IconScale)
	}
	if n.TLDScale != d.TLDScale {
		t.Errorf("TLDScale = %v, want %v", n.TLDScale, d.TLDScale)
	}
	if n.LetterSpacing != d.LetterSpacing {
		t.Errorf("LetterSpacing = %v, want %v", n.LetterSpacing, d.LetterSpacing)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	c := Config{Left: " a ", OutWidth: 3, IconScale: 0.01}.Normalize()
	if again := c.Normalize(); again != c {
		t.Errorf("Normalize not idempotent: %+v != %+v", again, c)
	}
}

func TestMonogram(t *testing.T) {
	tests := []struct {
		left, right, want string
	}{
		{"WALZLAGER", "KONIG", "WK"},
		{"left", "right", "LR"},
		{"über", "straße", "ÜS"},
		{"", "", ""},
	}
	for _, tt := range tests {
		c := Config{Left: tt.left, Right: tt.right}
		if got := c.Monogram(); got != tt.want {
			t.Errorf("Monogram(%q, %q) = %q, want %q", tt.left, tt.right, got, tt.want)
		}
	}
}

func TestPresets(t *testing.T) {
	if len(Presets) != 7 {
		t.Fatalf("len(Presets) = %d, want 7", len(Presets))
	}

	p, err := LookupPreset("social")
	if err != nil {
		t.Fatalf("LookupPreset: %v", err)
	}
	c := p.Apply(Defaults())
	if c.OutWidth != 1500 || c.OutHeight != 200 || c.FSMain != 140 {
		t.Errorf("Apply(social) = %dx%d fs %d", c.OutWidth, c.OutHeight, c.FSMain)
	}
	if c.Left != "LEFT" {
		t.Errorf("Apply changed text: %q", c.Left)
	}

	if _, err := LookupPreset("poster"); err == nil {
		t.Error("LookupPreset(poster) succeeded, want error")
	}
}

func TestLint(t *testing.T) {
	if got := Lint(Defaults()); len(got) != 0 {
		t.Errorf("Lint(Defaults()) = %v, want none", got)
	}

	c := Defaults()
	c.Red = "crimson"
	c.Grey = "#abc"
	got := Lint(c)
	if len(got) != 1 {
		t.Fatalf("Lint = %v, want one finding", got)
	}
	if want := `color_red: "crimson" is not a hex color`; got[0] != want {
		t.Errorf("Lint[0] = %q, want %q", got[0], want)
	}
}
