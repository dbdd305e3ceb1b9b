// Package brand defines the brand configuration consumed by the logo engine.
//
// A [Config] is a plain value: collaborators (CLI, preview server, settings
// files) build one from user input merged with [Defaults], call
// [Config.Normalize] to clamp numeric fields, and pass it to the renderer.
// The renderer itself never validates or clamps anything.
package brand

import (
	"strings"

	"github.com/matzehuels/wordmark/pkg/fonts"
)

// Clamping limits applied by [Config.Normalize].
const (
	MinIconScale = 0.1
	MinWidth     = 100
	MinHeight    = 50
	MinFontSize  = 10
)

// Config describes the wordmark text, palette, typography, icon placement
// and canvas size for one render pass.
type Config struct {
	Left    string `json:"left" toml:"left" yaml:"left"`
	Right   string `json:"right" toml:"right" yaml:"right"`
	TLD     string `json:"tld" toml:"tld" yaml:"tld"`
	Tagline string `json:"tagline" toml:"tagline" yaml:"tagline"`

	Dark   string `json:"color_dark" toml:"color_dark" yaml:"color_dark" validate:"hexcolor"`
	Red    string `json:"color_red" toml:"color_red" yaml:"color_red" validate:"hexcolor"`
	Gold   string `json:"color_gold" toml:"color_gold" yaml:"color_gold" validate:"hexcolor"`
	White  string `json:"color_white" toml:"color_white" yaml:"color_white" validate:"hexcolor"`
	Grey   string `json:"color_grey" toml:"color_grey" yaml:"color_grey" validate:"hexcolor"`
	BgDark string `json:"bg_dark" toml:"bg_dark" yaml:"bg_dark" validate:"hexcolor"`

	FontStack     string  `json:"font_stack" toml:"font_stack" yaml:"font_stack"`
	TLDScale      float64 `json:"tld_scale" toml:"tld_scale" yaml:"tld_scale"`
	WordGap       int     `json:"word_gap" toml:"word_gap" yaml:"word_gap"`
	TLDGap        int     `json:"tld_gap" toml:"tld_gap" yaml:"tld_gap"`
	LetterSpacing float64 `json:"letter_spacing" toml:"letter_spacing" yaml:"letter_spacing"`

	IconOffsetX int     `json:"icon_offset_x" toml:"icon_offset_x" yaml:"icon_offset_x"`
	IconOffsetY int     `json:"icon_offset_y" toml:"icon_offset_y" yaml:"icon_offset_y"`
	IconScale   float64 `json:"icon_scale" toml:"icon_scale" yaml:"icon_scale"`

	OutWidth  int `json:"out_width" toml:"out_width" yaml:"out_width"`
	OutHeight int `json:"out_height" toml:"out_height" yaml:"out_height"`
	FSMain    int `json:"fs_main" toml:"fs_main" yaml:"fs_main"`
}

// Defaults returns the documented default configuration.
func Defaults() Config {
	return Config{
		Left:      "LEFT",
		Right:     "RIGHT",
		TLD:       ".COM",
		Tagline:   "YOUR TAGLINE APPEARS HERE",
		Dark:      "#1b1b1b",
		Red:       "#e30613",
		Gold:      "#ffce00",
		White:     "#ffffff",
		Grey:      "#666666",
		BgDark:    "#111111",
		FontStack: fonts.DefaultStack,
		TLDScale:  0.44,
		IconScale: 1.0,
		OutWidth:  1200,
		OutHeight: 140,
		FSMain:    96,
	}
}

// Normalize trims text and color fields, restores empty brand words from the
// defaults, resets non-finite floats and clamps numeric fields to their
// documented minimums.
func (c Config) Normalize() Config {
	d := Defaults()

	c.Left = orDefault(c.Left, d.Left)
	c.Right = orDefault(c.Right, d.Right)
	c.TLD = orDefault(c.TLD, d.TLD)
	c.Tagline = strings.TrimSpace(c.Tagline)

	for _, p := range []*string{&c.Dark, &c.Red, &c.Gold, &c.White, &c.Grey, &c.BgDark} {
		*p = strings.TrimSpace(*p)
	}
	if strings.TrimSpace(c.FontStack) == "" {
		c.FontStack = d.FontStack
	}

	for _, f := range []struct {
		v   *float64
		def float64
	}{{&c.TLDScale, d.TLDScale}, {&c.LetterSpacing, d.LetterSpacing}, {&c.IconScale, d.IconScale}} {
		if !finite(*f.v) {
			*f.v = f.def
		}
	}

	c.IconScale = max(MinIconScale, c.IconScale)
	c.OutWidth = max(MinWidth, c.OutWidth)
	c.OutHeight = max(MinHeight, c.OutHeight)
	c.FSMain = max(MinFontSize, c.FSMain)
	return c
}

// Monogram returns the upper-cased first characters of Left and Right.
func (c Config) Monogram() string {
	return strings.ToUpper(firstRune(c.Left) + firstRune(c.Right))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
