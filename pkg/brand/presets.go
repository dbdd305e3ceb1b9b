package brand

import (
	"slices"

	"github.com/matzehuels/wordmark/pkg/errors"
)

// Preset is a named canvas size with a matching main font size.
type Preset struct {
	Name     string
	Title    string
	Width    int
	Height   int
	FontSize int
}

// Presets lists the built-in dimension presets in display order.
var Presets = []Preset{
	{"header", "Website header", 400, 80, 62},
	{"header-large", "Website header (large)", 800, 120, 96},
	{"wide", "Wide banner", 1200, 140, 96},
	{"social", "Social media banner", 1500, 200, 140},
	{"favicon", "Favicon / icon", 200, 200, 60},
	{"business-card", "Business card", 600, 100, 78},
	{"print", "Large / print", 2400, 350, 220},
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, error) {
	i := slices.IndexFunc(Presets, func(p Preset) bool { return p.Name == name })
	if i < 0 {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "unknown preset: %q", name)
	}
	return Presets[i], nil
}

// Apply sets the canvas size and font size from p.
func (p Preset) Apply(c Config) Config {
	c.OutWidth = p.Width
	c.OutHeight = p.Height
	c.FSMain = p.FontSize
	return c
}
