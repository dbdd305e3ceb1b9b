package variants

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/render/frame"
)

// PlaceholderLabel labels the output of a variant that failed to render.
const PlaceholderLabel = "ERROR"

// BuildFunc lays out one variant.
type BuildFunc func(c brand.Config) frame.Document

// Variant is one registered layout.
type Variant struct {
	Number int    // 1-based catalog position
	ID     string // stable slug, e.g. "crown"
	Label  string // display label, e.g. "03 - With crown"
	Build  BuildFunc
}

// Output is the rendered result of one variant.
type Output struct {
	Number int    `json:"number"`
	ID     string `json:"id"`
	Label  string `json:"label"`
	SVG    string `json:"svg"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether o is a placeholder for a failed variant.
func (o Output) Failed() bool { return o.Error != "" }

// Catalog is an ordered list of variants.
type Catalog []Variant

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		{1, "basic", "01 - Basic", Basic},
		{2, "flag", "02 - German flag underline", Flag},
		{3, "crown", "03 - With crown", Crown},
		{4, "bearing", "04 - With bearing icon", Bearing},
		{5, "monogram", "05 - Monogram", Monogram},
		{6, "inverted", "06 - Inverted (dark)", Inverted},
		{7, "diagonal", "07 - Diagonal panel", Diagonal},
		{8, "christmas", "08 - Christmas", Christmas},
		{9, "sinterklaas", "09 - Sinterklaas (NL)", Sinterklaas},
		{10, "koningsdag", "10 - Koningsdag (NL)", Koningsdag},
		{11, "easter", "11 - Easter", Easter},
		{12, "valentine", "12 - Valentine's Day", Valentine},
		{13, "newyear", "13 - New Year", NewYear},
		{14, "unity", "14 - German Unity Day", Unity},
		{15, "oktoberfest", "15 - Oktoberfest (DE)", Oktoberfest},
		{16, "liberation", "16 - Liberation Day (NL)", Liberation},
		{17, "carnival", "17 - Carnival", Carnival},
		{18, "halloween", "18 - Halloween", Halloween},
		{19, "blackfriday", "19 - Black Friday", BlackFriday},
	}
}

// Lookup finds a variant by slug ("crown") or number ("3", "03").
func (cat Catalog) Lookup(ref string) (Variant, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	n, numErr := strconv.Atoi(ref)
	for _, v := range cat {
		if v.ID == ref || (numErr == nil && v.Number == n) {
			return v, nil
		}
	}
	return Variant{}, errors.New(errors.ErrCodeInvalidVariant, "unknown variant: %q", ref)
}

// Select returns the variants named by refs, in catalog order. An empty
// refs list selects everything.
func (cat Catalog) Select(refs ...string) (Catalog, error) {
	if len(refs) == 0 {
		return cat, nil
	}
	want := make(map[int]bool, len(refs))
	for _, ref := range refs {
		v, err := cat.Lookup(ref)
		if err != nil {
			return nil, err
		}
		want[v.Number] = true
	}
	out := make(Catalog, 0, len(want))
	for _, v := range cat {
		if want[v.Number] {
			out = append(out, v)
		}
	}
	return out, nil
}

// IDs returns the variant slugs in catalog order.
func (cat Catalog) IDs() []string {
	ids := make([]string, len(cat))
	for i, v := range cat {
		ids[i] = v.ID
	}
	return ids
}

// Render runs every variant in order. A failing variant yields a
// placeholder output; the remaining variants are unaffected.
func (cat Catalog) Render(c brand.Config) []Output {
	outs := make([]Output, len(cat))
	for i, v := range cat {
		outs[i] = v.Render(c)
	}
	return outs
}

// RenderParallel renders all variants concurrently. Outputs are identical
// to [Catalog.Render]; only ctx cancellation produces an error.
func (cat Catalog) RenderParallel(ctx context.Context, c brand.Config) ([]Output, error) {
	outs := make([]Output, len(cat))
	g, ctx := errgroup.WithContext(ctx)
	for i, v := range cat {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outs[i] = v.Render(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outs, nil
}

// Render builds v, converting a failure into a placeholder output.
func (v Variant) Render(c brand.Config) Output {
	doc, err := v.Safe(c)
	if err != nil {
		return Output{
			Number: v.Number,
			ID:     v.ID,
			Label:  PlaceholderLabel,
			SVG:    frame.Empty().String(),
			Error:  err.Error(),
		}
	}
	return Output{
		Number: v.Number,
		ID:     v.ID,
		Label:  v.Label,
		SVG:    doc.String(),
		Width:  doc.Width,
		Height: doc.Height,
	}
}

// Safe builds v and recovers a panic into a RENDER_FAILED error.
func (v Variant) Safe(c brand.Config) (doc frame.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(errors.ErrCodeRenderFailed, panicError(r), "variant %s", v.ID)
		}
	}()
	if v.Build == nil {
		return frame.Document{}, errors.New(errors.ErrCodeRenderFailed, "variant %s has no layout", v.ID)
	}
	return v.Build(c), nil
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
