// Package render turns a brand configuration into logo artwork.
//
// # Overview
//
// The engine is split into small packages, leaf-first:
//
//   - [shapes]: hard-coded motifs (crown, bearing, star, snowflake, heart,
//     firework, miter, pumpkin, tree, egg)
//   - [wordmark]: the three-segment brand text and its baseline
//   - [frame]: the standalone SVG document wrapper
//   - [variants]: the ordered catalog of 19 layouts
//   - [preview]: HTML gallery and single-item viewer pages
//
// All of them are pure: no I/O, no shared state. A catalog render is safe to
// run from any number of goroutines.
//
//	outs := variants.Default().Render(cfg.Normalize())
//	page := preview.Gallery(outs, preview.NoSelection)
//
// # Format Conversion
//
// [Convert], [ToPDF] and [ToPNG] turn an SVG into other formats using the
// external rsvg-convert tool (from librsvg).
//
//	pdf, err := render.ToPDF(ctx, []byte(out.SVG))
//	png, err := render.ToPNG(ctx, []byte(out.SVG), 2.0) // 2x scale
//
// [shapes]: github.com/matzehuels/wordmark/pkg/render/shapes
// [wordmark]: github.com/matzehuels/wordmark/pkg/render/wordmark
// [frame]: github.com/matzehuels/wordmark/pkg/render/frame
// [variants]: github.com/matzehuels/wordmark/pkg/render/variants
// [preview]: github.com/matzehuels/wordmark/pkg/render/preview
package render
