// Package variants is the logo catalog: an ordered list of layout functions
// that each turn a [brand.Config] into one complete SVG document.
//
// # Catalog
//
// [Default] returns the 19 built-in variants in their fixed order. The
// order is part of the contract: collaborators number exported files and
// list entries by catalog position, so new variants are only ever appended.
//
//	outs := variants.Default().Render(cfg)
//	for _, o := range outs {
//	    fmt.Println(o.Label, o.Width, o.Height)
//	}
//
// # Layout
//
// Variants share nothing but the primitives in [shapes], [wordmark] and
// [frame]. Each computes its own canvas, which may be larger than the
// configured size to make room for icon bands, flags or captions. Icon
// offsets from the config are applied after centering.
//
// # Determinism
//
// Themes that scatter motifs use a private generator seeded with a fixed
// constant (sinterklaas 55, valentine 14, carnival 42), created fresh on
// every call. Rendering the same config twice always produces identical
// bytes, in any order and from any number of goroutines.
//
// # Failures
//
// [Catalog.Render] never fails as a whole. A variant that returns an error
// or panics is replaced by a placeholder [Output] labeled "ERROR" carrying
// an empty document and the error text.
//
// [shapes]: github.com/matzehuels/wordmark/pkg/render/shapes
// [wordmark]: github.com/matzehuels/wordmark/pkg/render/wordmark
// [frame]: github.com/matzehuels/wordmark/pkg/render/frame
package variants
