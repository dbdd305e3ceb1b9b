// Package shapes draws the hard-coded motifs used by the logo variants.
//
// Every function is pure and returns a self-contained [svg.Node] fragment.
// Fragments are drawn in a local coordinate space; callers place them by
// wrapping the result in a translate/scale group:
//
//	g := svg.Group(svg.Translate(cx, cy, scale)).Append(shapes.Crown(108, red))
//
// Coordinates are truncated to integers wherever the motif is defined on an
// integer grid so output stays byte-stable across platforms.
//
// No shape carries a built-in palette. Motifs with several parts (miter,
// pumpkin, tree) take a color struct; [MiterColors], [PumpkinColors] and
// [TreeColors] hold the themed defaults used by the catalog.
package shapes
