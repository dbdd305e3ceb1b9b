// Package svg provides a small typed element tree for building SVG markup.
//
// Markup is never assembled by string concatenation. Callers build a tree of
// [Node] values with typed attributes and serialize it explicitly with
// [Node.Encode] or [Node.String]. All text content and attribute values are
// escaped during serialization, so fragments can be composed freely and
// inspected in tests without string-matching whole documents.
//
// # Building Fragments
//
//	g := svg.Group(svg.A("fill", "#e30613")).Append(
//	    svg.Circle(18, 30, 6),
//	    svg.Polygon([]svg.Point{svg.Pt(0, 70), svg.Pt(18, 30), svg.Pt(36, 70)}),
//	)
//	fmt.Println(g)
//
// # Serialization
//
// Elements without children are self-closed. Elements whose only children are
// character data are written inline; all other elements place each child on
// its own line, indented by two spaces per level.
package svg
