// Package model provides the in-memory representation of a presentation
// document: a tree of slides, shapes, and text, plus the length and
// geometry value types the PPTX format is measured in.
//
// # Document Structure
//
// The [Presentation] type is the root aggregate. It owns an ordered list
// of [Slide] values, each slide owns an ordered list of [Shape] values,
// and each shape may own a [TextFrame] of paragraphs and runs:
//
//	prs := model.New()
//	prs.Metadata.Title = "Quarterly Review"
//	slide := prs.AddSlide()
//	box, err := slide.AddTextBox(model.RectXYWH(model.Inches(0.5), model.Inches(2), model.Inches(9), model.Inches(1.5)))
//
// Ownership is strictly tree-shaped: no entity is shared between two
// parents and no child holds a back-pointer to its parent. This is what
// makes read-only traversal of the tree safe to parallelize.
//
// # Units
//
// All lengths are stored as [Length], an integer count of EMU (English
// Metric Units), the format's native unit. Lengths are built from the
// unit constants the way durations are built from time constants:
//
//	width := 9 * model.Inch
//	stroke := model.Points(2)
//
// # Shapes
//
// Shape kinds are a closed set of [ShapeKind] values with a defined
// mapping to the format's preset-geometry vocabulary. Adding a new
// preset means adding a kind plus one mapping-table entry in the pptx
// package; there is no type hierarchy.
//
// # Validation
//
// Geometry is validated where shapes enter the tree: the Add* methods on
// [Slide] reject negative widths and heights with [ErrInvalidGeometry]
// and leave the slide unchanged. The [Length] arithmetic itself permits
// negative values.
package model
