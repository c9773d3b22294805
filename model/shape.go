package model

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a shape is constructed with a
// negative width or height. The owning slide is left unchanged.
var ErrInvalidGeometry = errors.New("model: negative shape dimensions")

// ShapeKind identifies a shape variant. Preset kinds map to the format's
// preset-geometry vocabulary; TextBox has no preset geometry, Picture
// carries an image instead of a geometry, and Table carries a cell grid.
type ShapeKind int

const (
	TextBox ShapeKind = iota
	Rectangle
	RoundedRectangle
	Oval
	Diamond
	Triangle
	RightArrow
	Star
	Hexagon
	Picture
	Table
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case TextBox:
		return "TextBox"
	case Rectangle:
		return "Rectangle"
	case RoundedRectangle:
		return "RoundedRectangle"
	case Oval:
		return "Oval"
	case Diamond:
		return "Diamond"
	case Triangle:
		return "Triangle"
	case RightArrow:
		return "RightArrow"
	case Star:
		return "Star"
	case Hexagon:
		return "Hexagon"
	case Picture:
		return "Picture"
	case Table:
		return "Table"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape is a single drawable element on a slide. A shape has no identity
// beyond its position in the owning slide's sequence; package-unique
// numeric ids are assigned during serialization.
type Shape struct {
	Kind   ShapeKind
	Bounds Rect
	// Fill paints the interior. The zero value is no fill.
	Fill Fill
	// Line strokes the boundary; nil means no outline.
	Line *Outline
	// Text is the shape's text frame; nil until text is added.
	Text *TextFrame
	// Image is the picture payload; set only for Picture shapes.
	Image *Image
	// Table is the cell grid; set only for Table shapes.
	Table *TableFrame
}

// TextFrame returns the shape's text frame, creating an empty one with
// default body properties on first use.
func (s *Shape) TextFrame() *TextFrame {
	if s.Text == nil {
		s.Text = NewTextFrame()
	}
	return s.Text
}

// SetFill sets the shape's fill and returns the shape for chaining.
func (s *Shape) SetFill(f Fill) *Shape {
	s.Fill = f
	return s
}

// SetLine sets the shape's outline and returns the shape for chaining.
func (s *Shape) SetLine(color Color, width Length) *Shape {
	s.Line = &Outline{Color: color, Width: width}
	return s
}

// validateBounds rejects negative dimensions.
func validateBounds(r Rect) error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: %dx%d EMU", ErrInvalidGeometry, r.Width, r.Height)
	}
	return nil
}
