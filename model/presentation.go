package model

import (
	"fmt"
	"time"
)

// Metadata is the document-level core-properties record. Every field is
// optional; absent fields are omitted from the package rather than
// written empty. Timestamps are never defaulted to the current time, so
// identical models always serialize identically; set Created/Modified
// explicitly if wall-clock stamps are wanted.
type Metadata struct {
	Title          string
	Author         string
	Subject        string
	Keywords       string
	Comments       string
	LastModifiedBy string
	Revision       int
	Created        time.Time
	Modified       time.Time
}

// Slide is an ordered sequence of shapes. The sequence order is the
// z-order and is preserved through serialization.
type Slide struct {
	Shapes []*Shape
}

// AddShape appends a shape of the given kind and returns it for
// configuration. Fails with ErrInvalidGeometry on negative dimensions,
// leaving the slide unchanged.
func (s *Slide) AddShape(kind ShapeKind, bounds Rect) (*Shape, error) {
	if err := validateBounds(bounds); err != nil {
		return nil, err
	}
	sp := &Shape{Kind: kind, Bounds: bounds}
	s.Shapes = append(s.Shapes, sp)
	return sp, nil
}

// AddTextBox appends an unfilled text box and returns it. The returned
// shape has an empty text frame ready for paragraphs.
func (s *Slide) AddTextBox(bounds Rect) (*Shape, error) {
	sp, err := s.AddShape(TextBox, bounds)
	if err != nil {
		return nil, err
	}
	sp.Text = NewTextFrame()
	return sp, nil
}

// AddPicture appends a picture shape showing img within bounds. A zero
// bounds size takes the image's intrinsic size at 96 DPI. Fails with
// ErrNoImage on a nil image, leaving the slide unchanged.
func (s *Slide) AddPicture(img *Image, bounds Rect) (*Shape, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if bounds.Width == 0 && bounds.Height == 0 {
		nat := img.NaturalSize()
		bounds.Width = nat.Width
		bounds.Height = nat.Height
	}
	sp, err := s.AddShape(Picture, bounds)
	if err != nil {
		return nil, err
	}
	sp.Image = img
	return sp, nil
}

// AddTable appends a table anchored at pos with the given column widths.
// Rows are added to the returned shape's Table grid; the table's extent
// is derived from its columns and rows, not from the shape bounds. Fails
// with ErrInvalidGeometry on a negative column width, leaving the slide
// unchanged.
func (s *Slide) AddTable(pos Offset, columnWidths ...Length) (*Shape, error) {
	for _, w := range columnWidths {
		if w < 0 {
			return nil, fmt.Errorf("%w: column width %d EMU", ErrInvalidGeometry, w)
		}
	}
	sp := &Shape{
		Kind:   Table,
		Bounds: Rect{X: pos.X, Y: pos.Y},
		Table:  NewTableFrame(columnWidths...),
	}
	s.Shapes = append(s.Shapes, sp)
	return sp, nil
}

// ShapeCount returns the number of shapes on the slide.
func (s *Slide) ShapeCount() int {
	return len(s.Shapes)
}

// Presentation is the root aggregate: slide dimensions, the ordered
// slide sequence, and document metadata. It owns its entire subtree.
type Presentation struct {
	SlideWidth  Length
	SlideHeight Length
	Slides      []*Slide
	Metadata    Metadata
}

// New returns an empty presentation with the standard 10in x 7.5in
// slide size.
func New() *Presentation {
	return &Presentation{
		SlideWidth:  10 * Inch,
		SlideHeight: Inches(7.5),
	}
}

// AddSlide appends an empty slide and returns it.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.Slides = append(p.Slides, s)
	return s
}

// SlideCount returns the number of slides.
func (p *Presentation) SlideCount() int {
	return len(p.Slides)
}

// ShapeCount returns the total number of shapes across all slides.
func (p *Presentation) ShapeCount() int {
	n := 0
	for _, s := range p.Slides {
		n += len(s.Shapes)
	}
	return n
}
