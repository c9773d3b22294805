package model

import "math"

// Length is a distance expressed in EMU (English Metric Units), the
// native integer unit of the Office Open XML drawing format. Lengths are
// constructed by multiplying the unit constants, or via the float helpers
// for fractional amounts:
//
//	model.Inch / 2
//	5 * model.Pt
//	model.Inches(0.5)
type Length int64

// Unit constants in EMU.
const (
	EMU  Length = 1
	Pt   Length = 12700  // 1 point
	Mm   Length = 36000  // 1 millimeter
	Cm   Length = 360000 // 1 centimeter
	Inch Length = 914400 // 1 inch
)

// Inches returns a Length of v inches, rounded to the nearest EMU.
func Inches(v float64) Length {
	return Length(math.Round(v * float64(Inch)))
}

// Points returns a Length of v points, rounded to the nearest EMU.
func Points(v float64) Length {
	return Length(math.Round(v * float64(Pt)))
}

// Centimeters returns a Length of v centimeters, rounded to the nearest EMU.
func Centimeters(v float64) Length {
	return Length(math.Round(v * float64(Cm)))
}

// Millimeters returns a Length of v millimeters, rounded to the nearest EMU.
func Millimeters(v float64) Length {
	return Length(math.Round(v * float64(Mm)))
}

// EMU returns the length as a raw EMU count.
func (l Length) EMU() int64 {
	return int64(l)
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / float64(Inch)
}

// Points returns the length in points.
func (l Length) Points() float64 {
	return float64(l) / float64(Pt)
}

// Centipoints returns the length in hundredths of a point, the unit the
// format uses for font sizes. The result is rounded to the nearest
// centipoint.
func (l Length) Centipoints() int64 {
	return int64(math.Round(float64(l) * 100 / float64(Pt)))
}

// Scale returns the length multiplied by f, rounded to the nearest EMU.
func (l Length) Scale(f float64) Length {
	return Length(math.Round(float64(l) * f))
}

// Offset is a 2D position measured from the top-left corner of a slide.
type Offset struct {
	X, Y Length
}

// Size is a width/height pair. Negative dimensions are representable at
// this layer; shape and slide construction reject them.
type Size struct {
	Width, Height Length
}

// Rect is a positioned size: the bounding box of a shape on its slide.
type Rect struct {
	X, Y          Length
	Width, Height Length
}

// RectXYWH builds a Rect from its corner position and dimensions.
func RectXYWH(x, y, w, h Length) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Offset returns the rectangle's top-left corner.
func (r Rect) Offset() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() Length {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() Length {
	return r.Y + r.Height
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy Length) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Scale returns the rectangle with position and dimensions multiplied
// by f, each rounded to the nearest EMU.
func (r Rect) Scale(f float64) Rect {
	return Rect{
		X:      r.X.Scale(f),
		Y:      r.Y.Scale(f),
		Width:  r.Width.Scale(f),
		Height: r.Height.Scale(f),
	}
}
