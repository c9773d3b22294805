package model

import (
	"fmt"
	"strings"
)

// Color is an opaque RGB color, one byte per channel.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as an uppercase six-digit hex triple, e.g. "FF0000".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// HexColor parses a six-digit hex triple, with or without a leading '#'.
func HexColor(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("model: invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToUpper(s), "%02X%02X%02X", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("model: invalid hex color %q", s)
	}
	return Color{R: r, G: g, B: b}, nil
}

// FillKind discriminates the fill variants a shape can carry.
type FillKind int

const (
	// FillNone leaves the shape unfilled.
	FillNone FillKind = iota
	// FillSolid fills the shape with a single color.
	FillSolid
)

// Fill describes how a shape's interior is painted. The zero value is no
// fill.
type Fill struct {
	Kind  FillKind
	Color Color
	// Transparency is the solid fill's transparency in percent, 0 (opaque)
	// through 100 (invisible).
	Transparency int
}

// NoFill returns an explicit no-fill value.
func NoFill() Fill {
	return Fill{Kind: FillNone}
}

// SolidFill returns an opaque solid fill of the given color.
func SolidFill(c Color) Fill {
	return Fill{Kind: FillSolid, Color: c}
}

// WithTransparency returns the fill with its transparency set, clamped
// to [0, 100].
func (f Fill) WithTransparency(percent int) Fill {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	f.Transparency = percent
	return f
}

// Outline is a shape's stroke: a color and a stroke width.
type Outline struct {
	Color Color
	Width Length
}
