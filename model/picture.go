package model

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Raster formats accepted for Picture shapes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrNoImage is returned when a picture shape is added without image
// data.
var ErrNoImage = errors.New("model: picture without image")

// emuPerPixel converts pixels to EMU at the format's reference 96 DPI.
const emuPerPixel = int64(Inch) / 96

// Image is the payload of a Picture shape: encoded raster bytes plus the
// detected format name ("png", "jpeg", "gif", "bmp", or "tiff").
type Image struct {
	Data   []byte
	Format string
	// PixelWidth and PixelHeight are the intrinsic dimensions decoded
	// from the image header.
	PixelWidth, PixelHeight int
}

// NewImage sniffs the format and intrinsic dimensions of encoded image
// data. The bytes are kept as-is; they are embedded in the package
// without re-encoding.
func NewImage(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("model: decoding image header: %w", err)
	}
	return &Image{
		Data:        data,
		Format:      format,
		PixelWidth:  cfg.Width,
		PixelHeight: cfg.Height,
	}, nil
}

// NaturalSize returns the image's intrinsic size at 96 DPI.
func (img *Image) NaturalSize() Size {
	return Size{
		Width:  Length(int64(img.PixelWidth) * emuPerPixel),
		Height: Length(int64(img.PixelHeight) * emuPerPixel),
	}
}
