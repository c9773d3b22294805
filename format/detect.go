// Package format provides file format detection for the slidekit library.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a recognized container format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// ZIP indicates a ZIP archive that is not a recognizable presentation.
	ZIP
	// PPTX indicates an Office Open XML presentation.
	PPTX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case ZIP:
		return "ZIP"
	case PPTX:
		return "PPTX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case ZIP:
		return ".zip"
	case PPTX:
		return ".pptx"
	default:
		return ""
	}
}

// Detect determines format from the filename extension alone.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pptx":
		return PPTX
	case ".zip":
		return ZIP
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading magic bytes. ZIP archives of any kind
// report ZIP; use DetectFromReader to tell presentations apart from
// other archives.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return ZIP
	}
	return Unknown
}

// DetectFromReader inspects content to determine format. It is more
// reliable than extension-based detection: a ZIP archive is reported as
// PPTX only when it carries the presentation part layout.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if DetectFromMagic(magic[:n]) != ZIP {
		return Unknown, nil
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	hasContentTypes := false
	hasPresentation := false
	for _, f := range zr.File {
		if f.Name == "[Content_Types].xml" {
			hasContentTypes = true
		}
		if strings.HasPrefix(f.Name, "ppt/") {
			hasPresentation = true
		}
	}
	if hasContentTypes && hasPresentation {
		return PPTX, nil
	}
	return ZIP, nil
}
