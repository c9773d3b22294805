// Package slidekit builds PPTX (Office Open XML) presentations and
// writes them as deterministic packages: encoding the same presentation
// twice yields byte-identical files.
//
// Basic usage:
//
//	prs := model.New()
//	slide := prs.AddSlide()
//	tb, _ := slide.AddTextBox(model.RectXYWH(model.Inches(1), model.Inches(1), model.Inches(8), model.Inches(1)))
//	tb.Text.SetText("Hello").SetSize(model.Points(44)).SetBold(true)
//	err := slidekit.Save("hello.pptx", prs)
//
// With options:
//
//	err := slidekit.NewEncoder().
//	    Workers(4).
//	    Application("reports/2.1").
//	    Save("report.pptx", prs)
//
// Existing presentations read back into the same model:
//
//	prs, err := slidekit.Open("deck.pptx")
//
// For lower-level control the model, pptx and opc packages are also
// available.
package slidekit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/slidekit/slidekit/format"
	"github.com/slidekit/slidekit/model"
	"github.com/slidekit/slidekit/opc"
	"github.com/slidekit/slidekit/pptx"
)

// ErrUnsupportedFormat is returned by Open and Read when the input is
// not a PPTX presentation.
var ErrUnsupportedFormat = errors.New("slidekit: not a PPTX presentation")

// Write encodes the presentation and writes the package to w.
func Write(w io.Writer, prs *model.Presentation) error {
	return NewEncoder().Write(w, prs)
}

// Save encodes the presentation into the named file. On failure no
// partial file is left behind.
func Save(filename string, prs *model.Presentation) error {
	return NewEncoder().Save(filename, prs)
}

// Open reads a presentation from the named file.
func Open(filename string) (*model.Presentation, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("slidekit: opening %s: %w", filename, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("slidekit: opening %s: %w", filename, err)
	}
	return Read(f, st.Size())
}

// Read reads a presentation from an in-memory or seekable source.
func Read(r io.ReaderAt, size int64) (*model.Presentation, error) {
	f, err := format.DetectFromReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("slidekit: detecting format: %w", err)
	}
	if f != format.PPTX {
		return nil, fmt.Errorf("%w: detected %s", ErrUnsupportedFormat, f)
	}

	c, err := opc.NewContainer(r, size)
	if err != nil {
		return nil, err
	}
	return pptx.Decode(c)
}
