package slidekit

import (
	"io"

	"github.com/slidekit/slidekit/model"
	"github.com/slidekit/slidekit/opc"
	"github.com/slidekit/slidekit/pptx"
)

// Encoder is a configurable presentation writer. Option methods return
// a copy, so a configured Encoder can be shared and reused safely.
type Encoder struct {
	opts pptx.EncodeOptions
}

// NewEncoder returns an Encoder with default options.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// clone creates a copy of the encoder with the same options.
func (e *Encoder) clone() *Encoder {
	return &Encoder{opts: e.opts}
}

// Workers sets how many slides are serialized concurrently. Values
// below one mean one worker per CPU.
func (e *Encoder) Workers(n int) *Encoder {
	c := e.clone()
	c.opts.Workers = n
	return c
}

// Application sets the producing application name recorded in the
// document properties.
func (e *Encoder) Application(name string) *Encoder {
	c := e.clone()
	c.opts.Application = name
	return c
}

// Write encodes the presentation and writes the package to w.
func (e *Encoder) Write(w io.Writer, prs *model.Presentation) error {
	pkg, err := pptx.EncodeWithOptions(prs, e.opts)
	if err != nil {
		return err
	}
	return opc.Write(w, pkg)
}

// Save encodes the presentation into the named file.
func (e *Encoder) Save(filename string, prs *model.Presentation) error {
	pkg, err := pptx.EncodeWithOptions(prs, e.opts)
	if err != nil {
		return err
	}
	return opc.WriteFile(filename, pkg)
}
