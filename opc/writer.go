package opc

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// Write assembles the package into a ZIP archive on w. The entry order
// is fixed: the content-types part first, then the package-level
// relationship part, then every part in insertion order, each followed
// immediately by its relationship part if it declares one. Entry headers
// carry no timestamps. Identical packages therefore produce
// byte-identical archives.
//
// Write validates the package before emitting anything and fails with
// ErrPackaging on any inconsistency; no partial archive is flushed in
// that case.
func Write(w io.Writer, p *Package) error {
	if err := p.validate(); err != nil {
		return err
	}

	ctBody, err := contentTypesBody(p)
	if err != nil {
		return err
	}
	pkgRels, err := marshalRelationships(p.rels[""])
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	if err := writeEntry(zw, ContentTypesName, ctBody); err != nil {
		return err
	}
	if err := writeEntry(zw, relsName(""), pkgRels); err != nil {
		return err
	}

	for _, part := range p.parts {
		if err := writeEntry(zw, part.Name, part.Data); err != nil {
			return err
		}
		rels := p.rels[part.Name]
		if len(rels) == 0 {
			continue
		}
		body, err := marshalRelationships(rels)
		if err != nil {
			return err
		}
		if err := writeEntry(zw, relsName(part.Name), body); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("opc: closing archive: %w", err)
	}
	return nil
}

// WriteFile writes the package to a file, creating or truncating it.
// The file is closed on every path; on failure the partial file is
// removed so no inconsistent archive is left behind.
func WriteFile(filename string, p *Package) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("opc: creating %s: %w", filename, err)
	}

	if err := Write(f, p); err != nil {
		f.Close()
		os.Remove(filename)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(filename)
		return fmt.Errorf("opc: closing %s: %w", filename, err)
	}
	return nil
}

// writeEntry adds one archive entry with a fixed header: deflate, no
// modification time, no extra fields.
func writeEntry(zw *zip.Writer, name string, data []byte) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("opc: creating entry %s: %w", name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("opc: writing entry %s: %w", name, err)
	}
	return nil
}
