package opc

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotPackage is returned when an archive is missing the parts every
// OPC package must carry.
var ErrNotPackage = errors.New("opc: not an OPC package")

// Container provides read access to an existing package archive.
type Container struct {
	files  map[string]*zip.File
	names  []string
	closer io.Closer
}

// OpenFile opens a package archive from disk. The returned Container
// must be closed.
func OpenFile(filename string) (*Container, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opc: opening archive: %w", err)
	}

	c, err := newContainer(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	c.closer = zr
	return c, nil
}

// NewContainer opens a package archive from an in-memory or seekable
// source. Close is a no-op for containers opened this way.
func NewContainer(r io.ReaderAt, size int64) (*Container, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opc: opening archive: %w", err)
	}
	return newContainer(zr)
}

func newContainer(zr *zip.Reader) (*Container, error) {
	c := &Container{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		if _, ok := c.files[f.Name]; ok {
			continue
		}
		c.files[f.Name] = f
		c.names = append(c.names, f.Name)
	}

	if _, ok := c.files[ContentTypesName]; !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrNotPackage, ContentTypesName)
	}
	if _, ok := c.files[relsName("")]; !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrNotPackage, relsName(""))
	}
	return c, nil
}

// Close releases the underlying archive, when owned.
func (c *Container) Close() error {
	if c.closer != nil {
		err := c.closer.Close()
		c.closer = nil
		return err
	}
	return nil
}

// Names returns every part name in archive order.
func (c *Container) Names() []string {
	return c.names
}

// Has reports whether a part exists.
func (c *Container) Has(name string) bool {
	_, ok := c.files[name]
	return ok
}

// ReadPart returns a part's payload. XML payloads written by other
// generators sometimes lead with a UTF-8 or UTF-16 byte order mark;
// those are normalized to plain UTF-8 so XML decoding sees clean input.
// Payloads without a mark, binary media included, are returned byte for
// byte.
func (c *Container) ReadPart(name string) ([]byte, error) {
	f, ok := c.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opc: opening part %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("opc: reading part %s: %w", name, err)
	}
	if !hasBOM(data) {
		return data, nil
	}

	bomAware := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, _, err = transform.Bytes(bomAware, data)
	if err != nil {
		return nil, fmt.Errorf("opc: decoding part %s: %w", name, err)
	}
	return data, nil
}

// hasBOM reports whether data leads with a UTF-8 or UTF-16 byte order
// mark.
func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE})
}

// Relationships returns the relationship set declared by source (empty
// source for the package root). A missing relationship part yields an
// empty set, since relationship parts are optional.
func (c *Container) Relationships(source string) ([]Relationship, error) {
	data, err := c.ReadPart(relsName(source))
	if err != nil {
		if errors.Is(err, ErrMissingPart) {
			return nil, nil
		}
		return nil, err
	}
	return parseRelationships(data)
}

// ContentTypes parses the package's content-types part.
func (c *Container) ContentTypes() (*ContentTypes, error) {
	data, err := c.ReadPart(ContentTypesName)
	if err != nil {
		return nil, err
	}
	return ParseContentTypes(data)
}

// MainDocument resolves the package-level officeDocument relationship to
// a part name.
func (c *Container) MainDocument() (string, error) {
	rels, err := c.Relationships("")
	if err != nil {
		return "", err
	}
	for _, rel := range rels {
		if rel.Type == RelTypeOfficeDocument {
			return ResolveTarget("", rel.Target), nil
		}
	}
	return "", fmt.Errorf("%w: no main document relationship", ErrNotPackage)
}
