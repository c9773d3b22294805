// Package opc implements the Open Packaging Conventions container used
// by Office Open XML documents: a ZIP archive of named parts tied
// together by relationship parts and a package-level content-types
// declaration.
//
// A [Package] is an ordered, in-memory collection of parts built by a
// part serializer (see the pptx package). [Write] turns a Package into
// archive bytes with a fixed, deterministic entry order, so identical
// packages always produce byte-identical archives. [Container] is the
// read side: it opens an existing archive and exposes part payloads and
// parsed relationship sets.
package opc

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
)

// Relationship type URIs for the part kinds this library produces.
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelTypeSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelTypeSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelTypeTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// ContentTypesName is the package path of the content-types part.
const ContentTypesName = "[Content_Types].xml"

var (
	// ErrPackaging signals an internal inconsistency in a Package handed
	// to Write: a dangling relationship, a missing main-document part, or
	// an empty package. It indicates a bug in the layer that built the
	// package, not bad caller input, and is never recovered.
	ErrPackaging = errors.New("opc: inconsistent package")

	// ErrDuplicatePart is returned when a part name is added twice.
	ErrDuplicatePart = errors.New("opc: duplicate part name")

	// ErrMissingPart is returned when a requested part does not exist.
	ErrMissingPart = errors.New("opc: part not found")
)

// Part is a single named document inside the package.
type Part struct {
	// Name is the archive-internal path, e.g. "ppt/slides/slide1.xml".
	Name string
	// ContentType is the part's declared type. Non-empty values become
	// Override entries in the content-types part; empty values must be
	// covered by a Default registered for the part's extension.
	ContentType string
	Data        []byte
}

// Relationship is a directed, identified reference from one part to
// another, declared in the source part's relationship part.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// Package is an ordered collection of parts plus the relationship and
// content-type tables that bind them. The zero value is not usable; use
// NewPackage.
type Package struct {
	parts    []*Part
	index    map[string]*Part
	rels     map[string][]Relationship
	defaults map[string]string
}

// NewPackage returns an empty package with the standard Defaults for
// relationship parts and XML parts pre-registered.
func NewPackage() *Package {
	p := &Package{
		index:    make(map[string]*Part),
		rels:     make(map[string][]Relationship),
		defaults: make(map[string]string),
	}
	p.SetDefault("rels", "application/vnd.openxmlformats-package.relationships+xml")
	p.SetDefault("xml", "application/xml")
	return p
}

// AddPart appends a part. Parts are written to the archive in the order
// they were added, which is what makes output deterministic.
func (p *Package) AddPart(name, contentType string, data []byte) error {
	if _, ok := p.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePart, name)
	}
	part := &Part{Name: name, ContentType: contentType, Data: data}
	p.parts = append(p.parts, part)
	p.index[name] = part
	return nil
}

// SetDefault registers a content-type Default for a file extension.
func (p *Package) SetDefault(extension, contentType string) {
	p.defaults[strings.ToLower(extension)] = contentType
}

// AddRelationship declares that source references target and returns the
// assigned relationship id. Ids are sequential from "rId1" within each
// source's own numbering scope; scopes do not share a counter. An empty
// source means the package root. Targets are stored as given (relative
// to the source part's directory).
func (p *Package) AddRelationship(source, relType, target string) string {
	id := fmt.Sprintf("rId%d", len(p.rels[source])+1)
	p.rels[source] = append(p.rels[source], Relationship{ID: id, Type: relType, Target: target})
	return id
}

// Part returns the named part, or ErrMissingPart.
func (p *Package) Part(name string) (*Part, error) {
	part, ok := p.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	return part, nil
}

// Has reports whether the named part exists.
func (p *Package) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Parts returns the parts in insertion order. The slice is shared;
// callers must not mutate it.
func (p *Package) Parts() []*Part {
	return p.parts
}

// Relationships returns the relationship set declared by source, in
// declaration order. An empty source means the package root.
func (p *Package) Relationships(source string) []Relationship {
	return p.rels[source]
}

// Defaults returns the extension Defaults sorted by extension.
func (p *Package) Defaults() []ContentTypeDefault {
	exts := make([]string, 0, len(p.defaults))
	for ext := range p.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	out := make([]ContentTypeDefault, 0, len(exts))
	for _, ext := range exts {
		out = append(out, ContentTypeDefault{Extension: ext, ContentType: p.defaults[ext]})
	}
	return out
}

// validate checks the structural invariants Write relies on: at least
// one part, a package-level relationship to a main document part, every
// relationship target resolving to a part, and a content type (Override
// or Default) for every part.
func (p *Package) validate() error {
	if len(p.parts) == 0 {
		return fmt.Errorf("%w: no parts", ErrPackaging)
	}

	var hasMain bool
	for _, rel := range p.rels[""] {
		if rel.Type == RelTypeOfficeDocument {
			hasMain = true
		}
	}
	if !hasMain {
		return fmt.Errorf("%w: no main document relationship", ErrPackaging)
	}

	for source, rels := range p.rels {
		if source != "" {
			if _, ok := p.index[source]; !ok {
				return fmt.Errorf("%w: relationships declared by missing part %s", ErrPackaging, source)
			}
		}
		for _, rel := range rels {
			resolved := ResolveTarget(source, rel.Target)
			if _, ok := p.index[resolved]; !ok {
				return fmt.Errorf("%w: relationship %s of %q targets missing part %s", ErrPackaging, rel.ID, source, resolved)
			}
		}
	}

	for _, part := range p.parts {
		if part.ContentType != "" {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(path.Ext(part.Name), "."))
		if _, ok := p.defaults[ext]; !ok {
			return fmt.Errorf("%w: no content type for part %s", ErrPackaging, part.Name)
		}
	}

	return nil
}

// relsName returns the path of the relationship part describing source.
// The package root's relationships live at "_rels/.rels"; a part's live
// in a "_rels" directory beside it.
func relsName(source string) string {
	if source == "" {
		return "_rels/.rels"
	}
	return path.Join(path.Dir(source), "_rels", path.Base(source)+".rels")
}

// ResolveTarget resolves a relationship target against its source part's
// directory, yielding a package-internal part name.
func ResolveTarget(source, target string) string {
	return path.Join(path.Dir(source), target)
}
