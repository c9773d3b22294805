package opc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path"
	"strings"
)

// ContentTypeDefault maps a file extension to a content type.
type ContentTypeDefault struct {
	Extension   string
	ContentType string
}

// ContentTypeOverride maps a single part name to a content type.
type ContentTypeOverride struct {
	PartName    string // absolute, leading slash
	ContentType string
}

// ContentTypes is the parsed form of the [Content_Types].xml part.
type ContentTypes struct {
	Defaults  []ContentTypeDefault
	Overrides []ContentTypeOverride
}

// TypeOf resolves the content type of a part name (without leading
// slash): Overrides win over extension Defaults, mirroring the package
// conventions.
func (ct *ContentTypes) TypeOf(name string) string {
	abs := "/" + name
	for _, o := range ct.Overrides {
		if o.PartName == abs {
			return o.ContentType
		}
	}
	ext := extensionOf(name)
	for _, d := range ct.Defaults {
		if d.Extension == ext {
			return d.ContentType
		}
	}
	return ""
}

type typesXML struct {
	XMLName  xml.Name      `xml:"Types"`
	Xmlns    string        `xml:"xmlns,attr,omitempty"`
	Default  []defaultXML  `xml:"Default"`
	Override []overrideXML `xml:"Override"`
}

type defaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// contentTypesBody renders the content-types part for a package:
// Defaults sorted by extension, then one Override per typed part in
// insertion order.
func contentTypesBody(p *Package) ([]byte, error) {
	doc := typesXML{Xmlns: nsPackageCTypes}
	for _, d := range p.Defaults() {
		doc.Default = append(doc.Default, defaultXML(d))
	}
	for _, part := range p.parts {
		if part.ContentType == "" {
			continue
		}
		doc.Override = append(doc.Override, overrideXML{
			PartName:    "/" + part.Name,
			ContentType: part.ContentType,
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xmlDecl)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("opc: marshaling content types: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseContentTypes decodes a [Content_Types].xml body.
func ParseContentTypes(data []byte) (*ContentTypes, error) {
	var doc typesXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("opc: parsing content types: %w", err)
	}
	ct := &ContentTypes{}
	for _, d := range doc.Default {
		ct.Defaults = append(ct.Defaults, ContentTypeDefault(d))
	}
	for _, o := range doc.Override {
		ct.Overrides = append(ct.Overrides, ContentTypeOverride(o))
	}
	return ct, nil
}

func extensionOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}
