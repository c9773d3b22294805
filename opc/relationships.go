package opc

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsPackageCTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	xmlDecl          = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
)

// relationshipsXML mirrors a .rels part for both encoding and decoding.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Xmlns        string            `xml:"xmlns,attr,omitempty"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// marshalRelationships renders a relationship set as a .rels part body.
func marshalRelationships(rels []Relationship) ([]byte, error) {
	doc := relationshipsXML{
		Xmlns:        nsPackageRels,
		Relationship: make([]relationshipXML, 0, len(rels)),
	}
	for _, r := range rels {
		doc.Relationship = append(doc.Relationship, relationshipXML(r))
	}

	var buf bytes.Buffer
	buf.WriteString(xmlDecl)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("opc: marshaling relationships: %w", err)
	}
	return buf.Bytes(), nil
}

// parseRelationships decodes a .rels part body.
func parseRelationships(data []byte) ([]Relationship, error) {
	var doc relationshipsXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("opc: parsing relationships: %w", err)
	}
	rels := make([]Relationship, 0, len(doc.Relationship))
	for _, r := range doc.Relationship {
		rels = append(rels, Relationship(r))
	}
	return rels, nil
}
