package pptx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/slidekit/slidekit/model"
)

// marshalPart renders an xml declaration followed by the marshalled
// document.
func marshalPart(doc any) ([]byte, error) {
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("pptx: marshal part: %w", err)
	}
	return append([]byte(xmlDecl), body...), nil
}

func corePropsXML(md model.Metadata) ([]byte, error) {
	for _, s := range []string{md.Title, md.Author, md.Subject, md.Keywords, md.Comments, md.LastModifiedBy} {
		if err := checkText(s); err != nil {
			return nil, err
		}
	}

	doc := corePropsMarkup{
		XmlnsCP:        nsCoreProps,
		XmlnsDC:        nsDublinCore,
		XmlnsDCTerms:   nsDCTerms,
		XmlnsDCMIType:  nsDCMIType,
		XmlnsXSI:       nsXSI,
		Title:          md.Title,
		Subject:        md.Subject,
		Creator:        md.Author,
		Keywords:       md.Keywords,
		Description:    md.Comments,
		LastModifiedBy: md.LastModifiedBy,
	}
	if md.Revision > 0 {
		doc.Revision = strconv.Itoa(md.Revision)
	}
	if !md.Created.IsZero() {
		doc.Created = &dctermsTime{Type: "dcterms:W3CDTF", Value: w3cdtf(md.Created)}
	}
	if !md.Modified.IsZero() {
		doc.Modified = &dctermsTime{Type: "dcterms:W3CDTF", Value: w3cdtf(md.Modified)}
	}
	return marshalPart(doc)
}

func appPropsXML(prs *model.Presentation, application string) ([]byte, error) {
	paragraphs := 0
	for _, sld := range prs.Slides {
		for _, sp := range sld.Shapes {
			if sp.Text != nil {
				paragraphs += len(sp.Text.Paragraphs)
			}
		}
	}

	doc := appPropsMarkup{
		Xmlns:              nsExtendedProp,
		XmlnsVT:            nsDocPropsVT,
		Application:        application,
		PresentationFormat: "On-screen Show (4:3)",
		Paragraphs:         paragraphs,
		Slides:             prs.SlideCount(),
		AppVersion:         "16.0000",
	}
	return marshalPart(doc)
}

// w3cdtf formats a timestamp the way dcterms:created expects, always in
// UTC so the same metadata yields the same bytes everywhere.
func w3cdtf(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
