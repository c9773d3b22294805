// Package pptx serializes presentations to and from PPTX
// (Office Open XML Presentation) packages.
package pptx

import "encoding/xml"

// Unmarshal-side structs. Tags carry local names only, so they match
// regardless of the prefixes a producer chose; qualified attributes
// like r:id are matched by their namespace URI.

// presentationXML is the ppt/presentation.xml document.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIdList *slideIdListXML `xml:"sldIdLst"`
	SlideSz     *extXMLRead     `xml:"sldSz"`
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"sldId"`
}

type slideIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type offXMLRead struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extXMLRead struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// slideXML is a ppt/slides/slide*.xml document.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	SpTree spTreeXML `xml:"spTree"`
}

// spTreeXML is the shape tree. Shapes, pictures and graphic frames land
// in separate slices; the decoder restores z-order from their drawing
// ids.
type spTreeXML struct {
	Sp           []spXML           `xml:"sp"`
	Pic          []picXML          `xml:"pic"`
	GraphicFrame []graphicFrameXML `xml:"graphicFrame"`
}

type cNvPrXML struct {
	ID   uint64 `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr   cNvPrXML   `xml:"cNvPr"`
	CNvSpPr cNvSpPrXML `xml:"cNvSpPr"`
}

type cNvSpPrXML struct {
	TxBox int `xml:"txBox,attr"`
}

type spPrXML struct {
	Xfrm      *xfrmXMLRead     `xml:"xfrm"`
	PrstGeom  *prstGeomXML     `xml:"prstGeom"`
	NoFill    *struct{}        `xml:"noFill"`
	SolidFill *solidFillXML    `xml:"solidFill"`
	Ln        *lnXML           `xml:"ln"`
}

type xfrmXMLRead struct {
	Off offXMLRead `xml:"off"`
	Ext extXMLRead `xml:"ext"`
}

type prstGeomXML struct {
	Prst string `xml:"prst,attr"`
}

type solidFillXML struct {
	SrgbClr *srgbClrXML `xml:"srgbClr"`
}

type srgbClrXML struct {
	Val   string     `xml:"val,attr"`
	Alpha *valAttrXML `xml:"alpha"`
}

type valAttrXML struct {
	Val int `xml:"val,attr"`
}

type lnXML struct {
	W         int64         `xml:"w,attr"`
	SolidFill *solidFillXML `xml:"solidFill"`
}

type txBodyXML struct {
	BodyPr bodyPrXML `xml:"bodyPr"`
	P      []pXML    `xml:"p"`
}

type bodyPrXML struct {
	Wrap   string `xml:"wrap,attr"`
	Anchor string `xml:"anchor,attr"`
}

type pXML struct {
	PPr *pPrXML `xml:"pPr"`
	R   []rXML  `xml:"r"`
}

type pPrXML struct {
	Lvl    int         `xml:"lvl,attr"`
	Algn   string      `xml:"algn,attr"`
	BuNone *struct{}   `xml:"buNone"`
	BuChar *buCharXML  `xml:"buChar"`
}

type buCharXML struct {
	Char string `xml:"char,attr"`
}

type rXML struct {
	RPr *rPrXML `xml:"rPr"`
	T   string  `xml:"t"`
}

type rPrXML struct {
	Sz        int64         `xml:"sz,attr"`
	B         *int          `xml:"b,attr"`
	I         *int          `xml:"i,attr"`
	U         string        `xml:"u,attr"`
	SolidFill *solidFillXML `xml:"solidFill"`
	Latin     *latinXML     `xml:"latin"`
}

type latinXML struct {
	Typeface string `xml:"typeface,attr"`
}

type picXML struct {
	NvPicPr  nvPicPrXML  `xml:"nvPicPr"`
	BlipFill blipFillXML `xml:"blipFill"`
	SpPr     spPrXML     `xml:"spPr"`
}

type nvPicPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type blipFillXML struct {
	Blip blipXML `xml:"blip"`
}

type blipXML struct {
	Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
}

type graphicFrameXML struct {
	NvGraphicFramePr nvGraphicFramePrXML `xml:"nvGraphicFramePr"`
	Xfrm             *xfrmXMLRead        `xml:"xfrm"`
	Graphic          graphicXML          `xml:"graphic"`
}

type nvGraphicFramePrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type graphicXML struct {
	GraphicData graphicDataXML `xml:"graphicData"`
}

type graphicDataXML struct {
	URI string  `xml:"uri,attr"`
	Tbl *tblXML `xml:"tbl"`
}

type tblXML struct {
	Grid tblGridXML `xml:"tblGrid"`
	Tr   []trXML    `xml:"tr"`
}

type tblGridXML struct {
	GridCol []gridColXML `xml:"gridCol"`
}

type gridColXML struct {
	W int64 `xml:"w,attr"`
}

type trXML struct {
	H  int64   `xml:"h,attr"`
	Tc []tcXML `xml:"tc"`
}

type tcXML struct {
	TxBody *txBodyXML `xml:"txBody"`
	TcPr   *tcPrXML   `xml:"tcPr"`
}

type tcPrXML struct {
	SolidFill *solidFillXML `xml:"solidFill"`
}

// corePropertiesXML is the docProps/core.xml document.
type corePropertiesXML struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          string   `xml:"title"`
	Subject        string   `xml:"subject"`
	Creator        string   `xml:"creator"`
	Keywords       string   `xml:"keywords"`
	Description    string   `xml:"description"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Revision       string   `xml:"revision"`
	Created        string   `xml:"created"`
	Modified       string   `xml:"modified"`
}
