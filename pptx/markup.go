package pptx

import "encoding/xml"

// xmlDecl is the declaration every emitted part leads with.
const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Marshal-side element structs. encoding/xml keeps literal "p:"/"a:"/"r:"
// prefixes in tag names, so these emit PresentationML exactly as written;
// the unmarshal side uses the namespace-agnostic structs in types.go
// instead, since prefixed tags do not match on decode.

// sldMarkup is a ppt/slides/slideN.xml document.
type sldMarkup struct {
	XMLName   xml.Name        `xml:"p:sld"`
	XmlnsA    string          `xml:"xmlns:a,attr"`
	XmlnsR    string          `xml:"xmlns:r,attr"`
	XmlnsP    string          `xml:"xmlns:p,attr"`
	CSld      cSldMarkup      `xml:"p:cSld"`
	ClrMapOvr clrMapOvrMarkup `xml:"p:clrMapOvr"`
}

type cSldMarkup struct {
	SpTree spTreeMarkup `xml:"p:spTree"`
}

type clrMapOvrMarkup struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

type spTreeMarkup struct {
	NvGrpSpPr nvGrpSpPrMarkup `xml:"p:nvGrpSpPr"`
	GrpSpPr   grpSpPrMarkup   `xml:"p:grpSpPr"`
	// Shapes holds spMarkup and picMarkup values interleaved in z-order;
	// each carries its own XMLName.
	Shapes []any
}

type nvGrpSpPrMarkup struct {
	CNvPr      cNvPrMarkup `xml:"p:cNvPr"`
	CNvGrpSpPr struct{}    `xml:"p:cNvGrpSpPr"`
	NvPr       struct{}    `xml:"p:nvPr"`
}

type cNvPrMarkup struct {
	ID   uint64 `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type grpSpPrMarkup struct {
	Xfrm grpXfrmMarkup `xml:"a:xfrm"`
}

type grpXfrmMarkup struct {
	Off   offMarkup `xml:"a:off"`
	Ext   extMarkup `xml:"a:ext"`
	ChOff offMarkup `xml:"a:chOff"`
	ChExt extMarkup `xml:"a:chExt"`
}

type offMarkup struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extMarkup struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

// spMarkup is a single p:sp shape element.
type spMarkup struct {
	XMLName xml.Name      `xml:"p:sp"`
	NvSpPr  nvSpPrMarkup  `xml:"p:nvSpPr"`
	SpPr    spPrMarkup    `xml:"p:spPr"`
	TxBody  *txBodyMarkup `xml:"p:txBody"`
}

type nvSpPrMarkup struct {
	CNvPr   cNvPrMarkup   `xml:"p:cNvPr"`
	CNvSpPr cNvSpPrMarkup `xml:"p:cNvSpPr"`
	NvPr    struct{}      `xml:"p:nvPr"`
}

type cNvSpPrMarkup struct {
	TxBox int `xml:"txBox,attr,omitempty"`
}

type spPrMarkup struct {
	Xfrm      xfrmMarkup       `xml:"a:xfrm"`
	PrstGeom  *prstGeomMarkup  `xml:"a:prstGeom"`
	NoFill    *struct{}        `xml:"a:noFill"`
	SolidFill *solidFillMarkup `xml:"a:solidFill"`
	Ln        *lnMarkup        `xml:"a:ln"`
}

type xfrmMarkup struct {
	Off offMarkup `xml:"a:off"`
	Ext extMarkup `xml:"a:ext"`
}

type prstGeomMarkup struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type solidFillMarkup struct {
	SrgbClr srgbClrMarkup `xml:"a:srgbClr"`
}

type srgbClrMarkup struct {
	Val   string     `xml:"val,attr"`
	Alpha *valMarkup `xml:"a:alpha"`
}

type valMarkup struct {
	Val int `xml:"val,attr"`
}

type lnMarkup struct {
	W         int64           `xml:"w,attr"`
	SolidFill solidFillMarkup `xml:"a:solidFill"`
}

type txBodyMarkup struct {
	BodyPr   bodyPrMarkup `xml:"a:bodyPr"`
	LstStyle struct{}     `xml:"a:lstStyle"`
	P        []pMarkup    `xml:"a:p"`
}

type bodyPrMarkup struct {
	Wrap   string `xml:"wrap,attr,omitempty"`
	Anchor string `xml:"anchor,attr,omitempty"`
}

type pMarkup struct {
	PPr *pPrMarkup `xml:"a:pPr"`
	R   []rMarkup  `xml:"a:r"`
}

type pPrMarkup struct {
	Lvl    int           `xml:"lvl,attr,omitempty"`
	Algn   string        `xml:"algn,attr,omitempty"`
	BuNone *struct{}     `xml:"a:buNone"`
	BuChar *buCharMarkup `xml:"a:buChar"`
}

type buCharMarkup struct {
	Char string `xml:"char,attr"`
}

type rMarkup struct {
	RPr *rPrMarkup `xml:"a:rPr"`
	T   string     `xml:"a:t"`
}

type rPrMarkup struct {
	Lang      string           `xml:"lang,attr,omitempty"`
	Sz        int64            `xml:"sz,attr,omitempty"`
	B         int              `xml:"b,attr,omitempty"`
	I         int              `xml:"i,attr,omitempty"`
	U         string           `xml:"u,attr,omitempty"`
	SolidFill *solidFillMarkup `xml:"a:solidFill"`
	Latin     *latinMarkup     `xml:"a:latin"`
}

type latinMarkup struct {
	Typeface string `xml:"typeface,attr"`
}

// picMarkup is a p:pic picture element.
type picMarkup struct {
	XMLName  xml.Name       `xml:"p:pic"`
	NvPicPr  nvPicPrMarkup  `xml:"p:nvPicPr"`
	BlipFill blipFillMarkup `xml:"p:blipFill"`
	SpPr     spPrMarkup     `xml:"p:spPr"`
}

type nvPicPrMarkup struct {
	CNvPr    cNvPrMarkup `xml:"p:cNvPr"`
	CNvPicPr struct{}    `xml:"p:cNvPicPr"`
	NvPr     struct{}    `xml:"p:nvPr"`
}

type blipFillMarkup struct {
	Blip    blipMarkup    `xml:"a:blip"`
	Stretch stretchMarkup `xml:"a:stretch"`
}

type blipMarkup struct {
	Embed string `xml:"r:embed,attr"`
}

type stretchMarkup struct {
	FillRect struct{} `xml:"a:fillRect"`
}

// graphicFrameMarkup is a p:graphicFrame element carrying a table.
type graphicFrameMarkup struct {
	XMLName          xml.Name               `xml:"p:graphicFrame"`
	NvGraphicFramePr nvGraphicFramePrMarkup `xml:"p:nvGraphicFramePr"`
	Xfrm             xfrmMarkup             `xml:"p:xfrm"`
	Graphic          graphicMarkup          `xml:"a:graphic"`
}

type nvGraphicFramePrMarkup struct {
	CNvPr             cNvPrMarkup `xml:"p:cNvPr"`
	CNvGraphicFramePr struct{}    `xml:"p:cNvGraphicFramePr"`
	NvPr              struct{}    `xml:"p:nvPr"`
}

type graphicMarkup struct {
	GraphicData graphicDataMarkup `xml:"a:graphicData"`
}

type graphicDataMarkup struct {
	URI string    `xml:"uri,attr"`
	Tbl tblMarkup `xml:"a:tbl"`
}

type tblMarkup struct {
	TblPr   tblPrMarkup   `xml:"a:tblPr"`
	TblGrid tblGridMarkup `xml:"a:tblGrid"`
	Tr      []trMarkup    `xml:"a:tr"`
}

type tblPrMarkup struct {
	FirstRow int `xml:"firstRow,attr"`
	BandRow  int `xml:"bandRow,attr"`
}

type tblGridMarkup struct {
	GridCol []gridColMarkup `xml:"a:gridCol"`
}

type gridColMarkup struct {
	W int64 `xml:"w,attr"`
}

type trMarkup struct {
	H  int64      `xml:"h,attr"`
	Tc []tcMarkup `xml:"a:tc"`
}

type tcMarkup struct {
	TxBody txBodyMarkup `xml:"a:txBody"`
	TcPr   tcPrMarkup   `xml:"a:tcPr"`
}

type tcPrMarkup struct {
	SolidFill *solidFillMarkup `xml:"a:solidFill"`
}

// presentationMarkup is the ppt/presentation.xml document.
type presentationMarkup struct {
	XMLName        xml.Name             `xml:"p:presentation"`
	XmlnsA         string               `xml:"xmlns:a,attr"`
	XmlnsR         string               `xml:"xmlns:r,attr"`
	XmlnsP         string               `xml:"xmlns:p,attr"`
	SldMasterIdLst sldMasterIdLstMarkup `xml:"p:sldMasterIdLst"`
	SldIdLst       sldIdLstMarkup       `xml:"p:sldIdLst"`
	SldSz          extMarkup            `xml:"p:sldSz"`
	NotesSz        extMarkup            `xml:"p:notesSz"`
}

type sldMasterIdLstMarkup struct {
	SldMasterId []sldMasterIdMarkup `xml:"p:sldMasterId"`
}

type sldMasterIdMarkup struct {
	ID  uint64 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type sldIdLstMarkup struct {
	SldId []sldIdMarkup `xml:"p:sldId"`
}

type sldIdMarkup struct {
	ID  uint64 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

// corePropsMarkup is the docProps/core.xml document. Absent fields are
// omitted entirely rather than written empty, since the format
// distinguishes absent from empty for some readers.
type corePropsMarkup struct {
	XMLName        xml.Name     `xml:"cp:coreProperties"`
	XmlnsCP        string       `xml:"xmlns:cp,attr"`
	XmlnsDC        string       `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string       `xml:"xmlns:dcterms,attr"`
	XmlnsDCMIType  string       `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string       `xml:"xmlns:xsi,attr"`
	Title          string       `xml:"dc:title,omitempty"`
	Subject        string       `xml:"dc:subject,omitempty"`
	Creator        string       `xml:"dc:creator,omitempty"`
	Keywords       string       `xml:"cp:keywords,omitempty"`
	Description    string       `xml:"dc:description,omitempty"`
	LastModifiedBy string       `xml:"cp:lastModifiedBy,omitempty"`
	Revision       string       `xml:"cp:revision,omitempty"`
	Created        *dctermsTime `xml:"dcterms:created"`
	Modified       *dctermsTime `xml:"dcterms:modified"`
}

type dctermsTime struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appPropsMarkup is the docProps/app.xml document.
type appPropsMarkup struct {
	XMLName            xml.Name `xml:"Properties"`
	Xmlns              string   `xml:"xmlns,attr"`
	XmlnsVT            string   `xml:"xmlns:vt,attr"`
	TotalTime          int      `xml:"TotalTime"`
	Words              int      `xml:"Words"`
	Application        string   `xml:"Application"`
	PresentationFormat string   `xml:"PresentationFormat"`
	Paragraphs         int      `xml:"Paragraphs"`
	Slides             int      `xml:"Slides"`
	Notes              int      `xml:"Notes"`
	HiddenSlides       int      `xml:"HiddenSlides"`
	MMClips            int      `xml:"MMClips"`
	ScaleCrop          bool     `xml:"ScaleCrop"`
	LinksUpToDate      bool     `xml:"LinksUpToDate"`
	SharedDoc          bool     `xml:"SharedDoc"`
	HyperlinksChanged  bool     `xml:"HyperlinksChanged"`
	AppVersion         string   `xml:"AppVersion"`
}
