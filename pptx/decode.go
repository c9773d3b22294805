package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/slidekit/slidekit/model"
	"github.com/slidekit/slidekit/opc"
)

// Decode reads a presentation back out of an OPC container. It is a
// baseline decoder: shapes, fills, outlines, text, pictures and tables
// written by Encode round-trip; content it does not model (placeholders,
// groups, charts) is skipped rather than rejected.
func Decode(c *opc.Container) (*model.Presentation, error) {
	main, err := c.MainDocument()
	if err != nil {
		return nil, err
	}

	data, err := c.ReadPart(main)
	if err != nil {
		return nil, err
	}
	var pres presentationXML
	if err := unmarshalXML(data, &pres); err != nil {
		return nil, fmt.Errorf("pptx: parsing %s: %w", main, err)
	}

	prs := model.New()
	if pres.SlideSz != nil {
		prs.SlideWidth = model.Length(pres.SlideSz.Cx)
		prs.SlideHeight = model.Length(pres.SlideSz.Cy)
	}

	slideParts, err := slideOrder(c, main, &pres)
	if err != nil {
		return nil, err
	}

	for _, name := range slideParts {
		sld, err := decodeSlide(c, name)
		if err != nil {
			return nil, fmt.Errorf("pptx: parsing %s: %w", name, err)
		}
		prs.Slides = append(prs.Slides, sld)
	}

	decodeCoreProps(c, prs)
	return prs, nil
}

// unmarshalXML decodes with a charset-aware reader, so parts declaring
// legacy encodings in their xml declaration still parse.
func unmarshalXML(data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}

var slidePartPattern = regexp.MustCompile(`^ppt/slides/slide([0-9]+)\.xml$`)

// slideOrder resolves slide part names in presentation order. The
// sldIdLst relationship references are authoritative; packages without
// them fall back to numeric part-name order.
func slideOrder(c *opc.Container, main string, pres *presentationXML) ([]string, error) {
	if pres.SlideIdList != nil && len(pres.SlideIdList.SlideId) > 0 {
		rels, err := c.Relationships(main)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]string, len(rels))
		for _, rel := range rels {
			byID[rel.ID] = opc.ResolveTarget(main, rel.Target)
		}

		names := make([]string, 0, len(pres.SlideIdList.SlideId))
		complete := true
		for _, sid := range pres.SlideIdList.SlideId {
			target, ok := byID[sid.RID]
			if !ok {
				complete = false
				break
			}
			names = append(names, target)
		}
		if complete {
			return names, nil
		}
	}

	var names []string
	for _, name := range c.Names() {
		if slidePartPattern.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return slideNumber(names[i]) < slideNumber(names[j])
	})
	return names, nil
}

func slideNumber(name string) int {
	m := slidePartPattern.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

func decodeSlide(c *opc.Container, name string) (*model.Slide, error) {
	data, err := c.ReadPart(name)
	if err != nil {
		return nil, err
	}
	var doc slideXML
	if err := unmarshalXML(data, &doc); err != nil {
		return nil, err
	}

	sld := &model.Slide{}
	for _, sp := range orderedShapes(&doc.CSld.SpTree) {
		switch el := sp.(type) {
		case *spXML:
			sld.Shapes = append(sld.Shapes, decodeShape(el))
		case *picXML:
			shape := decodePicture(c, name, el)
			if shape != nil {
				sld.Shapes = append(sld.Shapes, shape)
			}
		case *graphicFrameXML:
			shape := decodeTable(el)
			if shape != nil {
				sld.Shapes = append(sld.Shapes, shape)
			}
		}
	}
	return sld, nil
}

// orderedShapes restores z-order across the sp and pic slices by merging
// on drawing id; ids are assigned in document order by every producer
// this package reads back.
func orderedShapes(tree *spTreeXML) []any {
	shapes := make([]any, 0, len(tree.Sp)+len(tree.Pic)+len(tree.GraphicFrame))
	for i := range tree.Sp {
		shapes = append(shapes, &tree.Sp[i])
	}
	for i := range tree.Pic {
		shapes = append(shapes, &tree.Pic[i])
	}
	for i := range tree.GraphicFrame {
		shapes = append(shapes, &tree.GraphicFrame[i])
	}
	sort.SliceStable(shapes, func(i, j int) bool {
		return drawingID(shapes[i]) < drawingID(shapes[j])
	})
	return shapes
}

func drawingID(el any) uint64 {
	switch v := el.(type) {
	case *spXML:
		return v.NvSpPr.CNvPr.ID
	case *picXML:
		return v.NvPicPr.CNvPr.ID
	case *graphicFrameXML:
		return v.NvGraphicFramePr.CNvPr.ID
	}
	return 0
}

func decodeShape(sp *spXML) *model.Shape {
	shape := &model.Shape{Kind: model.TextBox}

	if sp.SpPr.PrstGeom != nil {
		// Unmapped presets degrade to plain rectangles.
		kind, ok := kindOf[sp.SpPr.PrstGeom.Prst]
		if !ok {
			kind = model.Rectangle
		}
		shape.Kind = kind
	}
	shape.Bounds = decodeBounds(sp.SpPr.Xfrm)
	shape.Fill = decodeFill(sp.SpPr.SolidFill)
	if sp.SpPr.Ln != nil {
		shape.Line = &model.Outline{Width: model.Length(sp.SpPr.Ln.W)}
		if sp.SpPr.Ln.SolidFill != nil && sp.SpPr.Ln.SolidFill.SrgbClr != nil {
			if c, err := model.HexColor(sp.SpPr.Ln.SolidFill.SrgbClr.Val); err == nil {
				shape.Line.Color = c
			}
		}
	}
	if sp.TxBody != nil {
		shape.Text = decodeTextFrame(sp.TxBody)
	}
	return shape
}

func decodePicture(c *opc.Container, slideName string, pic *picXML) *model.Shape {
	shape := &model.Shape{
		Kind:   model.Picture,
		Bounds: decodeBounds(pic.SpPr.Xfrm),
	}

	rels, err := c.Relationships(slideName)
	if err != nil {
		return shape
	}
	for _, rel := range rels {
		if rel.ID != pic.BlipFill.Blip.Embed {
			continue
		}
		data, err := c.ReadPart(opc.ResolveTarget(slideName, rel.Target))
		if err != nil {
			break
		}
		if img, err := model.NewImage(data); err == nil {
			shape.Image = img
		}
		break
	}
	return shape
}

// decodeTable maps a table graphic frame. Frames carrying other
// payloads (charts, embedded objects) yield nil and are skipped.
func decodeTable(gf *graphicFrameXML) *model.Shape {
	tbl := gf.Graphic.GraphicData.Tbl
	if tbl == nil {
		return nil
	}

	widths := make([]model.Length, 0, len(tbl.Grid.GridCol))
	for _, col := range tbl.Grid.GridCol {
		widths = append(widths, model.Length(col.W))
	}
	tf := model.NewTableFrame(widths...)
	for _, tr := range tbl.Tr {
		row := tf.AddRow()
		if tr.H != 0 {
			row.SetHeight(model.Length(tr.H))
		}
		for i, tc := range tr.Tc {
			if i >= len(row.Cells) {
				break
			}
			cell := row.Cells[i]
			if tc.TxBody != nil {
				cell.Text, cell.Bold = cellContent(tc.TxBody)
			}
			if tc.TcPr != nil {
				cell.Fill = decodeFill(tc.TcPr.SolidFill)
			}
		}
	}

	return &model.Shape{
		Kind:   model.Table,
		Bounds: decodeBounds(gf.Xfrm),
		Table:  tf,
	}
}

// cellContent flattens a cell body into its text; any bold run marks the
// cell bold.
func cellContent(body *txBodyXML) (text string, bold bool) {
	for _, p := range body.P {
		for _, r := range p.R {
			text += r.T
			if r.RPr != nil && r.RPr.B != nil && *r.RPr.B == 1 {
				bold = true
			}
		}
	}
	return text, bold
}

func decodeBounds(xfrm *xfrmXMLRead) model.Rect {
	if xfrm == nil {
		return model.Rect{}
	}
	return model.Rect{
		X:      model.Length(xfrm.Off.X),
		Y:      model.Length(xfrm.Off.Y),
		Width:  model.Length(xfrm.Ext.Cx),
		Height: model.Length(xfrm.Ext.Cy),
	}
}

func decodeFill(sf *solidFillXML) model.Fill {
	if sf == nil || sf.SrgbClr == nil {
		return model.NoFill()
	}
	c, err := model.HexColor(sf.SrgbClr.Val)
	if err != nil {
		return model.NoFill()
	}
	fill := model.SolidFill(c)
	if sf.SrgbClr.Alpha != nil {
		fill = fill.WithTransparency(100 - sf.SrgbClr.Alpha.Val/1000)
	}
	return fill
}

var alignmentOf = map[string]model.Alignment{
	"ctr":  model.AlignCenter,
	"r":    model.AlignRight,
	"just": model.AlignJustify,
}

var anchorOf = map[string]model.Anchor{
	"ctr": model.AnchorMiddle,
	"b":   model.AnchorBottom,
}

func decodeTextFrame(body *txBodyXML) *model.TextFrame {
	tf := model.NewTextFrame()
	tf.WordWrap = body.BodyPr.Wrap != "none"
	tf.Anchor = anchorOf[body.BodyPr.Anchor]

	for i := range body.P {
		p := &body.P[i]
		para := tf.AddParagraph()
		if p.PPr != nil {
			para.SetLevel(p.PPr.Lvl)
			para.Alignment = alignmentOf[p.PPr.Algn]
			if p.PPr.BuChar != nil {
				para.Bullet = true
				para.BulletChar = p.PPr.BuChar.Char
			}
		}
		for j := range p.R {
			decodeRun(para, &p.R[j])
		}
	}
	return tf
}

func decodeRun(para *model.Paragraph, r *rXML) {
	run := para.AddRun(r.T)
	if r.RPr == nil {
		return
	}
	if r.RPr.Sz > 0 {
		run.Size = model.Length(r.RPr.Sz) * model.Pt / 100
	}
	run.Bold = r.RPr.B != nil && *r.RPr.B == 1
	run.Italic = r.RPr.I != nil && *r.RPr.I == 1
	run.Underline = r.RPr.U != "" && r.RPr.U != "none"
	if r.RPr.SolidFill != nil && r.RPr.SolidFill.SrgbClr != nil {
		if c, err := model.HexColor(r.RPr.SolidFill.SrgbClr.Val); err == nil {
			run.Color = &c
		}
	}
	if r.RPr.Latin != nil {
		run.Font = r.RPr.Latin.Typeface
	}
}

// decodeCoreProps fills in document metadata. The part is optional and
// parse failures leave metadata empty rather than failing the decode.
func decodeCoreProps(c *opc.Container, prs *model.Presentation) {
	data, err := c.ReadPart(corePropsName(c))
	if err != nil {
		return
	}
	var props corePropertiesXML
	if err := unmarshalXML(data, &props); err != nil {
		return
	}

	md := &prs.Metadata
	md.Title = props.Title
	md.Subject = props.Subject
	md.Author = props.Creator
	md.Keywords = props.Keywords
	md.Comments = props.Description
	md.LastModifiedBy = strings.TrimSpace(props.LastModifiedBy)
	if props.Revision != "" {
		md.Revision, _ = strconv.Atoi(strings.TrimSpace(props.Revision))
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(props.Created)); err == nil {
		md.Created = t
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(props.Modified)); err == nil {
		md.Modified = t
	}
}

// corePropsName resolves the core-properties part from the package-level
// relationship, so packages that place it somewhere other than
// docProps/core.xml still decode.
func corePropsName(c *opc.Container) string {
	rels, err := c.Relationships("")
	if err == nil {
		for _, rel := range rels {
			if rel.Type == opc.RelTypeCoreProps {
				return opc.ResolveTarget("", rel.Target)
			}
		}
	}
	return corePropsPart
}
