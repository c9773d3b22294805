package pptx

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"github.com/slidekit/slidekit/model"
	"github.com/slidekit/slidekit/opc"
)

// containerFor writes a package and reopens it for reading.
func containerFor(t *testing.T, pkg *opc.Package) *opc.Container {
	t.Helper()
	var buf bytes.Buffer
	if err := opc.Write(&buf, pkg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	c, err := opc.NewContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}
	return c
}

// writeZipFile writes a file into a zip archive.
func writeZipFile(t *testing.T, zw *zip.Writer, name, content string) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("Failed to create %s in zip: %v", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestRoundTrip(t *testing.T) {
	prs := model.New()
	prs.Metadata.Title = "Round Trip"
	prs.Metadata.Author = "QA"
	prs.Metadata.Created = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	sld := prs.AddSlide()
	tb, err := sld.AddTextBox(model.RectXYWH(model.Inches(1), model.Inches(1), model.Inches(8), model.Inches(1.5)))
	if err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}
	tb.Text.Anchor = model.AnchorMiddle
	para := tb.Text.AddParagraph().SetAlignment(model.AlignCenter)
	para.AddRun("Quarterly Review").
		SetSize(model.Points(54)).
		SetBold(true).
		SetColor(model.RGB(0x00, 0x33, 0x66))

	box, err := sld.AddShape(model.RoundedRectangle, model.RectXYWH(0, model.Inches(3), model.Inches(2), model.Inches(1)))
	if err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	box.SetFill(model.SolidFill(model.RGB(0xFF, 0, 0)).WithTransparency(25))
	box.SetLine(model.RGB(0, 0, 0), model.Points(2))

	second := prs.AddSlide()
	list, err := second.AddTextBox(model.RectXYWH(0, 0, model.Inches(4), model.Inches(3)))
	if err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}
	list.Text.AddParagraph().SetBullet(true).AddRun("first point")
	list.Text.AddParagraph().SetBullet(true).SetLevel(1).AddRun("detail").SetItalic(true)

	pkg, err := Encode(prs)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(containerFor(t, pkg))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got.SlideWidth != prs.SlideWidth || got.SlideHeight != prs.SlideHeight {
		t.Errorf("Slide size mismatch: got %v x %v", got.SlideWidth, got.SlideHeight)
	}
	if got.SlideCount() != 2 {
		t.Fatalf("Expected 2 slides, got %d", got.SlideCount())
	}
	if got.Metadata.Title != "Round Trip" || got.Metadata.Author != "QA" {
		t.Errorf("Metadata mismatch: %+v", got.Metadata)
	}
	if !got.Metadata.Created.Equal(prs.Metadata.Created) {
		t.Errorf("Created mismatch: got %v", got.Metadata.Created)
	}

	shapes := got.Slides[0].Shapes
	if len(shapes) != 2 {
		t.Fatalf("Expected 2 shapes on slide 1, got %d", len(shapes))
	}

	gtb := shapes[0]
	if gtb.Kind != model.TextBox {
		t.Errorf("Expected TextBox, got %v", gtb.Kind)
	}
	if gtb.Bounds != tb.Bounds {
		t.Errorf("Bounds mismatch: got %+v want %+v", gtb.Bounds, tb.Bounds)
	}
	if gtb.Text == nil || gtb.Text.Anchor != model.AnchorMiddle {
		t.Fatalf("Anchor lost: %+v", gtb.Text)
	}
	gp := gtb.Text.Paragraphs[0]
	if gp.Alignment != model.AlignCenter {
		t.Errorf("Alignment lost")
	}
	gr := gp.Runs[0]
	if gr.Text != "Quarterly Review" || !gr.Bold || gr.Size != model.Points(54) {
		t.Errorf("Run mismatch: %+v", gr)
	}
	if gr.Color == nil || *gr.Color != model.RGB(0x00, 0x33, 0x66) {
		t.Errorf("Run color mismatch: %+v", gr.Color)
	}

	gbox := shapes[1]
	if gbox.Kind != model.RoundedRectangle {
		t.Errorf("Expected RoundedRectangle, got %v", gbox.Kind)
	}
	if gbox.Fill.Kind != model.FillSolid || gbox.Fill.Color != model.RGB(0xFF, 0, 0) || gbox.Fill.Transparency != 25 {
		t.Errorf("Fill mismatch: %+v", gbox.Fill)
	}
	if gbox.Line == nil || gbox.Line.Width != model.Points(2) || gbox.Line.Color != model.RGB(0, 0, 0) {
		t.Errorf("Outline mismatch: %+v", gbox.Line)
	}

	glist := got.Slides[1].Shapes[0]
	ps := glist.Text.Paragraphs
	if len(ps) != 2 || !ps[0].Bullet || !ps[1].Bullet || ps[1].Level != 1 {
		t.Errorf("Bullet structure lost: %+v", ps)
	}
	if !ps[1].Runs[0].Italic {
		t.Errorf("Italic lost")
	}
}

func TestRoundTripPicture(t *testing.T) {
	img, err := model.NewImage(pngBytes(t, 96, 48))
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	prs := model.New()
	sld := prs.AddSlide()
	if _, err := sld.AddTextBox(model.RectXYWH(0, 0, model.Inches(1), model.Inches(1))); err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}
	if _, err := sld.AddPicture(img, model.RectXYWH(model.Inches(2), 0, 0, 0)); err != nil {
		t.Fatalf("AddPicture: %v", err)
	}

	pkg, err := Encode(prs)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(containerFor(t, pkg))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	shapes := got.Slides[0].Shapes
	if len(shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(shapes))
	}
	pic := shapes[1]
	if pic.Kind != model.Picture {
		t.Fatalf("Z-order lost: second shape is %v", pic.Kind)
	}
	if pic.Image == nil {
		t.Fatalf("Image data lost")
	}
	if pic.Image.Format != "png" || pic.Image.PixelWidth != 96 || pic.Image.PixelHeight != 48 {
		t.Errorf("Image mismatch: %+v", pic.Image)
	}
	if !bytes.Equal(pic.Image.Data, img.Data) {
		t.Errorf("Image bytes changed")
	}
}

func TestRoundTripTable(t *testing.T) {
	prs := model.New()
	sld := prs.AddSlide()
	if _, err := sld.AddTextBox(model.RectXYWH(0, 0, model.Inches(1), model.Inches(1))); err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}
	tbl, err := sld.AddTable(model.Offset{X: model.Inch, Y: 2 * model.Inch}, model.Inch, 2*model.Inch)
	if err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	header := tbl.Table.AddRow("Name", "City")
	header.Cell(0).SetBold(true)
	header.Cell(1).SetFill(model.SolidFill(model.RGB(0xDD, 0xEB, 0xF7)))
	tbl.Table.AddRow("Alice", "Oslo").SetHeight(model.Inches(0.5))

	pkg, err := Encode(prs)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(containerFor(t, pkg))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	shapes := got.Slides[0].Shapes
	if len(shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(shapes))
	}
	gt := shapes[1]
	if gt.Kind != model.Table {
		t.Fatalf("Z-order lost: second shape is %v", gt.Kind)
	}
	if gt.Bounds.X != model.Inch || gt.Bounds.Y != 2*model.Inch {
		t.Errorf("Position lost: %+v", gt.Bounds)
	}
	grid := gt.Table
	if grid == nil || grid.ColumnCount() != 2 || grid.RowCount() != 2 {
		t.Fatalf("Grid shape lost: %+v", grid)
	}
	if grid.ColumnWidths[0] != model.Inch || grid.ColumnWidths[1] != 2*model.Inch {
		t.Errorf("Column widths lost: %+v", grid.ColumnWidths)
	}

	ghead := grid.Rows[0]
	if ghead.Cell(0).Text != "Name" || !ghead.Cell(0).Bold {
		t.Errorf("Header cell lost: %+v", ghead.Cell(0))
	}
	cityFill := ghead.Cell(1).Fill
	if cityFill.Kind != model.FillSolid || cityFill.Color != model.RGB(0xDD, 0xEB, 0xF7) {
		t.Errorf("Cell fill lost: %+v", cityFill)
	}

	gdata := grid.Rows[1]
	if gdata.Height != model.Inches(0.5) {
		t.Errorf("Row height lost: %v", gdata.Height)
	}
	if gdata.Cell(0).Text != "Alice" || gdata.Cell(0).Bold {
		t.Errorf("Data cell mismatch: %+v", gdata.Cell(0))
	}
	if gdata.Cell(1).Fill.Kind != model.FillNone {
		t.Errorf("Unfilled cell decoded with fill: %+v", gdata.Cell(1).Fill)
	}
}

// Presentations from other producers carry placeholders, unknown
// presets, and parts in arbitrary order; decoding stays lenient.
func TestDecodeForeignPackage(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	writeZipFile(t, zw, "[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
  <Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
  <Override PartName="/ppt/slides/slide2.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
  <Override PartName="/props/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`)

	// Core properties live somewhere other than docProps/core.xml; the
	// package relationship is what locates them.
	writeZipFile(t, zw, "_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="props/core.xml"/>
</Relationships>`)

	writeZipFile(t, zw, "props/core.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>Relocated</dc:title>
  <dc:creator>someone else</dc:creator>
</cp:coreProperties>`)

	// sldIdLst lists slide 2 before slide 1.
	writeZipFile(t, zw, "ppt/_rels/presentation.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide2.xml"/>
  <Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>
</Relationships>`)

	writeZipFile(t, zw, "ppt/presentation.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:sldIdLst>
    <p:sldId id="257" r:id="rId4"/>
    <p:sldId id="256" r:id="rId5"/>
  </p:sldIdLst>
  <p:sldSz cx="12192000" cy="6858000"/>
</p:presentation>`)

	writeZipFile(t, zw, "ppt/slides/slide1.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>
    <p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr>
    <p:sp>
      <p:nvSpPr><p:cNvPr id="2" name="Cloud 1"/><p:cNvSpPr/></p:nvSpPr>
      <p:spPr>
        <a:xfrm><a:off x="914400" y="914400"/><a:ext cx="1828800" cy="914400"/></a:xfrm>
        <a:prstGeom prst="cloud"><a:avLst/></a:prstGeom>
      </p:spPr>
      <p:txBody><a:bodyPr/><a:p><a:r><a:t>decorated</a:t></a:r></a:p></p:txBody>
    </p:sp>
  </p:spTree></p:cSld>
</p:sld>`)

	// Placeholder shape with no xfrm of its own.
	writeZipFile(t, zw, "ppt/slides/slide2.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>
    <p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr>
    <p:sp>
      <p:nvSpPr><p:cNvPr id="2" name="Title 1"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
      <p:spPr/>
      <p:txBody><a:bodyPr/><a:p><a:r><a:t>Hello</a:t></a:r></a:p></p:txBody>
    </p:sp>
  </p:spTree></p:cSld>
</p:sld>`)

	if err := zw.Close(); err != nil {
		t.Fatalf("Closing zip: %v", err)
	}

	c, err := opc.NewContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}
	prs, err := Decode(c)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if prs.SlideWidth != 12192000 {
		t.Errorf("Slide width mismatch: %v", prs.SlideWidth)
	}
	if prs.SlideCount() != 2 {
		t.Fatalf("Expected 2 slides, got %d", prs.SlideCount())
	}
	if prs.Metadata.Title != "Relocated" || prs.Metadata.Author != "someone else" {
		t.Errorf("Core properties not resolved through relationship: %+v", prs.Metadata)
	}

	// sldIdLst order wins over part numbering.
	first := prs.Slides[0].Shapes[0]
	if first.Text == nil || first.Text.Text() != "Hello" {
		t.Errorf("Expected slide2 content first, got %+v", first.Text)
	}
	if first.Kind != model.TextBox {
		t.Errorf("Shape without preset should decode as text box, got %v", first.Kind)
	}
	if first.Bounds != (model.Rect{}) {
		t.Errorf("Placeholder without xfrm should have zero bounds")
	}

	second := prs.Slides[1].Shapes[0]
	if second.Kind != model.Rectangle {
		t.Errorf("Unknown preset should decode as Rectangle, got %v", second.Kind)
	}
	if second.Bounds.Width != 1828800 {
		t.Errorf("Bounds lost: %+v", second.Bounds)
	}
}
