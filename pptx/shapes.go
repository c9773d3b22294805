package pptx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/slidekit/slidekit/model"
)

// ErrUnsupportedShape is returned when a shape carries a kind the
// serializer has no preset geometry for.
var ErrUnsupportedShape = errors.New("pptx: unsupported shape variant")

// presetOf maps shape kinds to DrawingML preset geometry names.
// TextBox and Picture are absent: a text box is a rectangle with no
// a:prstGeom element, and pictures are emitted as p:pic.
var presetOf = map[model.ShapeKind]string{
	model.Rectangle:        "rect",
	model.RoundedRectangle: "roundRect",
	model.Oval:             "ellipse",
	model.Diamond:          "diamond",
	model.Triangle:         "triangle",
	model.RightArrow:       "rightArrow",
	model.Star:             "star5",
	model.Hexagon:          "hexagon",
}

// kindOf is the reverse mapping, used by the decoder. Presets with no
// corresponding kind decode as Rectangle.
var kindOf = map[string]model.ShapeKind{
	"rect":       model.Rectangle,
	"roundRect":  model.RoundedRectangle,
	"ellipse":    model.Oval,
	"diamond":    model.Diamond,
	"triangle":   model.Triangle,
	"rightArrow": model.RightArrow,
	"star5":      model.Star,
	"hexagon":    model.Hexagon,
}

// buildShape converts one model shape into its markup element. The id is
// the document-wide drawing id assigned by the encoder; rEmbed names the
// slide-local image relationship for pictures and is empty otherwise.
func buildShape(sp *model.Shape, id uint64, rEmbed string) (any, error) {
	if sp.Kind == model.Picture {
		return buildPicture(sp, id, rEmbed)
	}
	if sp.Kind == model.Table {
		return buildTable(sp, id)
	}

	xfrm := xfrmMarkup{
		Off: offMarkup{X: sp.Bounds.X.EMU(), Y: sp.Bounds.Y.EMU()},
		Ext: extMarkup{CX: sp.Bounds.Width.EMU(), CY: sp.Bounds.Height.EMU()},
	}

	m := spMarkup{
		NvSpPr: nvSpPrMarkup{
			CNvPr: cNvPrMarkup{ID: id, Name: shapeName(sp.Kind, id)},
		},
		SpPr: spPrMarkup{Xfrm: xfrm},
	}

	if sp.Kind == model.TextBox {
		m.NvSpPr.CNvSpPr.TxBox = 1
		// Text boxes have no preset geometry element. A solid fill is
		// still honoured; the zero fill is simply omitted, matching
		// the plain text boxes other producers emit.
		if sp.Fill.Kind == model.FillSolid {
			m.SpPr.SolidFill = buildSolidFill(sp.Fill)
		}
	} else {
		prst, ok := presetOf[sp.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedShape, sp.Kind)
		}
		m.SpPr.PrstGeom = &prstGeomMarkup{Prst: prst}
		switch sp.Fill.Kind {
		case model.FillSolid:
			m.SpPr.SolidFill = buildSolidFill(sp.Fill)
		default:
			m.SpPr.NoFill = &struct{}{}
		}
	}

	if sp.Line != nil {
		m.SpPr.Ln = &lnMarkup{
			W:         sp.Line.Width.EMU(),
			SolidFill: solidFillMarkup{SrgbClr: srgbClrMarkup{Val: sp.Line.Color.Hex()}},
		}
	}

	body, err := buildTxBody(sp.Text)
	if err != nil {
		return nil, err
	}
	m.TxBody = body
	return m, nil
}

func buildPicture(sp *model.Shape, id uint64, rEmbed string) (any, error) {
	if sp.Image == nil {
		return nil, fmt.Errorf("%w: picture shape without image data", ErrUnsupportedShape)
	}
	return picMarkup{
		NvPicPr: nvPicPrMarkup{
			CNvPr: cNvPrMarkup{ID: id, Name: shapeName(sp.Kind, id)},
		},
		BlipFill: blipFillMarkup{Blip: blipMarkup{Embed: rEmbed}},
		SpPr: spPrMarkup{
			Xfrm: xfrmMarkup{
				Off: offMarkup{X: sp.Bounds.X.EMU(), Y: sp.Bounds.Y.EMU()},
				Ext: extMarkup{CX: sp.Bounds.Width.EMU(), CY: sp.Bounds.Height.EMU()},
			},
			PrstGeom: &prstGeomMarkup{Prst: "rect"},
		},
	}, nil
}

// cellTextSize is the fixed run size of table cell text, in centipoints.
const cellTextSize = 2400

// buildTable renders a table shape as a graphic frame. The frame extent
// is the table's own, derived from its columns and rows; the shape
// bounds only anchor the top-left corner.
func buildTable(sp *model.Shape, id uint64) (any, error) {
	tbl := sp.Table
	if tbl == nil {
		return nil, fmt.Errorf("%w: table shape without grid", ErrUnsupportedShape)
	}

	m := tblMarkup{TblPr: tblPrMarkup{FirstRow: 1, BandRow: 1}}
	for _, w := range tbl.ColumnWidths {
		if w < 0 {
			return nil, fmt.Errorf("%w: column width %d EMU", model.ErrInvalidGeometry, w)
		}
		m.TblGrid.GridCol = append(m.TblGrid.GridCol, gridColMarkup{W: w.EMU()})
	}
	for _, row := range tbl.Rows {
		h := row.Height
		if h == 0 {
			h = model.DefaultRowHeight
		}
		if h < 0 {
			return nil, fmt.Errorf("%w: row height %d EMU", model.ErrInvalidGeometry, h)
		}
		tr := trMarkup{H: h.EMU()}
		for _, cell := range row.Cells {
			tc, err := buildTableCell(cell)
			if err != nil {
				return nil, err
			}
			tr.Tc = append(tr.Tc, tc)
		}
		m.Tr = append(m.Tr, tr)
	}

	return graphicFrameMarkup{
		NvGraphicFramePr: nvGraphicFramePrMarkup{
			CNvPr: cNvPrMarkup{ID: id, Name: shapeName(sp.Kind, id)},
		},
		Xfrm: xfrmMarkup{
			Off: offMarkup{X: sp.Bounds.X.EMU(), Y: sp.Bounds.Y.EMU()},
			Ext: extMarkup{CX: tbl.Width().EMU(), CY: tbl.Height().EMU()},
		},
		Graphic: graphicMarkup{GraphicData: graphicDataMarkup{URI: nsTableData, Tbl: m}},
	}, nil
}

func buildTableCell(cell *model.TableCell) (tcMarkup, error) {
	if err := checkText(cell.Text); err != nil {
		return tcMarkup{}, err
	}

	pr := &rPrMarkup{Lang: "en-US", Sz: cellTextSize}
	if cell.Bold {
		pr.B = 1
	}
	tc := tcMarkup{
		TxBody: txBodyMarkup{
			P: []pMarkup{{R: []rMarkup{{RPr: pr, T: cell.Text}}}},
		},
	}
	if cell.Fill.Kind == model.FillSolid {
		tc.TcPr.SolidFill = buildSolidFill(cell.Fill)
	}
	return tc, nil
}

// buildSolidFill renders a solid fill, mapping the opacity percentage to
// the a:alpha child in thousandths of a percent.
func buildSolidFill(f model.Fill) *solidFillMarkup {
	clr := srgbClrMarkup{Val: f.Color.Hex()}
	if f.Transparency > 0 {
		clr.Alpha = &valMarkup{Val: (100 - f.Transparency) * 1000}
	}
	return &solidFillMarkup{SrgbClr: clr}
}

func shapeName(kind model.ShapeKind, id uint64) string {
	return kind.String() + " " + strconv.FormatUint(id-1, 10)
}
