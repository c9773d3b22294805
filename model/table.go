package model

// DefaultRowHeight is used for table rows with no explicit height.
const DefaultRowHeight = Length(400000)

// TableCell is one cell of a table: a text value with optional bold
// styling and background fill.
type TableCell struct {
	Text string
	Bold bool
	// Fill paints the cell background. The zero value is no fill.
	Fill Fill
}

// SetText sets the cell text and returns the cell for chaining.
func (c *TableCell) SetText(text string) *TableCell {
	c.Text = text
	return c
}

// SetBold sets the bold flag and returns the cell for chaining.
func (c *TableCell) SetBold(b bool) *TableCell {
	c.Bold = b
	return c
}

// SetFill sets the cell background and returns the cell for chaining.
func (c *TableCell) SetFill(f Fill) *TableCell {
	c.Fill = f
	return c
}

// TableRow is one row of cells. A zero Height means DefaultRowHeight.
type TableRow struct {
	Cells  []*TableCell
	Height Length
}

// SetHeight sets the row height and returns the row for chaining.
func (r *TableRow) SetHeight(h Length) *TableRow {
	r.Height = h
	return r
}

// Cell returns the cell in the given column.
func (r *TableRow) Cell(col int) *TableCell {
	return r.Cells[col]
}

// TableFrame is the cell grid of a Table shape. Column widths fix the
// grid; rows are appended afterwards, one cell per column.
type TableFrame struct {
	ColumnWidths []Length
	Rows         []*TableRow
}

// NewTableFrame returns an empty grid with the given column widths.
func NewTableFrame(columnWidths ...Length) *TableFrame {
	return &TableFrame{ColumnWidths: columnWidths}
}

// AddRow appends a row with one cell per column, filling cells from
// texts in column order. Texts beyond the column count are dropped.
func (t *TableFrame) AddRow(texts ...string) *TableRow {
	row := &TableRow{Cells: make([]*TableCell, len(t.ColumnWidths))}
	for i := range row.Cells {
		row.Cells[i] = &TableCell{}
		if i < len(texts) {
			row.Cells[i].Text = texts[i]
		}
	}
	t.Rows = append(t.Rows, row)
	return row
}

// ColumnCount returns the number of columns.
func (t *TableFrame) ColumnCount() int {
	return len(t.ColumnWidths)
}

// RowCount returns the number of rows.
func (t *TableFrame) RowCount() int {
	return len(t.Rows)
}

// Width returns the table width, the sum of the column widths.
func (t *TableFrame) Width() Length {
	var w Length
	for _, cw := range t.ColumnWidths {
		w += cw
	}
	return w
}

// Height returns the table height, the sum of the row heights with
// DefaultRowHeight standing in for unset ones.
func (t *TableFrame) Height() Length {
	var h Length
	for _, row := range t.Rows {
		if row.Height > 0 {
			h += row.Height
		} else {
			h += DefaultRowHeight
		}
	}
	return h
}
