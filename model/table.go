package model

import "strings"

// TableWidthType represents how a table width value is interpreted.
type TableWidthType int

const (
	TableWidthAuto TableWidthType = iota
	TableWidthDxa                 // twips
	TableWidthPct                 // fiftieths of a percent
)

func (t TableWidthType) String() string {
	switch t {
	case TableWidthDxa:
		return "dxa"
	case TableWidthPct:
		return "pct"
	default:
		return "auto"
	}
}

// TableProperties holds optional table-level layout.
type TableProperties struct {
	Width     int
	WidthType TableWidthType
	Alignment Alignment
}

// Table is an ordered list of rows.
type Table struct {
	Rows       []*TableRow
	Properties TableProperties
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow appends an empty row and returns it.
func (t *Table) AddRow() *TableRow {
	row := &TableRow{}
	t.Rows = append(t.Rows, row)
	return row
}

// Paragraphs returns all cell paragraphs row-major, cell-major, in
// block order within each cell.
func (t *Table) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			for _, b := range cell.Blocks {
				switch b.Kind {
				case BlockParagraph:
					out = append(out, b.Paragraph)
				case BlockTable:
					out = append(out, b.Table.Paragraphs()...)
				}
			}
		}
	}
	return out
}

// PlainText returns a tab/newline text rendering of the table.
func (t *Table) PlainText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(strings.ReplaceAll(cell.PlainText(), "\n", " "))
		}
	}
	return sb.String()
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	cp := &Table{Properties: t.Properties}
	for _, row := range t.Rows {
		cp.Rows = append(cp.Rows, row.Clone())
	}
	return cp
}

// TableRow is an ordered list of cells.
type TableRow struct {
	Cells []*TableCell
}

// AddCell appends an empty cell and returns it.
func (r *TableRow) AddCell() *TableCell {
	cell := &TableCell{}
	r.Cells = append(r.Cells, cell)
	return cell
}

// Clone returns a deep copy of the row.
func (r *TableRow) Clone() *TableRow {
	if r == nil {
		return nil
	}
	cp := &TableRow{}
	for _, c := range r.Cells {
		cp.Cells = append(cp.Cells, c.Clone())
	}
	return cp
}

// TableCell is a list of blocks. An emitted cell always contains at
// least one paragraph; Normalize inserts an empty placeholder when a
// cell would otherwise be empty.
type TableCell struct {
	Blocks []Block
}

// Normalize ensures the cell contains at least one paragraph.
func (c *TableCell) Normalize() {
	if len(c.Blocks) == 0 {
		c.Blocks = append(c.Blocks, ParagraphBlock(NewParagraph()))
	}
}

// PlainText returns the newline-joined text of the cell's blocks.
func (c *TableCell) PlainText() string {
	var parts []string
	for _, b := range c.Blocks {
		parts = append(parts, b.PlainText())
	}
	return strings.Join(parts, "\n")
}

// Clone returns a deep copy of the cell.
func (c *TableCell) Clone() *TableCell {
	if c == nil {
		return nil
	}
	cp := &TableCell{}
	for _, b := range c.Blocks {
		cp.Blocks = append(cp.Blocks, b.Clone())
	}
	return cp
}
