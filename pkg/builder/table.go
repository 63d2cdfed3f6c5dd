package builder

import (
	"github.com/yaklabco/docforge/pkg/docs"
	"github.com/yaklabco/docforge/pkg/markdown"
)

// Table geometry in the target protocol. An empty table inserted at index s
// occupies 3 + rows*(cols*2+1) code units of structure, and the first
// paragraph of cell (r,c) sits at s + 4 + r*(cols*2+1) + c*2 before any
// cell text exists. Inserting cell text shifts everything after it, which
// drives the two ordering tricks below.

// AddTable appends a table. The first row is the header row: its text is
// bolded and the trailing cell-style batch shades and borders it. Rows
// shorter than the widest row are padded with empty cells.
func (b *Builder) AddTable(rows [][]markdown.Cell) error {
	if err := b.begin(); err != nil {
		return err
	}
	b.flushList()

	if len(rows) == 0 {
		return compileErrorf("table has no rows")
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return compileErrorf("table has no columns")
	}

	tableStart := b.cursor
	if err := b.applyPageBreak(docs.Range{StartIndex: tableStart, EndIndex: tableStart + 1}); err != nil {
		return err
	}

	b.inserts = append(b.inserts, docs.Request{InsertTable: &docs.InsertTableRequest{
		Location: docs.Location{Index: tableStart},
		Rows:     len(rows),
		Columns:  cols,
	}})

	rowStride := int64(cols*2 + 1)

	type cell struct {
		text   string
		runs   []markdown.Run
		base   int64
		header bool
	}
	var cells []cell
	for ri, row := range rows {
		for ci, c := range row {
			text := markdown.JoinRuns(c.Runs)
			if text == "" {
				continue
			}
			cells = append(cells, cell{
				text:   text,
				runs:   c.Runs,
				base:   tableStart + 4 + int64(ri)*rowStride + int64(ci)*2,
				header: ri == 0,
			})
		}
	}

	// Cell text goes in back to front: each insertion targets the cell's
	// pristine base index, and filling later cells first leaves earlier
	// base indices unshifted.
	for i := len(cells) - 1; i >= 0; i-- {
		b.inserts = append(b.inserts, docs.Request{InsertText: &docs.InsertTextRequest{
			Location: docs.Location{Index: cells[i].base},
			Text:     cells[i].text,
		}})
	}

	// Styling ranges see the final layout: each cell's start shifts right
	// by the total length of all cell text inserted before it.
	var prior int64
	for _, c := range cells {
		start := c.base + prior
		length := docs.UTF16Len(c.text)
		if c.header && b.style.TableHeaderBold {
			if err := b.queueTextStyle(docs.Range{StartIndex: start, EndIndex: start + length}, docs.TextStyle{Bold: true}, "bold"); err != nil {
				return err
			}
		}
		if err := b.queueRunStyles(c.runs, start, c.header && b.style.TableHeaderBold); err != nil {
			return err
		}
		prior += length
	}

	b.queueHeaderCellStyle(tableStart, cols)

	b.cursor = tableStart + 3 + int64(len(rows))*rowStride + prior
	b.insertText("\n")
	return nil
}

// queueHeaderCellStyle shades and borders the header row with a single
// request. It rides in the trailing batch because its cell coordinates only
// resolve once the first batch has created the table structure.
func (b *Builder) queueHeaderCellStyle(tableStart int64, cols int) {
	border := &docs.TableCellBorder{
		Color:     *b.border,
		Width:     docs.PT(b.style.TableBorderWidth),
		DashStyle: docs.DashStyleSolid,
	}
	padding := docs.PT(b.style.TableCellPadding)

	b.cellStyles = append(b.cellStyles, docs.Request{UpdateTableCellStyle: &docs.UpdateTableCellStyleRequest{
		TableRange: &docs.TableRange{
			TableCellLocation: docs.TableCellLocation{
				TableStartLocation: docs.Location{Index: tableStart},
			},
			RowSpan:    1,
			ColumnSpan: cols,
		},
		TableCellStyle: docs.TableCellStyle{
			BackgroundColor: b.headerBG,
			BorderLeft:      border,
			BorderRight:     border,
			BorderTop:       border,
			BorderBottom:    border,
			PaddingTop:      padding,
			PaddingBottom:   padding,
			PaddingLeft:     padding,
			PaddingRight:    padding,
		},
		Fields: "backgroundColor,borderLeft,borderRight,borderTop,borderBottom,paddingTop,paddingBottom,paddingLeft,paddingRight",
	}})
}
