package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docforge/pkg/builder"
	"github.com/yaklabco/docforge/pkg/config"
	"github.com/yaklabco/docforge/pkg/docs"
	"github.com/yaklabco/docforge/pkg/markdown"
)

func TestCompileTableScenario(t *testing.T) {
	t.Parallel()

	batch := mustCompile(t, "| A | B |\n|---|---|\n| 1 | 2 |")

	var table *docs.InsertTableRequest
	for _, req := range batch.Requests {
		if req.InsertTable != nil {
			table = req.InsertTable
		}
	}
	require.NotNil(t, table)
	assert.Equal(t, 2, table.Rows)
	assert.Equal(t, 2, table.Columns)
	assert.Equal(t, int64(1), table.Location.Index)

	// Exactly one cell-style request, scoped to the header row, in the
	// trailing batch.
	require.Len(t, batch.TableCellStyles, 1)
	cellStyle := batch.TableCellStyles[0].UpdateTableCellStyle
	require.NotNil(t, cellStyle)
	require.NotNil(t, cellStyle.TableRange)
	assert.Equal(t, 1, cellStyle.TableRange.RowSpan)
	assert.Equal(t, 2, cellStyle.TableRange.ColumnSpan)
	assert.Equal(t, int64(1), cellStyle.TableRange.TableCellLocation.TableStartLocation.Index)
	require.NotNil(t, cellStyle.TableCellStyle.BackgroundColor)
}

func TestTableCellInsertGeometry(t *testing.T) {
	t.Parallel()

	// For a 2x2 table at index 1 the pristine cell bases are
	// 1+4+r*5+c*2: A=5, B=7, 1=10, 2=12. Cell text is inserted in reverse
	// document order so every insert can use its pristine base.
	batch := mustCompile(t, "| A | B |\n|---|---|\n| 1 | 2 |")

	var inserts []*docs.InsertTextRequest
	for _, req := range batch.Requests {
		if req.InsertText != nil {
			inserts = append(inserts, req.InsertText)
		}
	}
	require.Len(t, inserts, 5)

	assert.Equal(t, "2", inserts[0].Text)
	assert.Equal(t, int64(12), inserts[0].Location.Index)
	assert.Equal(t, "1", inserts[1].Text)
	assert.Equal(t, int64(10), inserts[1].Location.Index)
	assert.Equal(t, "B", inserts[2].Text)
	assert.Equal(t, int64(7), inserts[2].Location.Index)
	assert.Equal(t, "A", inserts[3].Text)
	assert.Equal(t, int64(5), inserts[3].Location.Index)

	// Trailing paragraph separator after the table structure (13 units)
	// plus the 4 units of cell text.
	assert.Equal(t, "\n", inserts[4].Text)
	assert.Equal(t, int64(18), inserts[4].Location.Index)
}

func TestTableHeaderBoldRangesSeeFinalLayout(t *testing.T) {
	t.Parallel()

	batch := mustCompile(t, "| A | B |\n|---|---|\n| 1 | 2 |")

	var styles []*docs.UpdateTextStyleRequest
	for _, req := range batch.Requests {
		if req.UpdateTextStyle != nil {
			styles = append(styles, req.UpdateTextStyle)
		}
	}
	require.Len(t, styles, 2)

	// A keeps its pristine base; B shifts right by len("A").
	assert.Equal(t, docs.Range{StartIndex: 5, EndIndex: 6}, styles[0].Range)
	assert.True(t, styles[0].TextStyle.Bold)
	assert.Equal(t, docs.Range{StartIndex: 8, EndIndex: 9}, styles[1].Range)
	assert.True(t, styles[1].TextStyle.Bold)
}

func TestTableCursorAdvancesPastStructure(t *testing.T) {
	t.Parallel()

	// 1x1 table at 1: structure 3+1*3=6, one unit of cell text, then the
	// separator newline at 8, so the paragraph lands at 9.
	batch := mustCompile(t, "| A |\n|---|\n\npara")

	var last *docs.InsertTextRequest
	for _, req := range batch.Requests {
		if req.InsertText != nil {
			last = req.InsertText
		}
	}
	require.NotNil(t, last)
	assert.Equal(t, "para\n", last.Text)
	assert.Equal(t, int64(9), last.Location.Index)
}

func TestTableCellRunsStyledInDataRows(t *testing.T) {
	t.Parallel()

	batch := mustCompile(t, "| **H** |\n|---|\n| [x](https://e.io) |")

	var boldCount int
	var link *docs.UpdateTextStyleRequest
	for _, req := range batch.Requests {
		if req.UpdateTextStyle == nil {
			continue
		}
		if req.UpdateTextStyle.TextStyle.Bold {
			boldCount++
		}
		if req.UpdateTextStyle.TextStyle.Link != nil {
			link = req.UpdateTextStyle
		}
	}

	// The header cell gets one whole-cell bold request; the run's own bold
	// is suppressed so it is not styled twice.
	assert.Equal(t, 1, boldCount)

	require.NotNil(t, link)
	assert.Equal(t, "https://e.io", link.TextStyle.Link.URL)
	assert.Equal(t, docs.Range{StartIndex: 9, EndIndex: 10}, link.Range)
}

func TestTableEmptyCellsSkipInserts(t *testing.T) {
	t.Parallel()

	b, err := builder.New(config.Default())
	require.NoError(t, err)
	require.NoError(t, b.AddTable([][]markdown.Cell{
		{{Runs: markdown.PlainRuns("A")}, {}},
		{{}, {Runs: markdown.PlainRuns("d")}},
	}))

	batch, err := b.Finalize()
	require.NoError(t, err)

	var texts []string
	for _, req := range batch.Requests {
		if req.InsertText != nil {
			texts = append(texts, req.InsertText.Text)
		}
	}
	// Only populated cells insert text (reverse order), plus the trailing
	// separator newline.
	assert.Equal(t, []string{"d", "A", "\n"}, texts)
}

func TestTableInvalidShape(t *testing.T) {
	t.Parallel()

	b, err := builder.New(config.Default())
	require.NoError(t, err)

	err = b.AddTable(nil)
	require.Error(t, err)

	var compileErr *builder.CompileError
	assert.ErrorAs(t, err, &compileErr)

	err = b.AddTable([][]markdown.Cell{{}, {}})
	require.Error(t, err)
}

func TestTwoTablesTwoCellStyleRequests(t *testing.T) {
	t.Parallel()

	batch := mustCompile(t, "| A |\n|---|\n\n| B |\n|---|\n")
	assert.Len(t, batch.TableCellStyles, 2)

	var tables []*docs.InsertTableRequest
	for _, req := range batch.Requests {
		if req.InsertTable != nil {
			tables = append(tables, req.InsertTable)
		}
	}
	require.Len(t, tables, 2)
	assert.Equal(t, int64(1), tables[0].Location.Index)
	// First table ends at 1+6+1=8, its separator newline moves the cursor
	// to 9.
	assert.Equal(t, int64(9), tables[1].Location.Index)
}
