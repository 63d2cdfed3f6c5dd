package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/docforge/pkg/builder"
	"github.com/yaklabco/docforge/pkg/docs"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // NUM, OPERATION, TARGET, DETAIL
	minNumWidth      = 3
	minOpWidth       = 22
	minTargetWidth   = 10
	minDetailWidth   = 24
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow is one operation rendered as a table line.
type TableRow struct {
	Num       string
	Operation string
	Target    string
	Detail    string
	Style     lipgloss.Style
}

// TableFormatter formats an operation batch as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// FormatBatch renders the full batch: the main request sequence, then the
// trailing cell-style requests separated by a light rule.
func (t *TableFormatter) FormatBatch(batch *builder.Batch) string {
	if batch == nil || batch.Empty() {
		return ""
	}

	rows := make([]TableRow, 0, batch.Len())
	for i, req := range batch.Requests {
		rows = append(rows, t.requestRow(i+1, req))
	}
	split := len(rows)
	for i, req := range batch.TableCellStyles {
		rows = append(rows, t.requestRow(len(batch.Requests)+i+1, req))
	}

	widths := t.calculateColumnWidths(rows)

	var b strings.Builder
	b.WriteString(t.formatHeader(widths))
	b.WriteString("\n")
	b.WriteString(t.formatSeparator(widths, heavySeparator))
	b.WriteString("\n")

	for i, row := range rows {
		if i == split && split < len(rows) {
			// Second batch boundary: everything below is submitted only
			// after the rows above are applied.
			b.WriteString(t.formatSeparator(widths, lightSeparator))
			b.WriteString("\n")
		}
		b.WriteString(t.formatRow(row, widths))
		b.WriteString("\n")
	}

	b.WriteString(t.formatSeparator(widths, heavySeparator))
	b.WriteString("\n")
	return b.String()
}

// requestRow converts one request into its table row.
func (t *TableFormatter) requestRow(num int, req docs.Request) TableRow {
	row := TableRow{Num: fmt.Sprintf("%d", num), Style: lipgloss.NewStyle()}

	switch {
	case req.InsertText != nil:
		row.Operation = "insertText"
		row.Target = fmt.Sprintf("@%d", req.InsertText.Location.Index)
		row.Detail = quotePreview(req.InsertText.Text)
		row.Style = t.styles.Insert
	case req.InsertTable != nil:
		row.Operation = "insertTable"
		row.Target = fmt.Sprintf("@%d", req.InsertTable.Location.Index)
		row.Detail = fmt.Sprintf("%dx%d", req.InsertTable.Rows, req.InsertTable.Columns)
		row.Style = t.styles.Structural
	case req.CreateParagraphBullets != nil:
		row.Operation = "createParagraphBullets"
		row.Target = rangeTarget(req.CreateParagraphBullets.Range)
		row.Detail = string(req.CreateParagraphBullets.BulletPreset)
		row.Style = t.styles.Bullet
	case req.DeleteParagraphBullets != nil:
		row.Operation = "deleteParagraphBullets"
		row.Target = rangeTarget(req.DeleteParagraphBullets.Range)
		row.Style = t.styles.Bullet
	case req.UpdateParagraphStyle != nil:
		row.Operation = "updateParagraphStyle"
		row.Target = rangeTarget(req.UpdateParagraphStyle.Range)
		row.Detail = req.UpdateParagraphStyle.Fields
		row.Style = t.styles.ParaStyle
	case req.UpdateTextStyle != nil:
		row.Operation = "updateTextStyle"
		row.Target = rangeTarget(req.UpdateTextStyle.Range)
		row.Detail = req.UpdateTextStyle.Fields
		row.Style = t.styles.TextStyle
	case req.UpdateTableCellStyle != nil:
		row.Operation = "updateTableCellStyle"
		if tr := req.UpdateTableCellStyle.TableRange; tr != nil {
			row.Target = fmt.Sprintf("table@%d", tr.TableCellLocation.TableStartLocation.Index)
			row.Detail = fmt.Sprintf("%dx%d header", tr.RowSpan, tr.ColumnSpan)
		}
		row.Style = t.styles.CellStyle
	default:
		row.Operation = "(empty)"
		row.Style = t.styles.Dim
	}
	return row
}

func rangeTarget(r docs.Range) string {
	return fmt.Sprintf("[%d,%d)", r.StartIndex, r.EndIndex)
}

// quotePreview renders inserted text as a one-line quoted preview with
// control characters escaped.
func quotePreview(text string) string {
	replacer := strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`, `"`, `\"`)
	return `"` + replacer.Replace(text) + `"`
}

type columnWidths struct {
	num    int
	op     int
	target int
	detail int
}

// calculateColumnWidths determines column widths based on content,
// constrained to the terminal width by shrinking the detail column.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		num:    minNumWidth,
		op:     minOpWidth,
		target: minTargetWidth,
		detail: minDetailWidth,
	}

	for _, row := range rows {
		if len(row.Num) > widths.num {
			widths.num = len(row.Num)
		}
		if len(row.Operation) > widths.op {
			widths.op = len(row.Operation)
		}
		if len(row.Target) > widths.target {
			widths.target = len(row.Target)
		}
		if len(row.Detail) > widths.detail {
			widths.detail = len(row.Detail)
		}
	}

	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.detail = max(minDetailWidth, widths.detail-excess)
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.num + widths.op + widths.target + widths.detail +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		widths.num, "#",
		widths.op, "OPERATION",
		widths.target, "TARGET",
		widths.detail, "DETAIL",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	sep := strings.Repeat(char, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row with kind-based styling.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	detail := truncateString(row.Detail, widths.detail)

	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		widths.num, row.Num,
		widths.op, row.Operation,
		widths.target, row.Target,
		widths.detail, detail,
	)
	return row.Style.Render(content)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
