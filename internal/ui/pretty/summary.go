package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/docforge/pkg/builder"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats batch statistics as a single line.
// Example: "14 operations (7 inserts, 1 table, 2 lists, 3 paragraph styles,
// 1 text style), 1 cell style".
func (s *Styles) FormatSummaryOneLine(stats builder.Stats) string {
	if stats.Total() == 0 {
		return s.Dim.Render("empty batch (no operations)") + "\n"
	}

	opWord := "operations"
	if stats.Total() == 1 {
		opWord = "operation"
	}

	var kinds []string
	appendKind := func(n int, singular, plural string) {
		switch {
		case n == 1:
			kinds = append(kinds, fmt.Sprintf("1 %s", singular))
		case n > 1:
			kinds = append(kinds, fmt.Sprintf("%d %s", n, plural))
		}
	}
	appendKind(stats.Inserts, "insert", "inserts")
	appendKind(stats.Tables, "table", "tables")
	appendKind(stats.Bullets, "list", "lists")
	appendKind(stats.ParagraphStyles, "paragraph style", "paragraph styles")
	appendKind(stats.TextStyles, "text style", "text styles")

	line := fmt.Sprintf("%d %s (%s)", stats.Total(), opWord, strings.Join(kinds, ", "))
	if stats.CellStyles > 0 {
		cellWord := "cell styles"
		if stats.CellStyles == 1 {
			cellWord = "cell style"
		}
		line += ", " + s.CellStyle.Render(fmt.Sprintf("%d %s in second batch", stats.CellStyles, cellWord))
	}
	return line + "\n"
}

// FormatSummary formats batch statistics as a summary block.
func (s *Styles) FormatSummary(stats builder.Stats) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.SummaryTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	b.WriteString("  Operations:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.Total())) + "\n")
	b.WriteString("    Text inserts:    " +
		s.Insert.Render(strconv.Itoa(stats.Inserts)) + "\n")

	if stats.Tables > 0 {
		b.WriteString("    Tables:          " +
			s.Structural.Render(strconv.Itoa(stats.Tables)) + "\n")
	}
	if stats.Bullets > 0 {
		b.WriteString("    Lists:           " +
			s.Bullet.Render(strconv.Itoa(stats.Bullets)) + "\n")
	}
	if stats.ParagraphStyles > 0 {
		b.WriteString("    Paragraph styles: " +
			s.ParaStyle.Render(strconv.Itoa(stats.ParagraphStyles)) + "\n")
	}
	if stats.TextStyles > 0 {
		b.WriteString("    Text styles:     " +
			s.TextStyle.Render(strconv.Itoa(stats.TextStyles)) + "\n")
	}
	if stats.CellStyles > 0 {
		b.WriteString("    Cell styles:     " +
			s.CellStyle.Render(strconv.Itoa(stats.CellStyles)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  Inserted text:     " +
		s.SummaryValue.Render(fmt.Sprintf("%d UTF-16 units", stats.InsertedLen)) + "\n")

	b.WriteString("\n")
	if stats.Total() == 0 {
		b.WriteString(s.Dim.Render("Nothing to apply"))
	} else {
		b.WriteString(s.Success.Render("Batch ready"))
	}
	b.WriteString("\n")

	return b.String()
}
