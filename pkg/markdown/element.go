// Package markdown converts lightweight markup into a flat, ordered sequence
// of typed block elements with inline style runs. It recognizes the subset of
// markdown the document compiler understands; it is not a CommonMark parser.
// Anything that does not match a block pattern degrades to a plain paragraph
// rather than failing.
package markdown

import "strings"

// ElementKind classifies the type of a block element.
type ElementKind uint8

// Element kinds, in rough order of how often they appear in real documents.
const (
	KindParagraph ElementKind = iota
	KindHeading
	KindListItem
	KindTable
	KindCodeBlock
	KindBlockquote
	KindPageBreak
	KindHorizontalRule
	KindTitle
)

// String returns the kind name for diagnostics and test output.
func (k ElementKind) String() string {
	switch k {
	case KindParagraph:
		return "Paragraph"
	case KindHeading:
		return "Heading"
	case KindListItem:
		return "ListItem"
	case KindTable:
		return "Table"
	case KindCodeBlock:
		return "CodeBlock"
	case KindBlockquote:
		return "Blockquote"
	case KindPageBreak:
		return "PageBreak"
	case KindHorizontalRule:
		return "HorizontalRule"
	case KindTitle:
		return "Title"
	default:
		return "Unknown"
	}
}

// Run is a maximal span of inline text sharing one style combination.
// Consecutive runs of a block reconstruct its plain text exactly.
type Run struct {
	// Text is the literal content with all markers stripped.
	Text string

	Bold      bool
	Italic    bool
	Code      bool
	Underline bool

	// Link is the destination URL, or empty for non-link runs.
	Link string
}

// Styled reports whether the run carries any styling at all.
func (r Run) Styled() bool {
	return r.Bold || r.Italic || r.Code || r.Underline || r.Link != ""
}

// Cell is a single table cell.
type Cell struct {
	Runs []Run
}

// Element is one block of a parsed document. Kind determines which of the
// remaining fields are meaningful:
//
//   - Heading: Level (1..6) and Runs
//   - Paragraph, Blockquote, Title: Runs
//   - ListItem: Ordered, Depth, and Runs
//   - Table: Rows (first row is the header)
//   - CodeBlock: Text (literal, no inline runs) and Lang
//   - PageBreak, HorizontalRule: no fields
type Element struct {
	Kind ElementKind

	Level   int
	Ordered bool
	Depth   int

	Runs []Run
	Rows [][]Cell

	Text string
	Lang string
}

// PlainText returns the concatenated run text of the element.
func (e Element) PlainText() string {
	return JoinRuns(e.Runs)
}

// JoinRuns concatenates the text of a run sequence.
func JoinRuns(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// PlainRuns wraps plain text in a single unstyled run. Convenience for
// callers driving the compiler directly without the parser.
func PlainRuns(text string) []Run {
	if text == "" {
		return nil
	}
	return []Run{{Text: text}}
}
