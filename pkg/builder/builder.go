// Package builder compiles typed markdown elements into an ordered batch of
// index-addressed edit operations. The builder owns a single piece of
// mutable position state, a forward-only cursor measured in UTF-16 code
// units, and records every styling range the instant its text is appended.
// Later insertions only ever land at or after the cursor, so recorded
// ranges never need adjustment afterwards.
package builder

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docforge/pkg/config"
	"github.com/yaklabco/docforge/pkg/docs"
	"github.com/yaklabco/docforge/pkg/markdown"
)

// DefaultStartIndex is where the first insertion lands by default. Index 0
// is a reserved structural position in the target protocol and is never
// written to.
const DefaultStartIndex = 1

// Builder accumulates edit operations for one document. Add methods append
// blocks in order; Finalize assembles the batch. A Builder is single-use:
// after Finalize it only serves the finalized batch, and further Add calls
// fail with a CompileError.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	style config.Style

	// Style colors resolved once at construction.
	mono     *docs.WeightedFontFamily
	codeBG   *docs.OptionalColor
	headerBG *docs.OptionalColor
	border   *docs.OptionalColor
	rule     *docs.OptionalColor

	start  int64
	cursor int64

	// Pending operation queues, concatenated in this order at Finalize.
	inserts    []docs.Request
	bullets    []docs.Request
	paraStyles []docs.Request
	textStyles []docs.Request
	cellStyles []docs.Request

	list      *pendingList
	pageBreak bool

	batch *Batch
}

// Option configures a Builder.
type Option func(*Builder)

// WithStartIndex sets the buffer index the first insertion targets, for
// composing into a document that already has content. The default is
// DefaultStartIndex.
func WithStartIndex(index int64) Option {
	return func(b *Builder) { b.start = index }
}

// New creates a Builder for the given style. The style is validated here,
// once, and its color strings resolved to protocol colors; Add methods can
// then assume a well-formed style.
func New(style config.Style, opts ...Option) (*Builder, error) {
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	b := &Builder{style: style, start: DefaultStartIndex}
	for _, opt := range opts {
		opt(b)
	}
	if b.start < DefaultStartIndex {
		return nil, compileErrorf("start index %d is below reserved index %d", b.start, DefaultStartIndex)
	}

	b.cursor = b.start
	b.mono = &docs.WeightedFontFamily{FontFamily: style.MonoFont}
	b.codeBG = mustHex(style.CodeBackground)
	b.headerBG = mustHex(style.TableHeaderBackground)
	b.border = mustHex(style.TableBorderColor)
	b.rule = mustHex(style.RuleColor)
	return b, nil
}

// mustHex resolves a color string that Validate already accepted.
func mustHex(hex string) *docs.OptionalColor {
	c, err := docs.HexColor(hex)
	if err != nil {
		return &docs.OptionalColor{}
	}
	return c
}

// Cursor returns the next writable buffer index.
func (b *Builder) Cursor() int64 {
	return b.cursor
}

// begin guards every Add method against use after Finalize.
func (b *Builder) begin() error {
	if b.batch != nil {
		return compileErrorf("builder already finalized")
	}
	return nil
}

// insertText queues an insertion at the cursor, advances the cursor by the
// UTF-16 length of text, and returns the recorded range.
func (b *Builder) insertText(text string) docs.Range {
	r := docs.Range{StartIndex: b.cursor, EndIndex: b.cursor + docs.UTF16Len(text)}
	b.inserts = append(b.inserts, docs.Request{InsertText: &docs.InsertTextRequest{
		Location: docs.Location{Index: r.StartIndex},
		Text:     text,
	}})
	b.cursor = r.EndIndex
	return r
}

func (b *Builder) queueParagraphStyle(r docs.Range, style docs.ParagraphStyle, fields string) error {
	if !r.IsValid() {
		return compileErrorf("paragraph style range [%d,%d) is invalid", r.StartIndex, r.EndIndex)
	}
	b.paraStyles = append(b.paraStyles, docs.Request{UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
		Range:          r,
		ParagraphStyle: style,
		Fields:         fields,
	}})
	return nil
}

func (b *Builder) queueTextStyle(r docs.Range, style docs.TextStyle, fields string) error {
	if !r.IsValid() {
		return compileErrorf("text style range [%d,%d) is invalid", r.StartIndex, r.EndIndex)
	}
	b.textStyles = append(b.textStyles, docs.Request{UpdateTextStyle: &docs.UpdateTextStyleRequest{
		Range:     r,
		TextStyle: style,
		Fields:    fields,
	}})
	return nil
}

// runStyle converts a styled run into its text style and field mask.
func (b *Builder) runStyle(run markdown.Run) (docs.TextStyle, string) {
	var style docs.TextStyle
	var fields []string

	if run.Bold {
		style.Bold = true
		fields = append(fields, "bold")
	}
	if run.Italic {
		style.Italic = true
		fields = append(fields, "italic")
	}
	if run.Underline {
		style.Underline = true
		fields = append(fields, "underline")
	}
	if run.Code {
		style.WeightedFontFamily = b.mono
		style.BackgroundColor = b.codeBG
		fields = append(fields, "weightedFontFamily", "backgroundColor")
	}
	if run.Link != "" {
		style.Link = &docs.Link{URL: run.Link}
		fields = append(fields, "link")
	}
	return style, strings.Join(fields, ",")
}

// queueRunStyles emits one text style request per styled run, walking run
// lengths forward from start. suppressBold drops the bold attribute, used
// for table header cells that already get whole-cell bold.
func (b *Builder) queueRunStyles(runs []markdown.Run, start int64, suppressBold bool) error {
	pos := start
	for _, run := range runs {
		end := pos + docs.UTF16Len(run.Text)
		if suppressBold {
			run.Bold = false
		}
		if run.Styled() && end > pos {
			style, fields := b.runStyle(run)
			if fields != "" {
				if err := b.queueTextStyle(docs.Range{StartIndex: pos, EndIndex: end}, style, fields); err != nil {
					return err
				}
			}
		}
		pos = end
	}
	return nil
}

// applyPageBreak attaches a pending page break to the block spanning r.
func (b *Builder) applyPageBreak(r docs.Range) error {
	if !b.pageBreak {
		return nil
	}
	b.pageBreak = false
	return b.queueParagraphStyle(r, docs.ParagraphStyle{PageBreakBefore: true}, "pageBreakBefore")
}

// emitParagraphBlock inserts the runs' text plus the block-terminating
// newline and applies the paragraph style, when given, over the whole
// emitted range, newline included. Blocks with no visible text emit
// nothing.
func (b *Builder) emitParagraphBlock(runs []markdown.Run, style *docs.ParagraphStyle, fields string) error {
	if err := b.begin(); err != nil {
		return err
	}
	b.flushList()

	plain := markdown.JoinRuns(runs)
	if plain == "" {
		return nil
	}

	r := b.insertText(plain + "\n")
	if err := b.applyPageBreak(r); err != nil {
		return err
	}
	if style != nil {
		if err := b.queueParagraphStyle(r, *style, fields); err != nil {
			return err
		}
	}
	return b.queueRunStyles(runs, r.StartIndex, false)
}

// AddTitle appends a document title paragraph. Inline markers in the text
// are not interpreted.
func (b *Builder) AddTitle(text string) error {
	style := docs.ParagraphStyle{NamedStyleType: docs.StyleTitle}
	return b.emitParagraphBlock(markdown.PlainRuns(text), &style, "namedStyleType")
}

// AddHeading appends a heading of the given level, 1 through 6.
func (b *Builder) AddHeading(level int, runs ...markdown.Run) error {
	named, err := docs.HeadingStyle(level)
	if err != nil {
		return compileErrorf("heading: %v", err)
	}
	style := docs.ParagraphStyle{NamedStyleType: named}
	return b.emitParagraphBlock(runs, &style, "namedStyleType")
}

// AddParagraph appends a body paragraph.
func (b *Builder) AddParagraph(runs ...markdown.Run) error {
	return b.emitParagraphBlock(runs, nil, "")
}

// AddBlockquote appends an indented quotation paragraph.
func (b *Builder) AddBlockquote(runs ...markdown.Run) error {
	indent := docs.PT(b.style.BlockquoteIndent)
	style := docs.ParagraphStyle{IndentStart: indent, IndentFirstLine: indent}
	return b.emitParagraphBlock(runs, &style, "indentStart,indentFirstLine")
}

// AddCodeBlock appends a preformatted block: one insertion for the whole
// body plus a monospace-and-shading text style over the code text, the
// terminating newline excluded so shading does not bleed past the block.
func (b *Builder) AddCodeBlock(text string) error {
	if err := b.begin(); err != nil {
		return err
	}
	b.flushList()

	if text == "" {
		return nil
	}

	r := b.insertText(text + "\n")
	if err := b.applyPageBreak(r); err != nil {
		return err
	}

	codeRange := docs.Range{StartIndex: r.StartIndex, EndIndex: r.EndIndex - 1}
	style := docs.TextStyle{WeightedFontFamily: b.mono, BackgroundColor: b.codeBG}
	return b.queueTextStyle(codeRange, style, "weightedFontFamily,backgroundColor")
}

// AddHorizontalRule appends a thematic break: an empty paragraph carrying a
// bottom border and extra space below.
func (b *Builder) AddHorizontalRule() error {
	if err := b.begin(); err != nil {
		return err
	}
	b.flushList()

	r := b.insertText("\n")
	if err := b.applyPageBreak(r); err != nil {
		return err
	}

	style := docs.ParagraphStyle{
		BorderBottom: &docs.ParagraphBorder{
			Color:     *b.rule,
			Width:     docs.PT(1),
			Padding:   docs.PT(8),
			DashStyle: docs.DashStyleSolid,
		},
		SpaceBelow: docs.PT(12),
	}
	return b.queueParagraphStyle(r, style, "borderBottom,spaceBelow")
}

// AddPageBreak marks that the next appended block starts on a new page. The
// break inserts no text of its own; it becomes a pageBreakBefore style on
// the following block, or on a lone trailing newline if no block follows.
func (b *Builder) AddPageBreak() error {
	if err := b.begin(); err != nil {
		return err
	}
	b.flushList()
	b.pageBreak = true
	return nil
}

// AddElement dispatches one parsed element to its Add method.
func (b *Builder) AddElement(el markdown.Element) error {
	switch el.Kind {
	case markdown.KindParagraph:
		return b.AddParagraph(el.Runs...)
	case markdown.KindHeading:
		return b.AddHeading(el.Level, el.Runs...)
	case markdown.KindListItem:
		return b.AddListItem(el.Ordered, el.Depth, el.Runs...)
	case markdown.KindTable:
		return b.AddTable(el.Rows)
	case markdown.KindCodeBlock:
		return b.AddCodeBlock(el.Text)
	case markdown.KindBlockquote:
		return b.AddBlockquote(el.Runs...)
	case markdown.KindPageBreak:
		return b.AddPageBreak()
	case markdown.KindHorizontalRule:
		return b.AddHorizontalRule()
	case markdown.KindTitle:
		return b.AddTitle(el.PlainText())
	default:
		return compileErrorf("unknown element kind %d", el.Kind)
	}
}

// AddElements appends a parsed element sequence in order.
func (b *Builder) AddElements(elements []markdown.Element) error {
	for _, el := range elements {
		if err := b.AddElement(el); err != nil {
			return err
		}
	}
	return nil
}

// Finalize flushes pending state and assembles the batch: all insertions in
// element order, then bullet creation, then paragraph styles, then text
// styles. Finalize is idempotent; repeated calls return the same batch.
func (b *Builder) Finalize() (*Batch, error) {
	if b.batch != nil {
		return b.batch, nil
	}
	b.flushList()

	if b.pageBreak {
		// A trailing page break with no block after it still needs a
		// paragraph to carry the style.
		b.pageBreak = false
		r := b.insertText("\n")
		if err := b.queueParagraphStyle(r, docs.ParagraphStyle{PageBreakBefore: true}, "pageBreakBefore"); err != nil {
			return nil, err
		}
	}

	requests := make([]docs.Request, 0, len(b.inserts)+len(b.bullets)+len(b.paraStyles)+len(b.textStyles))
	requests = append(requests, b.inserts...)
	requests = append(requests, b.bullets...)
	requests = append(requests, b.paraStyles...)
	requests = append(requests, b.textStyles...)

	b.batch = &Batch{Requests: requests, TableCellStyles: b.cellStyles}
	return b.batch, nil
}
