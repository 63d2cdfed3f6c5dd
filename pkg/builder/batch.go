package builder

import "github.com/yaklabco/docforge/pkg/docs"

// Batch is the finalized, ordered operation sequence of one compile.
// Ordering is part of the contract: Requests holds all InsertText
// operations in element order, then one CreateParagraphBullets per list
// run, then paragraph styles, then text styles. Submitting it split across
// multiple atomic requests, or reordered, voids the compiler's guarantees.
//
// TableCellStyles is a second, trailing batch: cell shading coordinates
// depend on table structure the first batch creates, so it must be
// submitted only after Requests is confirmed applied. It is empty for
// documents without tables.
type Batch struct {
	Requests        []docs.Request `json:"requests"`
	TableCellStyles []docs.Request `json:"tableCellStyles,omitempty"`
}

// Empty reports whether the batch contains no operations at all.
func (b *Batch) Empty() bool {
	return len(b.Requests) == 0 && len(b.TableCellStyles) == 0
}

// Len returns the total operation count across both phases.
func (b *Batch) Len() int {
	return len(b.Requests) + len(b.TableCellStyles)
}

// Stats are per-kind operation counts for one batch, for summaries and
// structured logs.
type Stats struct {
	Inserts         int
	Tables          int
	Bullets         int
	ParagraphStyles int
	TextStyles      int
	CellStyles      int
	InsertedLen     int64
}

// Total returns the operation count across all kinds.
func (s Stats) Total() int {
	return s.Inserts + s.Tables + s.Bullets + s.ParagraphStyles + s.TextStyles + s.CellStyles
}

// Stats tallies the batch by operation kind.
func (b *Batch) Stats() Stats {
	var s Stats
	for _, req := range b.Requests {
		switch {
		case req.InsertText != nil:
			s.Inserts++
			s.InsertedLen += docs.UTF16Len(req.InsertText.Text)
		case req.InsertTable != nil:
			s.Tables++
		case req.CreateParagraphBullets != nil:
			s.Bullets++
		case req.UpdateParagraphStyle != nil:
			s.ParagraphStyles++
		case req.UpdateTextStyle != nil:
			s.TextStyles++
		}
	}
	s.CellStyles = len(b.TableCellStyles)
	return s
}

// InsertedTextLen returns the combined UTF-16 length of all inserted text.
// For documents without tables this equals the final buffer growth, which
// every emitted range must fall inside.
func (b *Batch) InsertedTextLen() int64 {
	var n int64
	for _, req := range b.Requests {
		if req.InsertText != nil {
			n += docs.UTF16Len(req.InsertText.Text)
		}
	}
	return n
}
