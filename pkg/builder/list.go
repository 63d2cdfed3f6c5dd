package builder

import (
	"strings"

	"github.com/yaklabco/docforge/pkg/docs"
	"github.com/yaklabco/docforge/pkg/markdown"
)

// pendingList accumulates one maximal run of consecutive list items sharing
// an orderedness. The combined text becomes a single InsertText and the
// combined range a single CreateParagraphBullets request: one request means
// one list identity, which is what keeps ordered numbering sequential
// across items instead of restarting at each line.
type pendingList struct {
	ordered bool
	start   int64
	text    strings.Builder
}

// AddListItem appends one list item at the given nesting depth, 0 for
// top level. Consecutive items of the same orderedness join into one list;
// any other block, or a change of orderedness, ends the run.
func (b *Builder) AddListItem(ordered bool, depth int, runs ...markdown.Run) error {
	if err := b.begin(); err != nil {
		return err
	}
	if depth < 0 {
		return compileErrorf("list depth %d is negative", depth)
	}

	if b.list != nil && b.list.ordered != ordered {
		b.flushList()
	}
	if b.list == nil {
		b.list = &pendingList{ordered: ordered, start: b.cursor}
	}

	// Nesting is encoded as leading tabs; the bullet request maps tab
	// depth to glyph levels of its preset.
	line := strings.Repeat("\t", depth) + markdown.JoinRuns(runs) + "\n"

	itemStart := b.cursor
	b.list.text.WriteString(line)
	b.cursor += docs.UTF16Len(line)

	if err := b.applyPageBreak(docs.Range{StartIndex: itemStart, EndIndex: b.cursor}); err != nil {
		return err
	}
	// Run offsets skip the leading tabs, one code unit each.
	return b.queueRunStyles(runs, itemStart+int64(depth), false)
}

// AddBulletList appends plain-text items as one unordered list.
func (b *Builder) AddBulletList(items ...string) error {
	for _, item := range items {
		if err := b.AddListItem(false, 0, markdown.PlainRuns(item)...); err != nil {
			return err
		}
	}
	return nil
}

// AddNumberedList appends plain-text items as one ordered list.
func (b *Builder) AddNumberedList(items ...string) error {
	for _, item := range items {
		if err := b.AddListItem(true, 0, markdown.PlainRuns(item)...); err != nil {
			return err
		}
	}
	return nil
}

// flushList ends the current list run, emitting its combined InsertText and
// its single CreateParagraphBullets request.
func (b *Builder) flushList() {
	if b.list == nil {
		return
	}

	text := b.list.text.String()
	preset := b.style.BulletPreset
	if b.list.ordered {
		preset = b.style.NumberedPreset
	}

	b.inserts = append(b.inserts, docs.Request{InsertText: &docs.InsertTextRequest{
		Location: docs.Location{Index: b.list.start},
		Text:     text,
	}})
	b.bullets = append(b.bullets, docs.Request{CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{
		Range:        docs.Range{StartIndex: b.list.start, EndIndex: b.list.start + docs.UTF16Len(text)},
		BulletPreset: preset,
	}})
	b.list = nil
}
