// Package docs defines the wire types for the rich-document batch-update
// protocol: index-addressed edit requests, ranges, styles, and the
// enumerations the remote service understands.
//
// Indices are counted in UTF-16 code units and endIndex is always exclusive.
// Index 0 is a reserved structural position; content insertion conventionally
// starts at index 1.
package docs

// Location addresses a single insertion point in the document.
type Location struct {
	Index int64 `json:"index"`
}

// Range addresses a half-open span [StartIndex, EndIndex) of the document.
type Range struct {
	StartIndex int64 `json:"startIndex"`
	EndIndex   int64 `json:"endIndex"`
}

// IsValid reports whether the range addresses at least one code unit of
// writable content: not empty, not inverted, and clear of reserved index 0.
func (r Range) IsValid() bool {
	return r.StartIndex >= 1 && r.EndIndex > r.StartIndex
}

// Len returns the span length in code units.
func (r Range) Len() int64 {
	return r.EndIndex - r.StartIndex
}

// Request is a single batch-update operation. Exactly one field is set.
type Request struct {
	InsertText             *InsertTextRequest             `json:"insertText,omitempty"`
	InsertTable            *InsertTableRequest            `json:"insertTable,omitempty"`
	CreateParagraphBullets *CreateParagraphBulletsRequest `json:"createParagraphBullets,omitempty"`
	DeleteParagraphBullets *DeleteParagraphBulletsRequest `json:"deleteParagraphBullets,omitempty"`
	UpdateParagraphStyle   *UpdateParagraphStyleRequest   `json:"updateParagraphStyle,omitempty"`
	UpdateTextStyle        *UpdateTextStyleRequest        `json:"updateTextStyle,omitempty"`
	UpdateTableCellStyle   *UpdateTableCellStyleRequest   `json:"updateTableCellStyle,omitempty"`
}

// IsStructural reports whether the request changes the set or bulleting of
// document elements, as opposed to presentation only. Structural requests
// must precede cosmetic ones in a finalized batch.
func (r Request) IsStructural() bool {
	return r.InsertText != nil ||
		r.InsertTable != nil ||
		r.CreateParagraphBullets != nil ||
		r.DeleteParagraphBullets != nil
}

// InsertTextRequest inserts text at the given location. Everything at or
// after the location shifts right by the UTF-16 length of Text.
type InsertTextRequest struct {
	Location Location `json:"location"`
	Text     string   `json:"text"`
}

// InsertTableRequest inserts an empty Rows x Columns table at the location.
type InsertTableRequest struct {
	Location Location `json:"location"`
	Rows     int      `json:"rows"`
	Columns  int      `json:"columns"`
}

// CreateParagraphBulletsRequest turns every paragraph overlapping Range into
// a bulleted or numbered list item. All paragraphs covered by one request
// share a single list identity, and therefore one enumeration counter.
type CreateParagraphBulletsRequest struct {
	Range        Range        `json:"range"`
	BulletPreset BulletPreset `json:"bulletPreset"`
}

// DeleteParagraphBulletsRequest removes bullets from every paragraph
// overlapping Range, preserving the paragraph text.
type DeleteParagraphBulletsRequest struct {
	Range Range `json:"range"`
}

// UpdateParagraphStyleRequest applies paragraph-level styling to Range.
// Fields is a comma-separated list naming the style members to apply.
type UpdateParagraphStyleRequest struct {
	Range          Range          `json:"range"`
	ParagraphStyle ParagraphStyle `json:"paragraphStyle"`
	Fields         string         `json:"fields"`
}

// UpdateTextStyleRequest applies character-level styling to Range.
type UpdateTextStyleRequest struct {
	Range     Range     `json:"range"`
	TextStyle TextStyle `json:"textStyle"`
	Fields    string    `json:"fields"`
}

// UpdateTableCellStyleRequest applies cell styling to a rectangular region
// of a table. TableRange and Cells are mutually exclusive; setting both is
// a protocol violation.
type UpdateTableCellStyleRequest struct {
	TableRange     *TableRange         `json:"tableRange,omitempty"`
	Cells          []TableCellLocation `json:"cells,omitempty"`
	TableCellStyle TableCellStyle      `json:"tableCellStyle"`
	Fields         string              `json:"fields"`
}

// TableRange addresses a rectangular block of cells anchored at a location.
type TableRange struct {
	TableCellLocation TableCellLocation `json:"tableCellLocation"`
	RowSpan           int               `json:"rowSpan"`
	ColumnSpan        int               `json:"columnSpan"`
}

// TableCellLocation addresses a single cell by table start index and
// zero-based row/column coordinates.
type TableCellLocation struct {
	TableStartLocation Location `json:"tableStartLocation"`
	RowIndex           int      `json:"rowIndex"`
	ColumnIndex        int      `json:"columnIndex"`
}
