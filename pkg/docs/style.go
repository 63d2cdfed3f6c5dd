package docs

import "fmt"

// NamedStyleType identifies a document-defined paragraph style.
type NamedStyleType string

// Named paragraph styles recognized by the protocol.
const (
	StyleNormalText NamedStyleType = "NORMAL_TEXT"
	StyleTitle      NamedStyleType = "TITLE"
	StyleSubtitle   NamedStyleType = "SUBTITLE"
	StyleHeading1   NamedStyleType = "HEADING_1"
	StyleHeading2   NamedStyleType = "HEADING_2"
	StyleHeading3   NamedStyleType = "HEADING_3"
	StyleHeading4   NamedStyleType = "HEADING_4"
	StyleHeading5   NamedStyleType = "HEADING_5"
	StyleHeading6   NamedStyleType = "HEADING_6"
)

// HeadingStyle returns the named style for a heading level 1 through 6.
func HeadingStyle(level int) (NamedStyleType, error) {
	if level < 1 || level > 6 {
		return "", fmt.Errorf("heading level %d out of range 1..6", level)
	}
	return NamedStyleType(fmt.Sprintf("HEADING_%d", level)), nil
}

// BulletPreset selects the glyph or numbering cycle for a list. Each
// CreateParagraphBullets request allocates a fresh list identity; sibling
// identities do not share an enumeration counter even with the same preset.
type BulletPreset string

// Bullet presets. The DISC_CIRCLE_SQUARE and DECIMAL_ALPHA_ROMAN cycles are
// the conventional defaults for unordered and ordered lists.
const (
	BulletDiscCircleSquare    BulletPreset = "BULLET_DISC_CIRCLE_SQUARE"
	BulletArrowDiamondDisc    BulletPreset = "BULLET_ARROW_DIAMOND_DISC"
	BulletCheckbox            BulletPreset = "BULLET_CHECKBOX"
	NumberedDecimalAlphaRoman BulletPreset = "NUMBERED_DECIMAL_ALPHA_ROMAN"
	NumberedDecimalNested     BulletPreset = "NUMBERED_DECIMAL_NESTED"
	NumberedUpperAlphaRoman   BulletPreset = "NUMBERED_UPPERALPHA_ALPHA_ROMAN"
)

// IsOrdered reports whether the preset produces a numbered (enumerated)
// list rather than a glyph cycle.
func (p BulletPreset) IsOrdered() bool {
	switch p {
	case NumberedDecimalAlphaRoman, NumberedDecimalNested, NumberedUpperAlphaRoman:
		return true
	default:
		return false
	}
}

// Unit constants for dimensions.
const UnitPoints = "PT"

// Dimension is a magnitude with a unit, e.g. {36, "PT"}.
type Dimension struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

// PT returns a point-denominated dimension.
func PT(magnitude float64) *Dimension {
	return &Dimension{Magnitude: magnitude, Unit: UnitPoints}
}

// ParagraphStyle carries paragraph-level presentation attributes. Zero-value
// members are omitted from the wire form; the Fields string on the enclosing
// request controls which members the service applies.
type ParagraphStyle struct {
	NamedStyleType  NamedStyleType   `json:"namedStyleType,omitempty"`
	Alignment       string           `json:"alignment,omitempty"`
	IndentStart     *Dimension       `json:"indentStart,omitempty"`
	IndentFirstLine *Dimension       `json:"indentFirstLine,omitempty"`
	PageBreakBefore bool             `json:"pageBreakBefore,omitempty"`
	BorderBottom    *ParagraphBorder `json:"borderBottom,omitempty"`
	SpaceAbove      *Dimension       `json:"spaceAbove,omitempty"`
	SpaceBelow      *Dimension       `json:"spaceBelow,omitempty"`
	LineSpacing     float64          `json:"lineSpacing,omitempty"`
}

// ParagraphBorder describes one edge border of a paragraph.
type ParagraphBorder struct {
	Color     OptionalColor `json:"color"`
	Width     *Dimension    `json:"width,omitempty"`
	Padding   *Dimension    `json:"padding,omitempty"`
	DashStyle string        `json:"dashStyle,omitempty"`
}

// TextStyle carries character-level presentation attributes.
type TextStyle struct {
	Bold               bool                `json:"bold,omitempty"`
	Italic             bool                `json:"italic,omitempty"`
	Underline          bool                `json:"underline,omitempty"`
	Link               *Link               `json:"link,omitempty"`
	ForegroundColor    *OptionalColor      `json:"foregroundColor,omitempty"`
	BackgroundColor    *OptionalColor      `json:"backgroundColor,omitempty"`
	FontSize           *Dimension          `json:"fontSize,omitempty"`
	WeightedFontFamily *WeightedFontFamily `json:"weightedFontFamily,omitempty"`
}

// Link is a hyperlink destination.
type Link struct {
	URL string `json:"url"`
}

// WeightedFontFamily names a font family for a text span.
type WeightedFontFamily struct {
	FontFamily string `json:"fontFamily"`
}

// TableCellStyle carries cell-level presentation attributes.
type TableCellStyle struct {
	BackgroundColor *OptionalColor   `json:"backgroundColor,omitempty"`
	BorderLeft      *TableCellBorder `json:"borderLeft,omitempty"`
	BorderRight     *TableCellBorder `json:"borderRight,omitempty"`
	BorderTop       *TableCellBorder `json:"borderTop,omitempty"`
	BorderBottom    *TableCellBorder `json:"borderBottom,omitempty"`
	PaddingTop      *Dimension       `json:"paddingTop,omitempty"`
	PaddingBottom   *Dimension       `json:"paddingBottom,omitempty"`
	PaddingLeft     *Dimension       `json:"paddingLeft,omitempty"`
	PaddingRight    *Dimension       `json:"paddingRight,omitempty"`
}

// TableCellBorder describes one edge border of a table cell.
type TableCellBorder struct {
	Color     OptionalColor `json:"color"`
	Width     *Dimension    `json:"width,omitempty"`
	DashStyle string        `json:"dashStyle"`
}

// DashStyleSolid is the only dash style this compiler emits.
const DashStyleSolid = "SOLID"
