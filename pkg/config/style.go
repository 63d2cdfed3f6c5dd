// Package config holds the document style configuration: fonts, colors,
// indents, and bullet presets used by the compiler. The configuration is an
// explicit value passed into each builder, never ambient state, so compiles
// with different presets can run concurrently without interference.
package config

import (
	"errors"
	"fmt"

	"github.com/yaklabco/docforge/pkg/docs"
)

// Style is the document-wide style configuration. Colors are "#RRGGBB" hex
// strings; dimensions are points. The zero value is not usable; start from
// Default.
type Style struct {
	// MonoFont is the font family for code blocks and inline code.
	MonoFont string `yaml:"mono_font"`

	// CodeBackground shades inline code and code blocks.
	CodeBackground string `yaml:"code_background"`

	// Table header styling.
	TableHeaderBackground string  `yaml:"table_header_background"`
	TableHeaderBold       bool    `yaml:"table_header_bold"`
	TableBorderColor      string  `yaml:"table_border_color"`
	TableBorderWidth      float64 `yaml:"table_border_width"`
	TableCellPadding      float64 `yaml:"table_cell_padding"`

	// BlockquoteIndent is the fixed indent unit applied to blockquotes.
	BlockquoteIndent float64 `yaml:"blockquote_indent"`

	// RuleColor is the border color of horizontal rules.
	RuleColor string `yaml:"rule_color"`

	// Bullet presets for unordered and ordered lists.
	BulletPreset   docs.BulletPreset `yaml:"bullet_preset"`
	NumberedPreset docs.BulletPreset `yaml:"numbered_preset"`

	// SpacesPerIndent is how many leading spaces count as one list
	// nesting level in markdown input.
	SpacesPerIndent int `yaml:"spaces_per_indent"`
}

// Default returns the out-of-the-box style. It matches the look the
// compiler was tuned for: light blue table headers, light gray borders,
// Consolas code.
func Default() Style {
	return Style{
		MonoFont:              "Consolas",
		CodeBackground:        "#EDEDED",
		TableHeaderBackground: "#D5E8F0",
		TableHeaderBold:       true,
		TableBorderColor:      "#CCCCCC",
		TableBorderWidth:      0.5,
		TableCellPadding:      6,
		BlockquoteIndent:      36,
		RuleColor:             "#B3B3B3",
		BulletPreset:          docs.BulletDiscCircleSquare,
		NumberedPreset:        docs.NumberedDecimalAlphaRoman,
		SpacesPerIndent:       2,
	}
}

// Validate checks that the style is internally consistent: colors parse,
// dimensions are non-negative, and the presets match their list kind.
func (s Style) Validate() error {
	var errs []error

	for name, hex := range map[string]string{
		"code_background":         s.CodeBackground,
		"table_header_background": s.TableHeaderBackground,
		"table_border_color":      s.TableBorderColor,
		"rule_color":              s.RuleColor,
	} {
		if _, err := docs.ParseHexColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if s.MonoFont == "" {
		errs = append(errs, errors.New("mono_font must not be empty"))
	}
	if s.TableBorderWidth < 0 {
		errs = append(errs, errors.New("table_border_width must be non-negative"))
	}
	if s.TableCellPadding < 0 {
		errs = append(errs, errors.New("table_cell_padding must be non-negative"))
	}
	if s.BlockquoteIndent < 0 {
		errs = append(errs, errors.New("blockquote_indent must be non-negative"))
	}
	if s.SpacesPerIndent < 1 {
		errs = append(errs, errors.New("spaces_per_indent must be at least 1"))
	}
	if s.BulletPreset.IsOrdered() {
		errs = append(errs, fmt.Errorf("bullet_preset %q is a numbered preset", s.BulletPreset))
	}
	if !s.NumberedPreset.IsOrdered() {
		errs = append(errs, fmt.Errorf("numbered_preset %q is not a numbered preset", s.NumberedPreset))
	}

	return errors.Join(errs...)
}
