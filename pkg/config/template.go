package config

// Template is the annotated default style file written by `docforge init`.
const Template = `# docforge style configuration.
# All colors are "#RRGGBB" hex strings; dimensions are points.

# Font family for code blocks and inline code.
mono_font: Consolas

# Background shade for inline code and code blocks.
code_background: "#EDEDED"

# Table header row styling.
table_header_background: "#D5E8F0"
table_header_bold: true
table_border_color: "#CCCCCC"
table_border_width: 0.5
table_cell_padding: 6

# Indent applied to blockquotes, in points.
blockquote_indent: 36

# Border color for horizontal rules.
rule_color: "#B3B3B3"

# Bullet presets. One createParagraphBullets request is issued per
# contiguous list, so every list shares one glyph/numbering cycle.
bullet_preset: BULLET_DISC_CIRCLE_SQUARE
numbered_preset: NUMBERED_DECIMAL_ALPHA_ROMAN

# How many leading spaces equal one list nesting level in markdown.
spaces_per_indent: 2
`
