package markdown

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docforge/pkg/langdetect"
)

// ParseError reports a structurally malformed table. All other malformed
// input degrades to plain paragraphs instead of erroring.
type ParseError struct {
	// Line is the 1-based source line where the malformed construct starts.
	Line int

	// Msg describes what was malformed.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markdown: line %d: %s", e.Line, e.Msg)
}

// defaultSpacesPerIndent is how many leading spaces equal one list
// indentation level when not configured otherwise.
const defaultSpacesPerIndent = 2

// Parser converts markdown text into a flat element sequence.
// The zero-cost way to get one is New; a Parser is safe for concurrent use.
type Parser struct {
	spacesPerIndent int
}

// Option configures a Parser.
type Option func(*Parser)

// WithSpacesPerIndent sets how many leading spaces count as one list
// indentation level. One tab always counts as one level. Values below 1
// are ignored.
func WithSpacesPerIndent(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.spacesPerIndent = n
		}
	}
}

// New creates a Parser with the given options applied over defaults.
func New(opts ...Option) *Parser {
	p := &Parser{spacesPerIndent: defaultSpacesPerIndent}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts src with a default-configured parser.
func Parse(src string) ([]Element, error) {
	return New().Parse(src)
}

// Parse converts markdown text into an ordered element sequence.
// Empty or whitespace-only input yields an empty sequence and no error.
// The only error condition is a structurally malformed table.
func (p *Parser) Parse(src string) ([]Element, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	lines := strings.Split(src, "\n")
	var elements []Element

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			i++
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			el, next := p.parseCodeFence(lines, i)
			if el != nil {
				elements = append(elements, *el)
			}
			i = next
			continue
		}

		if isPageBreak(trimmed) {
			elements = append(elements, Element{Kind: KindPageBreak})
			i++
			continue
		}

		if isHorizontalRule(trimmed) {
			elements = append(elements, Element{Kind: KindHorizontalRule})
			i++
			continue
		}

		if isTableRow(trimmed) && i+1 < len(lines) && isTableSeparator(strings.TrimSpace(lines[i+1])) {
			el, next, err := parseTable(lines, i)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
			i = next
			continue
		}

		if level, rest, ok := splitHeading(trimmed); ok {
			elements = append(elements, Element{Kind: KindHeading, Level: level, Runs: ParseInline(rest)})
			i++
			continue
		}

		if strings.HasPrefix(trimmed, ">") {
			text := strings.TrimSpace(strings.TrimLeft(trimmed, ">"))
			elements = append(elements, Element{Kind: KindBlockquote, Runs: ParseInline(text)})
			i++
			continue
		}

		if el, ok := p.parseListItem(line); ok {
			elements = append(elements, el)
			i++
			continue
		}

		elements = append(elements, Element{Kind: KindParagraph, Runs: ParseInline(trimmed)})
		i++
	}

	return elements, nil
}

// parseCodeFence consumes a fenced code region starting at lines[start].
// The interior is kept literal. A missing closing fence consumes the rest
// of the input. Fences with no info string get a detected language tag.
// Returns nil for an empty fence.
func (p *Parser) parseCodeFence(lines []string, start int) (*Element, int) {
	lang := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[start]), "```"))

	i := start + 1
	var body []string
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
		body = append(body, lines[i])
		i++
	}
	if i < len(lines) {
		i++ // closing fence
	}

	if len(body) == 0 {
		return nil, i
	}

	text := strings.Join(body, "\n")
	if lang == "" {
		lang = langdetect.Detect([]byte(text))
	}
	return &Element{Kind: KindCodeBlock, Text: text, Lang: lang}, i
}

// parseTable consumes a table: a header row, a dash separator, and any
// following rows matching the |-delimited pattern. Rows shorter than the
// widest row are padded with empty cells; a row with no cells at all is a
// ParseError.
func parseTable(lines []string, start int) (Element, int, error) {
	var rows [][]Cell

	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !isTableRow(trimmed) {
			break
		}
		if isTableSeparator(trimmed) {
			i++
			continue
		}

		fields := splitTableRow(trimmed)
		if len(fields) == 0 {
			return Element{}, 0, &ParseError{Line: i + 1, Msg: "table row has no cells"}
		}

		cells := make([]Cell, 0, len(fields))
		for _, f := range fields {
			cells = append(cells, Cell{Runs: ParseInline(f)})
		}
		rows = append(rows, cells)
		i++
	}

	if len(rows) == 0 {
		return Element{}, 0, &ParseError{Line: start + 1, Msg: "table has no rows"}
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	for ri, row := range rows {
		for len(row) < cols {
			row = append(row, Cell{})
		}
		rows[ri] = row
	}

	return Element{Kind: KindTable, Rows: rows}, i, nil
}

// parseListItem recognizes "- item", "* item", and "1. item" lines,
// deriving depth from leading whitespace. The full unmodified line is
// examined so indentation survives.
func (p *Parser) parseListItem(line string) (Element, bool) {
	depth, rest := p.indent(line)

	if len(rest) >= 2 && (rest[0] == '-' || rest[0] == '*') && rest[1] == ' ' {
		return Element{
			Kind:  KindListItem,
			Depth: depth,
			Runs:  ParseInline(strings.TrimSpace(rest[2:])),
		}, true
	}

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits+1 < len(rest) && rest[digits] == '.' && rest[digits+1] == ' ' {
		return Element{
			Kind:    KindListItem,
			Ordered: true,
			Depth:   depth,
			Runs:    ParseInline(strings.TrimSpace(rest[digits+2:])),
		}, true
	}

	return Element{}, false
}

// indent counts leading indentation levels (one tab, or spacesPerIndent
// spaces, per level) and returns the remainder of the line.
func (p *Parser) indent(line string) (int, string) {
	depth, spaces := 0, 0
	i := 0
	for ; i < len(line); i++ {
		switch line[i] {
		case '\t':
			depth++
			spaces = 0
		case ' ':
			spaces++
			if spaces == p.spacesPerIndent {
				depth++
				spaces = 0
			}
		default:
			return depth, line[i:]
		}
	}
	return depth, ""
}

// isPageBreak matches the explicit page-break markers: "---page---",
// an HTML pagebreak comment, or "\pagebreak".
func isPageBreak(s string) bool {
	if strings.EqualFold(s, "---page---") || strings.EqualFold(s, `\pagebreak`) {
		return true
	}
	if strings.HasPrefix(s, "<!--") && strings.HasSuffix(s, "-->") {
		inner := strings.TrimSpace(s[4 : len(s)-3])
		return strings.EqualFold(inner, "pagebreak")
	}
	return false
}

// isHorizontalRule matches lines of three or more identical '-', '*', or
// '_' characters.
func isHorizontalRule(s string) bool {
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}

// isTableRow matches "|"-delimited rows: the line starts and ends with a
// pipe and has something between them.
func isTableRow(s string) bool {
	return len(s) >= 2 && s[0] == '|' && s[len(s)-1] == '|'
}

// isTableSeparator matches the dash separator row under a table header,
// tolerating alignment colons.
func isTableSeparator(s string) bool {
	if !isTableRow(s) {
		return false
	}
	hasDash := false
	for _, c := range s {
		switch c {
		case '|', ':', ' ', '\t':
		case '-':
			hasDash = true
		default:
			return false
		}
	}
	return hasDash
}

// splitTableRow splits "| a | b |" into its trimmed cell texts.
// A row with an empty interior yields no cells.
func splitTableRow(s string) []string {
	interior := strings.TrimSpace(strings.Trim(s, "|"))
	if interior == "" {
		return nil
	}
	parts := strings.Split(interior, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// splitHeading recognizes ATX headings: one to six '#' characters followed
// by a space.
func splitHeading(s string) (int, string, bool) {
	level := 0
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(s) || s[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(s[level:]), true
}
