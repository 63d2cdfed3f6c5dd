package markdown

import "strings"

// ParseInline splits a line of text into style runs, recognizing, left to
// right: **bold** (or __bold__), *italic* (or _italic_), ++underline++,
// `code`, and [text](url) links. Markers with no matching closer are kept
// as literal text.
//
// Bold and italic spans may nest; a closing marker closes the nearest
// unmatched opener of its own kind. For overlapping-but-not-nested spans
// (bold opens, italic opens, bold closes, italic closes) each closer still
// closes only its own kind, so the overlap region carries both styles.
func ParseInline(text string) []Run {
	if text == "" {
		return nil
	}
	s := inlineScanner{src: text}
	s.scan()
	return s.runs
}

// inlineScanner is a single-pass scanner over one line of inline text.
// Style state is a flat set of flags; runs are flushed on every transition.
type inlineScanner struct {
	src  string
	pos  int
	runs []Run
	cur  strings.Builder

	bold      bool
	italic    bool
	underline bool
}

func (s *inlineScanner) scan() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '*':
			s.toggleEmphasis("*")
		case '_':
			s.toggleEmphasis("_")
		case '+':
			if strings.HasPrefix(s.src[s.pos:], "++") {
				s.toggle(&s.underline, "++")
			} else {
				s.literal(1)
			}
		case '`':
			s.codeSpan()
		case '[':
			s.link()
		default:
			s.literal(1)
		}
	}
	s.flush()
}

// toggleEmphasis handles '*' and '_' markers: a doubled marker toggles bold,
// a single one toggles italic.
func (s *inlineScanner) toggleEmphasis(marker string) {
	double := marker + marker
	if strings.HasPrefix(s.src[s.pos:], double) {
		s.toggle(&s.bold, double)
		return
	}
	s.toggle(&s.italic, marker)
}

// toggle closes an open span of the marker's kind, or opens one when a
// matching closer exists later in the text. A marker with no closer ahead
// is literal text.
func (s *inlineScanner) toggle(open *bool, marker string) {
	if *open {
		s.flush()
		*open = false
		s.pos += len(marker)
		return
	}
	if !strings.Contains(s.src[s.pos+len(marker):], marker) {
		s.literal(len(marker))
		return
	}
	s.flush()
	*open = true
	s.pos += len(marker)
}

// codeSpan consumes `code`. The interior is literal: no nested markers.
func (s *inlineScanner) codeSpan() {
	rest := s.src[s.pos+1:]
	end := strings.IndexByte(rest, '`')
	if end < 0 {
		s.literal(1)
		return
	}
	s.flush()
	if end > 0 {
		s.runs = append(s.runs, Run{
			Text:      rest[:end],
			Code:      true,
			Bold:      s.bold,
			Italic:    s.italic,
			Underline: s.underline,
		})
	}
	s.pos += end + 2
}

// link consumes [label](url) with a non-empty label and url. The label is
// literal text; enclosing bold/italic state carries onto the link run.
func (s *inlineScanner) link() {
	rest := s.src[s.pos:]

	labelEnd := strings.IndexByte(rest, ']')
	if labelEnd <= 1 || labelEnd+1 >= len(rest) || rest[labelEnd+1] != '(' {
		s.literal(1)
		return
	}
	urlLen := strings.IndexByte(rest[labelEnd+2:], ')')
	if urlLen <= 0 {
		s.literal(1)
		return
	}

	s.flush()
	s.runs = append(s.runs, Run{
		Text:      rest[1:labelEnd],
		Link:      rest[labelEnd+2 : labelEnd+2+urlLen],
		Bold:      s.bold,
		Italic:    s.italic,
		Underline: s.underline,
	})
	s.pos += labelEnd + 2 + urlLen + 1
}

// literal appends the next n bytes of source to the current run verbatim.
func (s *inlineScanner) literal(n int) {
	s.cur.WriteString(s.src[s.pos : s.pos+n])
	s.pos += n
}

// flush emits the accumulated text as a run carrying the current style.
func (s *inlineScanner) flush() {
	if s.cur.Len() == 0 {
		return
	}
	s.runs = append(s.runs, Run{
		Text:      s.cur.String(),
		Bold:      s.bold,
		Italic:    s.italic,
		Underline: s.underline,
	})
	s.cur.Reset()
}
