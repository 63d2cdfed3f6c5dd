package docs

import "unicode/utf16"

// UTF16Len returns the length of s in UTF-16 code units, the protocol's
// indexing granularity. Characters outside the Basic Multilingual Plane
// (emoji, some CJK) count as two units.
func UTF16Len(s string) int64 {
	var n int64
	for _, r := range s {
		if utf16.RuneLen(r) == 2 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
