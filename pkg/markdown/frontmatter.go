package markdown

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Meta is document metadata supplied by a leading YAML frontmatter block.
type Meta struct {
	// Title, when set, becomes the document title paragraph.
	Title string `yaml:"title"`

	// Author is carried through for callers that want it; the compiler
	// itself does not emit it.
	Author string `yaml:"author"`
}

// SplitFrontmatter extracts an optional YAML frontmatter block from the
// start of src, returning the parsed metadata and the remaining markdown.
// Input without frontmatter passes through unchanged with zero Meta.
func SplitFrontmatter(src string) (Meta, string, error) {
	var meta Meta
	rest, err := frontmatter.Parse(strings.NewReader(src), &meta)
	if err != nil {
		return Meta{}, "", fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, string(rest), nil
}
