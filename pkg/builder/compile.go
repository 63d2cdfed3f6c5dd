package builder

import (
	"github.com/yaklabco/docforge/pkg/config"
	"github.com/yaklabco/docforge/pkg/markdown"
)

// Compile parses markdown source and compiles it into a finalized batch in
// one step. A frontmatter title, when present, becomes the leading title
// paragraph. Empty or whitespace-only input compiles to an empty batch.
func Compile(src string, style config.Style, opts ...Option) (*Batch, error) {
	meta, body, err := markdown.SplitFrontmatter(src)
	if err != nil {
		return nil, err
	}

	parser := markdown.New(markdown.WithSpacesPerIndent(style.SpacesPerIndent))
	elements, err := parser.Parse(body)
	if err != nil {
		return nil, err
	}

	b, err := New(style, opts...)
	if err != nil {
		return nil, err
	}
	if meta.Title != "" {
		if err := b.AddTitle(meta.Title); err != nil {
			return nil, err
		}
	}
	if err := b.AddElements(elements); err != nil {
		return nil, err
	}
	return b.Finalize()
}
