package builder_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/docforge/pkg/builder"
	"github.com/yaklabco/docforge/pkg/config"
)

func BenchmarkCompile(b *testing.B) {
	section := strings.Join([]string{
		"## Section",
		"",
		"A paragraph with **bold**, *italic*, and `code` runs.",
		"",
		"- first item",
		"- second item",
		"  - nested item",
		"",
		"| Name | Value |",
		"|------|-------|",
		"| a    | 1     |",
		"| b    | 2     |",
		"",
	}, "\n")
	src := "# Document\n\n" + strings.Repeat(section, 20)
	style := config.Default()

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if _, err := builder.Compile(src, style); err != nil {
			b.Fatal(err)
		}
	}
}
