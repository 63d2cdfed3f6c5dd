package markdown_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docforge/pkg/markdown"
)

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"", "   ", "\n\n", "   \n\n  "} {
		elements, err := markdown.Parse(src)
		require.NoError(t, err)
		assert.Empty(t, elements, "input %q should yield no elements", src)
	}
}

func TestParseHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		level int
		text  string
	}{
		{"h1", "# Heading", 1, "Heading"},
		{"h2", "## Section", 2, "Section"},
		{"h6", "###### Deep", 6, "Deep"},
		{"trailing space trimmed", "# Title  ", 1, "Title"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			elements, err := markdown.Parse(testCase.input)
			require.NoError(t, err)
			require.Len(t, elements, 1)

			el := elements[0]
			assert.Equal(t, markdown.KindHeading, el.Kind)
			assert.Equal(t, testCase.level, el.Level)
			assert.Equal(t, testCase.text, el.PlainText())
		})
	}
}

func TestParseSevenHashesIsParagraph(t *testing.T) {
	t.Parallel()

	elements, err := markdown.Parse("####### too deep")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, markdown.KindParagraph, elements[0].Kind)
}

func TestParseParagraphsAndBlankLines(t *testing.T) {
	t.Parallel()

	elements, err := markdown.Parse("first\n\n\nsecond\n")
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, "first", elements[0].PlainText())
	assert.Equal(t, "second", elements[1].PlainText())
}

func TestParseBlockquote(t *testing.T) {
	t.Parallel()

	elements, err := markdown.Parse("> quoted text")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, markdown.KindBlockquote, elements[0].Kind)
	assert.Equal(t, "quoted text", elements[0].PlainText())
}

func TestParseListItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		ordered bool
		depth   int
		text    string
	}{
		{"dash bullet", "- item", false, 0, "item"},
		{"star bullet", "* item", false, 0, "item"},
		{"ordered", "1. first", true, 0, "first"},
		{"ordered two digits", "12. twelfth", true, 0, "twelfth"},
		{"nested two spaces", "  - inner", false, 1, "inner"},
		{"nested four spaces", "    - deep", false, 2, "deep"},
		{"nested tab", "\t- inner", false, 1, "inner"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			elements, err := markdown.Parse(testCase.input)
			require.NoError(t, err)
			require.Len(t, elements, 1)

			el := elements[0]
			assert.Equal(t, markdown.KindListItem, el.Kind)
			assert.Equal(t, testCase.ordered, el.Ordered)
			assert.Equal(t, testCase.depth, el.Depth)
			assert.Equal(t, testCase.text, el.PlainText())
		})
	}
}

func TestParseListIndentOption(t *testing.T) {
	t.Parallel()

	parser := markdown.New(markdown.WithSpacesPerIndent(4))

	elements, err := parser.Parse("    - item")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, 1, elements[0].Depth)
}

func TestParseDashWithoutSpaceIsParagraph(t *testing.T) {
	t.Parallel()

	elements, err := markdown.Parse("-not a list")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, markdown.KindParagraph, elements[0].Kind)
}

func TestParseHorizontalRule(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"---", "----", "***", "___"} {
		elements, err := markdown.Parse(src)
		require.NoError(t, err)
		require.Len(t, elements, 1, "input %q", src)
		assert.Equal(t, markdown.KindHorizontalRule, elements[0].Kind, "input %q", src)
	}
}

func TestParsePageBreak(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"---page---", "---PAGE---", "<!-- pagebreak -->", `\pagebreak`} {
		elements, err := markdown.Parse(src)
		require.NoError(t, err)
		require.Len(t, elements, 1, "input %q", src)
		assert.Equal(t, markdown.KindPageBreak, elements[0].Kind, "input %q", src)
	}
}

func TestParseCodeFence(t *testing.T) {
	t.Parallel()

	t.Run("tagged fence keeps its tag", func(t *testing.T) {
		t.Parallel()

		elements, err := markdown.Parse("```go\nfmt.Println(\"hi\")\n```")
		require.NoError(t, err)
		require.Len(t, elements, 1)

		el := elements[0]
		assert.Equal(t, markdown.KindCodeBlock, el.Kind)
		assert.Equal(t, "go", el.Lang)
		assert.Equal(t, "fmt.Println(\"hi\")", el.Text)
	})

	t.Run("untagged fence gets a detected tag", func(t *testing.T) {
		t.Parallel()

		elements, err := markdown.Parse("```\npackage main\n\nfunc main() {}\n```")
		require.NoError(t, err)
		require.Len(t, elements, 1)
		assert.Equal(t, "go", elements[0].Lang)
	})

	t.Run("unclosed fence consumes the rest", func(t *testing.T) {
		t.Parallel()

		elements, err := markdown.Parse("```text\nline one\nline two")
		require.NoError(t, err)
		require.Len(t, elements, 1)
		assert.Equal(t, "line one\nline two", elements[0].Text)
	})

	t.Run("empty fence is dropped", func(t *testing.T) {
		t.Parallel()

		elements, err := markdown.Parse("```\n```")
		require.NoError(t, err)
		assert.Empty(t, elements)
	})

	t.Run("interior is literal", func(t *testing.T) {
		t.Parallel()

		elements, err := markdown.Parse("```text\n# not a heading\n- not a list\n```")
		require.NoError(t, err)
		require.Len(t, elements, 1)
		assert.Equal(t, markdown.KindCodeBlock, elements[0].Kind)
		assert.Equal(t, "# not a heading\n- not a list", elements[0].Text)
	})
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	elements, err := markdown.Parse("| A | B |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	require.Len(t, elements, 1)

	el := elements[0]
	require.Equal(t, markdown.KindTable, el.Kind)
	require.Len(t, el.Rows, 2)
	require.Len(t, el.Rows[0], 2)
	assert.Equal(t, "A", markdown.JoinRuns(el.Rows[0][0].Runs))
	assert.Equal(t, "B", markdown.JoinRuns(el.Rows[0][1].Runs))
	assert.Equal(t, "1", markdown.JoinRuns(el.Rows[1][0].Runs))
	assert.Equal(t, "2", markdown.JoinRuns(el.Rows[1][1].Runs))
}

func TestParseTableShortRowPadded(t *testing.T) {
	t.Parallel()

	elements, err := markdown.Parse("| A | B | C |\n|---|---|---|\n| only |")
	require.NoError(t, err)
	require.Len(t, elements, 1)

	rows := elements[0].Rows
	require.Len(t, rows, 2)
	require.Len(t, rows[1], 3)
	assert.Equal(t, "only", markdown.JoinRuns(rows[1][0].Runs))
	assert.Empty(t, rows[1][1].Runs)
	assert.Empty(t, rows[1][2].Runs)
}

func TestParseTableMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"empty row", "|  |\n|---|\n", 1},
		{"separators only", "|---|\n|---|\n", 1},
		{"empty data row", "| A |\n|---|\n|  |\n", 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := markdown.Parse(testCase.input)
			require.Error(t, err)

			var parseErr *markdown.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, testCase.line, parseErr.Line)
		})
	}
}

func TestParseTableRowWithoutSeparatorIsParagraph(t *testing.T) {
	t.Parallel()

	elements, err := markdown.Parse("| not | a table |")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, markdown.KindParagraph, elements[0].Kind)
}

func TestParseMixedDocument(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"# Title",
		"",
		"Intro paragraph.",
		"",
		"- one",
		"- two",
		"",
		"> quote",
		"",
		"```go",
		"x := 1",
		"```",
		"",
		"---",
	}, "\n")

	elements, err := markdown.Parse(src)
	require.NoError(t, err)
	require.Len(t, elements, 7)

	kinds := make([]markdown.ElementKind, 0, len(elements))
	for _, el := range elements {
		kinds = append(kinds, el.Kind)
	}
	assert.Equal(t, []markdown.ElementKind{
		markdown.KindHeading,
		markdown.KindParagraph,
		markdown.KindListItem,
		markdown.KindListItem,
		markdown.KindBlockquote,
		markdown.KindCodeBlock,
		markdown.KindHorizontalRule,
	}, kinds)
}

func FuzzParse(f *testing.F) {
	f.Add("# Heading\n\npara **bold**\n")
	f.Add("- a\n- b\n  - c\n")
	f.Add("| A |\n|---|\n| 1 |\n")
	f.Add("```\ncode\n")
	f.Add("---page---\n***\n> q\n")

	f.Fuzz(func(t *testing.T, src string) {
		elements, err := markdown.Parse(src)
		if err != nil {
			// The only legal error is a malformed table.
			var parseErr *markdown.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("non-ParseError from Parse: %v", err)
			}
			return
		}
		for _, el := range elements {
			if el.Kind == markdown.KindTable && len(el.Rows) == 0 {
				t.Fatal("table element with no rows")
			}
		}
	})
}
