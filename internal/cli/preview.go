package cli

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/yaklabco/docforge/internal/logging"
	"github.com/yaklabco/docforge/pkg/markdown"
)

type previewFlags struct {
	output     string
	standalone bool
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a Markdown file as HTML for a quick look",
		Long: `Render a Markdown file to HTML, to preview roughly what the compiled
document will contain without submitting a batch anywhere.

The preview uses a GFM renderer, so tables and other extensions the
compiler understands show up. It is an approximation: named paragraph
styles, page breaks, and cell shading do not round-trip to HTML.

Examples:
  docforge preview README.md                 # HTML fragment to stdout
  docforge preview --standalone doc.md       # full HTML page
  docforge preview doc.md -o preview.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.standalone, "standalone", false, "wrap the fragment in a full HTML page")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string, flags *previewFlags) error {
	logger := logging.FromContext(cmd.Context())

	src, inputName, err := readInput(cmd, args)
	if err != nil {
		return errors.Join(errIO, err)
	}

	meta, body, err := markdown.SplitFrontmatter(string(src))
	if err != nil {
		return err
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	logger.Debug("preview rendered",
		logging.FieldInput, inputName,
		logging.FieldTitle, meta.Title,
		"html_bytes", buf.Len(),
	)

	out, cleanup, err := openOutput(cmd, flags.output)
	if err != nil {
		return errors.Join(errIO, err)
	}
	defer cleanup()

	if flags.standalone {
		if err := writePage(out, meta.Title, buf.Bytes()); err != nil {
			return errors.Join(errIO, err)
		}
		return nil
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return errors.Join(errIO, err)
	}
	return nil
}

// writePage wraps an HTML fragment in a minimal standalone page.
func writePage(out io.Writer, title string, fragment []byte) error {
	if title == "" {
		title = "docforge preview"
	}

	if _, err := fmt.Fprintf(out, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
`, html.EscapeString(title)); err != nil {
		return err
	}
	if _, err := out.Write(fragment); err != nil {
		return err
	}
	_, err := io.WriteString(out, "</body>\n</html>\n")
	return err
}
