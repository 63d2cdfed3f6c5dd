package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/docforge/internal/logging"
	"github.com/yaklabco/docforge/internal/ui/pretty"
	"github.com/yaklabco/docforge/pkg/builder"
	"github.com/yaklabco/docforge/pkg/config"
)

type compileFlags struct {
	output     string
	format     string
	startIndex int64
	compact    bool
}

func newCompileCommand() *cobra.Command {
	flags := &compileFlags{}

	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a Markdown file into an operation batch",
		Long: `Compile a Markdown file into an ordered batch of edit operations.

Reads from the given file, or from stdin when no file (or "-") is given.
The default output is the batch as JSON; "table" renders each operation
as a row, "summary" prints counts only.

Examples:
  docforge compile README.md                 # JSON batch to stdout
  docforge compile README.md -o batch.json   # JSON batch to a file
  docforge compile --format table doc.md     # human-readable operation table
  docforge compile --start-index 120 doc.md  # compose into existing content
  cat doc.md | docforge compile              # read from stdin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().StringVar(&flags.format, "format", "json", "output format: json, table, summary")
	cmd.Flags().Int64Var(&flags.startIndex, "start-index", builder.DefaultStartIndex,
		"buffer index the first insertion targets")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "emit compact JSON without indentation")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string, flags *compileFlags) error {
	logger := logging.FromContext(cmd.Context())

	stylePath, err := cmd.Flags().GetString("style")
	if err != nil {
		return fmt.Errorf("get style flag: %w", err)
	}
	style, err := config.Load(stylePath)
	if err != nil {
		return errors.Join(errStyleConfig, err)
	}

	src, inputName, err := readInput(cmd, args)
	if err != nil {
		return errors.Join(errIO, err)
	}
	logger.Debug("input read", logging.FieldInput, inputName, "bytes", len(src))

	batch, err := builder.Compile(string(src), style, builder.WithStartIndex(flags.startIndex))
	if err != nil {
		return err
	}

	stats := batch.Stats()
	logger.Debug("batch compiled",
		logging.FieldRequests, len(batch.Requests),
		logging.FieldCellStyles, len(batch.TableCellStyles),
		logging.FieldInsertedLen, stats.InsertedLen,
		logging.FieldStartIndex, flags.startIndex,
	)

	out, cleanup, err := openOutput(cmd, flags.output)
	if err != nil {
		return errors.Join(errIO, err)
	}
	defer cleanup()

	if err := writeBatch(cmd, out, batch, flags); err != nil {
		return errors.Join(errIO, err)
	}
	return nil
}

// readInput returns the markdown source from the file argument, or from
// stdin when no argument (or "-") is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return src, "stdin", nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	return src, args[0], nil
}

// openOutput returns the destination writer plus a cleanup func. An empty
// path means the command's stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeBatch(cmd *cobra.Command, out io.Writer, batch *builder.Batch, flags *compileFlags) error {
	switch flags.format {
	case "json":
		encoder := json.NewEncoder(out)
		if !flags.compact {
			encoder.SetIndent("", "  ")
		}
		if err := encoder.Encode(batch); err != nil {
			return fmt.Errorf("encode batch: %w", err)
		}
		return nil

	case "table":
		styles := newOutputStyles(cmd, out)
		formatter := pretty.NewTableFormatter(styles, terminalWidth(out))
		if _, err := io.WriteString(out, formatter.FormatBatch(batch)); err != nil {
			return err
		}
		_, err := io.WriteString(out, styles.FormatSummaryOneLine(batch.Stats()))
		return err

	case "summary":
		styles := newOutputStyles(cmd, out)
		_, err := io.WriteString(out, styles.FormatSummary(batch.Stats()))
		return err

	default:
		return fmt.Errorf("invalid format %q: must be json, table, or summary", flags.format)
	}
}

// newOutputStyles builds styles honoring the root --color flag for the
// given writer.
func newOutputStyles(cmd *cobra.Command, out io.Writer) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
}

// terminalWidth returns the width of the writer's terminal, or 0 when the
// writer is not a terminal so the formatter applies its default.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
