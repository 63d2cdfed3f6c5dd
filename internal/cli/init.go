package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docforge/internal/logging"
	"github.com/yaklabco/docforge/pkg/config"
)

// styleFilePermissions is the file mode for style files (world-readable).
const styleFilePermissions = 0644

// defaultStyleFile is the style file name written by init.
const defaultStyleFile = ".docforge.yml"

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a docforge style file",
		Long: `Create a new .docforge.yml style file in the current directory with the
default document style, fully annotated. Edit it to change fonts, colors,
table styling, and list presets, then pass it to compile with --style.

Examples:
  docforge init                      Create .docforge.yml
  docforge init --output house.yml   Write to a custom path
  docforge init --force              Overwrite an existing file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing style file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: "+defaultStyleFile+")")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultStyleFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return errors.Join(errIO, fmt.Errorf("resolve path: %w", err))
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := os.WriteFile(absPath, []byte(config.Template), styleFilePermissions); err != nil {
		return errors.Join(errIO, fmt.Errorf("write file: %w", err))
	}

	logger.Info("created style file", logging.FieldPath, outputPath)
	logger.Info("pass it to compile with --style " + outputPath)

	return nil
}
