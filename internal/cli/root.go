// Package cli provides the Cobra command structure for docforge.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docforge/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root docforge command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var stylePath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "docforge",
		Short: "Compile Markdown into rich-document edit operations",
		Long: `docforge compiles Markdown into an ordered batch of index-addressed
edit operations for rich-document APIs.

It parses headings, paragraphs, lists, tables, code blocks, blockquotes,
and inline styling into a typed element sequence, then emits the insert
and style requests that reproduce the document, with every range computed
in UTF-16 code units against the final buffer layout.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&stylePath, "style", "", "path to style config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCompileCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
