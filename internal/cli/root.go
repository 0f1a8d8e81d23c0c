// Package cli wires the storenav commands: operator catalog
// maintenance, bulk TXT import, and customer search resolution.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string // path to the SQLite preference store
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the storenav CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storenav",
		Short: "storenav - store map navigation",
		Long: `Store-navigation catalog tool.

Operators maintain a catalog of products and rectangular map sections
and bulk-import product lists; customers resolve product names to the
map sections to highlight.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "storenav.db", "path to SQLite preference store")

	// Add subcommands
	cmd.AddCommand(NewProductCommand(opts))
	cmd.AddCommand(NewSectionCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewMapCommand(opts))

	return cmd
}

// configureLogging sets the default slog logger, debug level under
// --verbose. Logs go to stderr so JSON output stays clean on stdout.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
