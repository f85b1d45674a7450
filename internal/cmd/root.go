// Package cmd wires the command-line interface: argument parsing, file
// reading, searching, and printing.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/maxgrep/internal/display"
	"github.com/harrison/maxgrep/internal/parser"
	"github.com/harrison/maxgrep/internal/search"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root command for maxgrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maxgrep [/n] [/v] [/c] <query> <file>",
		Short: "Line-oriented substring search in a single file",
		Long: `Maxgrep prints the lines of a file that contain a query string.

Switches may appear anywhere among the arguments:
  /n   prefix each printed line with its 1-based line number
  /v   invert the match: print lines that do NOT contain the query
  /c   compare case-insensitively

Exactly two arguments must remain after the switches: the query and the
file to search. Exit code 0 on success (zero matches included), 1 on
malformed arguments or an unreadable file.`,
		Version: Version,
		// The /x switch grammar is foreign to POSIX-style flag parsing;
		// tokens must reach the parser verbatim, including ones that
		// start with '-'.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearchWithOutput(args, cmd.OutOrStdout())
		},
	}

	return cmd
}

// runSearchWithOutput runs the full pipeline against a custom output writer
// (for testing). Nothing is written unless parsing and the file read both
// succeed; there is no partial output.
func runSearchWithOutput(args []string, out io.Writer) error {
	cfg, err := parser.Parse(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.Path, err)
	}

	results := search.Search(cfg, string(data))
	return display.NewPrinter(out).Print(cfg, results)
}
