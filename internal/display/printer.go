// Package display renders search results to the terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/maxgrep/internal/config"
	"github.com/harrison/maxgrep/internal/search"
)

// Printer writes selected lines in ascending line-number order.
type Printer struct {
	out       io.Writer
	highlight *color.Color
	colorize  bool
}

// NewPrinter creates a Printer for out. Match highlighting is enabled only
// when out is an interactive terminal; piped or redirected output stays
// byte-identical to the plain rendering.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:       out,
		highlight: color.New(color.FgRed, color.Bold),
		colorize:  isTerminal(out),
	}
}

// isTerminal reports whether w is a TTY that should receive ANSI color.
// color.NoColor already honors the NO_COLOR convention.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Print renders res: ascending line numbers, an optional "<n>: " prefix,
// one output line per selected line. An empty result set writes nothing.
func (p *Printer) Print(cfg config.Config, res search.Results) error {
	numbers := make([]int, 0, len(res))
	for n := range res {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	for _, n := range numbers {
		if cfg.ShowLineNumbers {
			if _, err := fmt.Fprintf(p.out, "%d: ", n); err != nil {
				return fmt.Errorf("write line number: %w", err)
			}
		}
		if _, err := fmt.Fprintln(p.out, p.render(cfg, res[n])); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	return nil
}

// render colors the first matched substring when highlighting is on.
// Inverted matches have nothing to highlight. The case-insensitive lookup
// locates the match in the folded line but colors the original bytes; if
// folding changed the byte length the offsets no longer line up and the
// line is emitted plain.
func (p *Printer) render(cfg config.Config, line string) string {
	if !p.colorize || cfg.InvertMatch || cfg.Query == "" {
		return line
	}

	probe, query := line, cfg.Query
	if cfg.CaseInsensitive {
		probe = strings.ToLower(line)
		query = strings.ToLower(query)
		if len(probe) != len(line) {
			return line
		}
	}

	start := strings.Index(probe, query)
	if start < 0 {
		return line
	}
	end := start + len(query)
	return line[:start] + p.highlight.Sprint(line[start:end]) + line[end:]
}
