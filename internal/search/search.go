// Package search implements the line-scan engine: a pure function from a
// configuration and an in-memory file body to the set of selected lines.
package search

import (
	"strings"

	"github.com/harrison/maxgrep/internal/config"
)

// Results maps 1-based line numbers to the original text of every selected
// line. Iteration order is unspecified; callers sort the keys before
// rendering.
type Results map[int]string

// Search scans text line by line and returns the lines selected by cfg:
// the lines containing cfg.Query as a substring, or with InvertMatch the
// lines that do not. The stored text is always the original line, even when
// the comparison is case-folded. The scan has no side effects.
func Search(cfg config.Config, text string) Results {
	query := cfg.Query
	if cfg.CaseInsensitive {
		query = strings.ToLower(query)
	}

	results := make(Results)
	for i, line := range splitLines(text) {
		probe := line
		if cfg.CaseInsensitive {
			probe = strings.ToLower(line)
		}
		if strings.Contains(probe, query) != cfg.InvertMatch {
			results[i+1] = line
		}
	}
	return results
}

// splitLines splits text on '\n' with universal newline handling: one
// trailing '\r' is stripped from each line and a trailing newline does not
// produce a final empty line. Empty input yields no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
