// Package parser converts raw command-line tokens into a search
// configuration.
//
// The switch grammar is findstr-style: /n, /v and /c may appear anywhere
// among the arguments, and whatever remains after removing them must be
// exactly the query and the file path, in that order. Only the first
// occurrence of each switch is consumed, so a duplicated switch leaves its
// second occurrence among the positionals.
package parser

import (
	"errors"
	"fmt"

	"github.com/harrison/maxgrep/internal/config"
)

// Recognized switches.
const (
	SwitchLineNumbers = "/n"
	SwitchInvert      = "/v"
	SwitchCaseFold    = "/c"
)

// ErrInvalidArgumentCount is returned when, after removing recognized
// switches, the remaining token count is not exactly two.
var ErrInvalidArgumentCount = errors.New("expected exactly 2 arguments (query and file) after switches")

// Parse builds a Config from the raw argument tokens, program name already
// stripped. Tokens are taken verbatim: nothing is trimmed, an empty query
// is legal, and an unrecognized /x token simply counts as a positional.
func Parse(tokens []string) (config.Config, error) {
	var cfg config.Config

	rest := tokens
	rest, cfg.ShowLineNumbers = popSwitch(rest, SwitchLineNumbers)
	rest, cfg.InvertMatch = popSwitch(rest, SwitchInvert)
	rest, cfg.CaseInsensitive = popSwitch(rest, SwitchCaseFold)

	if len(rest) != 2 {
		return config.Config{}, fmt.Errorf("parse arguments: %w", ErrInvalidArgumentCount)
	}

	cfg.Query = rest[0]
	cfg.Path = rest[1]
	return cfg, nil
}

// popSwitch removes the first occurrence of sw from tokens, reporting
// whether it was present. The caller's slice is left untouched.
func popSwitch(tokens []string, sw string) ([]string, bool) {
	for i, tok := range tokens {
		if tok == sw {
			return append(tokens[:i:i], tokens[i+1:]...), true
		}
	}
	return tokens, false
}
