package config

// Config holds the validated configuration for a single search invocation.
// It is built once from the command-line arguments and read-only afterwards.
type Config struct {
	// Query is the substring to search for, verbatim.
	Query string

	// Path is the file to search.
	Path string

	// CaseInsensitive folds both query and line to lowercase before
	// comparing. Switch: /c
	CaseInsensitive bool

	// ShowLineNumbers prefixes each printed line with its 1-based line
	// number. Switch: /n
	ShowLineNumbers bool

	// InvertMatch selects the lines that do NOT contain the query.
	// Switch: /v
	InvertMatch bool
}
