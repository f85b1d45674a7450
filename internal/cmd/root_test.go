package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/maxgrep/internal/parser"
)

// Helper function to create a file with the given content
func createTestFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	return path
}

// Helper function to execute the root command with args
func executeCommand(t *testing.T, args []string) (string, error) {
	t.Helper()

	rootCmd := NewRootCommand()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand_Search(t *testing.T) {
	file := createTestFile(t, "a\nb\na")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "plain match",
			args: []string{"a", file},
			want: "a\na\n",
		},
		{
			name: "line numbers",
			args: []string{"/n", "a", file},
			want: "1: a\n3: a\n",
		},
		{
			name: "inverted with line numbers",
			args: []string{"/n", "/v", "a", file},
			want: "2: b\n",
		},
		{
			name: "zero matches prints nothing",
			args: []string{"zzz", file},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRootCommand_CaseFolding(t *testing.T) {
	file := createTestFile(t, "foobar\nFOOBAR\nother")

	t.Run("case sensitive", func(t *testing.T) {
		out, err := executeCommand(t, []string{"Foo", file})
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("case insensitive prints original lines", func(t *testing.T) {
		out, err := executeCommand(t, []string{"/c", "Foo", file})
		require.NoError(t, err)
		assert.Equal(t, "foobar\nFOOBAR\n", out)
	})
}

func TestRootCommand_InvertMatch(t *testing.T) {
	file := createTestFile(t, "abc\nxyz\nabcd")

	out, err := executeCommand(t, []string{"/v", "ab", file})
	require.NoError(t, err)
	assert.Equal(t, "xyz\n", out)
}

func TestRootCommand_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{}},
		{name: "missing file", args: []string{"query"}},
		{name: "extra positional", args: []string{"query", "a.txt", "b.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, parser.ErrInvalidArgumentCount))
			assert.Empty(t, out, "no output on malformed arguments")
		})
	}
}

func TestRootCommand_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.txt")

	out, err := executeCommand(t, []string{"query", missing})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "read "+missing))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Empty(t, out, "no output when the file cannot be read")
}
