package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeLayout(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestValidateLayoutPath(t *testing.T) {
	t.Parallel()

	t.Run("returns error when path is empty", func(t *testing.T) {
		t.Parallel()
		err := validateLayoutPath("   ")
		require.Error(t, err)
		require.Contains(t, err.Error(), "required")
	})

	t.Run("returns error when file is missing", func(t *testing.T) {
		t.Parallel()
		err := validateLayoutPath(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "does not exist")
	})

	t.Run("returns error for directories", func(t *testing.T) {
		t.Parallel()
		err := validateLayoutPath(t.TempDir())
		require.Error(t, err)
		require.Contains(t, err.Error(), "is a directory")
	})

	t.Run("accepts regular files", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, validateLayoutPath(writeLayout(t, "version: \"1\"\n")))
	})
}
