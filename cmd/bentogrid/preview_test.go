package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreviewWritesSVG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grid.svg")
	_, _, err := execute(t, "preview", "-o", path, "--set", "columns = 4")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestPreviewWritesPDF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grid.out")
	_, _, err := execute(t, "preview", "-o", path, "--format", "pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPreviewErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "preview")
	require.Error(t, err, "output is required")

	_, _, err = execute(t, "preview", "-o", filepath.Join(t.TempDir(), "grid.png"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported preview format")

	_, _, err = execute(t, "preview", "-o", filepath.Join(t.TempDir(), "grid.svg"), "--track", "0")
	require.Error(t, err)
}
