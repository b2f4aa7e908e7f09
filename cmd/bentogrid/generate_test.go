package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bentogrid/internal/codegen"
	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
)

func TestGenerateDefaults(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, "generate")
	require.NoError(t, err)
	require.Equal(t, codegen.Generate(grid.Default())+"\n", out)
	require.Empty(t, stderr)
}

func TestGenerateFromLayoutAndExpressions(t *testing.T) {
	t.Parallel()

	path := writeLayout(t, `version: "1"
grid:
  columns: 4
  gap: 2
items:
  - index: 0
    text: "Hero"
`)

	out, _, err := execute(t, "generate", "-c", path, "--set", "rows = 3", "--set", "item[0].colSpan = 2")
	require.NoError(t, err)
	require.Contains(t, out, "grid-template-columns: repeat(4, minmax(0,1fr))")
	require.Contains(t, out, "grid-template-rows: repeat(3, minmax(0,1fr))")
	require.Contains(t, out, "gap: 0.5rem")
	require.Contains(t, out, "grid-column: span 2 / span 2")
	require.Contains(t, out, ">Hero</span>")
}

func TestGenerateJSX(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "generate", "--format", "jsx")
	require.NoError(t, err)
	require.Contains(t, out, "className=")
}

func TestGenerateRejectedExpression(t *testing.T) {
	t.Parallel()

	t.Run("skipped and logged by default", func(t *testing.T) {
		t.Parallel()
		out, stderr, err := execute(t, "generate", "--set", "backgroundColor = #zz; columns = 5")
		require.NoError(t, err)
		require.Contains(t, out, "repeat(5, minmax(0,1fr))")
		require.Contains(t, stderr, "input rejected")
	})

	t.Run("fatal with --strict", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, "generate", "--strict", "--set", "backgroundColor = #zz")
		require.Error(t, err)
		require.Contains(t, err.Error(), "backgroundColor")
	})
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "generate", "--format", "svelte")
	require.Error(t, err)

	_, _, err = execute(t, "generate", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")

	bad := writeLayout(t, "version: \"1\"\ngrid:\n  background: teal\n")
	_, _, err = execute(t, "generate", "-c", bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "grid.background")
}

func TestGenerateToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grid.html")
	out, _, err := execute(t, "generate", "-o", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "min-h-[400px] p-4")
}
