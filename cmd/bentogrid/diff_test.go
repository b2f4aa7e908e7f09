package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffShowsChangedLines(t *testing.T) {
	t.Parallel()

	before := writeLayout(t, "version: \"1\"\n")
	after := writeLayout(t, "version: \"1\"\ngrid:\n  columns: 4\n  item_count: 7\n")

	out, _, err := execute(t, "diff", before, after)
	require.NoError(t, err)
	require.Contains(t, out, "--- "+before)
	require.Contains(t, out, "+++ "+after)
	require.Contains(t, out, "-<div style=\"display: grid; grid-template-columns: repeat(3")
	require.Contains(t, out, "+<div style=\"display: grid; grid-template-columns: repeat(4")
	require.Contains(t, out, "+  <div class=")
	require.Contains(t, out, "Grid Item 7</div>")
}

func TestDiffIdenticalLayouts(t *testing.T) {
	t.Parallel()

	a := writeLayout(t, "version: \"1\"\n")
	b := writeLayout(t, "version: \"1\"\ngrid:\n  columns: 3\n")

	out, _, err := execute(t, "diff", a, b)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDiffRequiresTwoLayouts(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "diff", writeLayout(t, "version: \"1\"\n"))
	require.Error(t, err)
}
