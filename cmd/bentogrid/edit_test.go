package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	"github.com/alexisbeaulieu97/bentogrid/internal/tui"
)

func stubEditor(t *testing.T, terminal bool, runner func(tui.Model) (grid.Settings, error)) {
	t.Helper()

	originalTerminal := isTerminal
	originalRunner := editRunner
	t.Cleanup(func() {
		isTerminal = originalTerminal
		editRunner = originalRunner
	})

	isTerminal = func() bool { return terminal }
	editRunner = runner
}

func TestEditRequiresTerminal(t *testing.T) {
	stubEditor(t, false, func(tui.Model) (grid.Settings, error) {
		t.Fatal("editor must not start without a terminal")
		return grid.Settings{}, nil
	})

	_, _, err := execute(t, "edit")
	require.ErrorIs(t, err, errNotTerminal)
}

func TestEditStartsFromLayout(t *testing.T) {
	var started tui.Model
	stubEditor(t, true, func(m tui.Model) (grid.Settings, error) {
		started = m
		return m.Settings(), nil
	})

	path := writeLayout(t, "version: \"1\"\ngrid:\n  columns: 5\n")
	_, _, err := execute(t, "edit", "-c", path, "--set", "rows = 4", "--format", "jsx")
	require.NoError(t, err)

	require.Equal(t, 5, started.Settings().Columns)
	require.Equal(t, 4, started.Settings().Rows)
	require.Contains(t, started.Markup(), "className=")
}

func TestEditPropagatesRunnerError(t *testing.T) {
	boom := errors.New("boom")
	stubEditor(t, true, func(tui.Model) (grid.Settings, error) {
		return grid.Settings{}, boom
	})

	_, _, err := execute(t, "edit")
	require.ErrorIs(t, err, boom)
}
