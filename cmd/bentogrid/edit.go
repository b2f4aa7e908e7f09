package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/bentogrid/internal/codegen"
	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	"github.com/alexisbeaulieu97/bentogrid/internal/logger"
	"github.com/alexisbeaulieu97/bentogrid/internal/tui"
)

type editOptions struct {
	layoutOptions
	Output string
	Format string
}

var (
	errNotTerminal = errors.New("edit needs an interactive terminal; use generate or preview instead")

	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}

	editRunner = runEditor
)

func newEditCmd(root *rootFlags) *cobra.Command {
	opts := editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a layout interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotTerminal
			}

			log := root.logger(cmd)
			format, err := codegen.ParseFormat(opts.Format)
			if err != nil {
				return err
			}
			s, err := opts.settings(log)
			if err != nil {
				return err
			}

			final, err := editRunner(tui.NewModel(s, tui.Options{
				ExportPath: opts.Output,
				Format:     format,
				Logger:     log,
			}))
			if err != nil {
				return err
			}

			log.Debug("editor closed", logger.Fields{"items": final.ItemCount})
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "File the w key exports markup to")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", string(codegen.FormatHTML), "Markup format: html or jsx")

	return cmd
}

func runEditor(m tui.Model) (grid.Settings, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return grid.Settings{}, fmt.Errorf("run editor: %w", err)
	}
	if fm, ok := final.(tui.Model); ok {
		return fm.Settings(), nil
	}
	return m.Settings(), nil
}
