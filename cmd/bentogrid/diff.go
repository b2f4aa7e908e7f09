package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bentogrid/internal/codegen"
	"github.com/alexisbeaulieu97/bentogrid/internal/logger"
	"github.com/alexisbeaulieu97/bentogrid/pkg/diff"
)

func newDiffCmd(root *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "diff <before.yaml> <after.yaml>",
		Short: "Show how the generated markup of two layouts differs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger(cmd)

			f, err := codegen.ParseFormat(format)
			if err != nil {
				return err
			}

			before, err := loadLayout(args[0])
			if err != nil {
				return err
			}
			after, err := loadLayout(args[1])
			if err != nil {
				return err
			}

			opts := codegen.Options{Format: f}
			a := codegen.GenerateWith(before, opts)
			b := codegen.GenerateWith(after, opts)

			inserted, deleted := diff.Changed(a, b)
			log.Debug("layouts compared", logger.Fields{"inserted": inserted, "deleted": deleted})

			out := diff.Lines(a, b, args[0], args[1])
			if out == "" {
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(codegen.FormatHTML), "Markup format: html or jsx")

	return cmd
}
