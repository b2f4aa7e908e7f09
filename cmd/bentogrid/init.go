package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bentogrid/internal/config"
	"github.com/alexisbeaulieu97/bentogrid/internal/logger"
)

const defaultLayoutPath = "bentogrid.yaml"

type initOptions struct {
	layoutOptions
	Output string
	Name   string
	Force  bool
}

func newInitCmd(root *rootFlags) *cobra.Command {
	opts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter layout file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger(cmd)

			if _, err := os.Stat(opts.Output); err == nil && !opts.Force {
				return fmt.Errorf("%s already exists; pass --force to overwrite", opts.Output)
			}

			s, err := opts.settings(log)
			if err != nil {
				return err
			}

			if err := config.WriteLayout(opts.Output, config.FromSettings(opts.Name, s)); err != nil {
				return err
			}

			log.Info("layout written", logger.Fields{"path": opts.Output})
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.Output)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", defaultLayoutPath, "Layout file to create")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Layout name stored in the file")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing file")

	return cmd
}
