package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bentogrid/internal/codegen"
	"github.com/alexisbeaulieu97/bentogrid/internal/logger"
)

type generateOptions struct {
	layoutOptions
	Format string
	Output string
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the markup for a layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root.logger(cmd), opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", string(codegen.FormatHTML), "Markup format: html or jsx")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write markup to a file instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, log *logger.Logger, opts generateOptions) error {
	format, err := codegen.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	s, err := opts.settings(log)
	if err != nil {
		return err
	}

	markup := codegen.GenerateWith(s, codegen.Options{Format: format})
	if err := writeOutput(cmd, opts.Output, []byte(markup+"\n")); err != nil {
		return err
	}

	log.Debug("markup generated", logger.Fields{"format": string(format), "items": s.ItemCount})
	return nil
}
