package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bentogrid/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bentogrid",
		Short:         "bentogrid designs bento grid layouts and generates their markup",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger. Logs always go to the command's error
// stream so markup written to stdout can be piped.
func (f *rootFlags) logger(cmd *cobra.Command) *logger.Logger {
	log, err := logger.New(logger.Options{
		Level:         logger.LevelFor(f.verbose),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return logger.Nop()
	}
	return log.Component(cmd.Name())
}
