package main

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bentogrid/internal/logger"
	"github.com/alexisbeaulieu97/bentogrid/internal/render"
)

type previewOptions struct {
	layoutOptions
	Output  string
	Format  string
	Track   float64
	Padding float64
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	defaults := render.DefaultOptions()
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw a layout as an SVG or PDF image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root.logger(cmd), opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Image file to write")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Image format: svg or pdf (defaults to the output extension)")
	cmd.Flags().Float64Var(&opts.Track, "track", defaults.Track, "Track size in millimetres")
	cmd.Flags().Float64Var(&opts.Padding, "padding", defaults.Padding, "Padding around the grid in millimetres")
	cmd.MarkFlagRequired("output") //nolint:errcheck

	return cmd
}

func runPreview(cmd *cobra.Command, log *logger.Logger, opts previewOptions) error {
	name := opts.Format
	if name == "" {
		name = filepath.Ext(opts.Output)
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return err
	}

	s, err := opts.settings(log)
	if err != nil {
		return err
	}

	renderOpts := render.DefaultOptions()
	renderOpts.Format = format
	renderOpts.Track = opts.Track
	renderOpts.Padding = opts.Padding

	var buf bytes.Buffer
	if err := render.Write(&buf, s, renderOpts); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	if err := writeOutput(cmd, opts.Output, buf.Bytes()); err != nil {
		return err
	}

	log.Info("preview written", logger.Fields{"path": opts.Output, "format": string(format)})
	return nil
}
