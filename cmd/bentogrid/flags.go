package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bentogrid/internal/config"
	"github.com/alexisbeaulieu97/bentogrid/internal/expr"
	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	"github.com/alexisbeaulieu97/bentogrid/internal/logger"
)

// layoutOptions are the flags shared by every command that builds settings.
type layoutOptions struct {
	ConfigPath string
	Sets       []string
	Strict     bool
}

func (o *layoutOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to a layout file (defaults to the built-in grid)")
	cmd.Flags().StringArrayVar(&o.Sets, "set", nil, "Assignment expression applied after the layout, e.g. 'columns = 4; item[0].colSpan = 2'")
	cmd.Flags().BoolVar(&o.Strict, "strict", false, "Fail when an assignment is rejected instead of skipping it")
}

func validateLayoutPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("layout file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve layout path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("layout file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("layout path %s is a directory", abs)
	}

	return nil
}

// loadLayout reads the layout file at path into settings.
func loadLayout(path string) (grid.Settings, error) {
	if err := validateLayoutPath(path); err != nil {
		return grid.Settings{}, err
	}
	doc, err := config.ParseLayout(path)
	if err != nil {
		return grid.Settings{}, err
	}
	s, err := doc.Settings()
	if err != nil {
		return grid.Settings{}, fmt.Errorf("apply layout %s: %w", path, err)
	}
	return s, nil
}

// settings builds grid settings from the layout file, if any, and the --set
// expressions. Rejected expressions are logged and skipped unless Strict.
func (o *layoutOptions) settings(log *logger.Logger) (grid.Settings, error) {
	s := grid.Default()
	if o.ConfigPath != "" {
		loaded, err := loadLayout(o.ConfigPath)
		if err != nil {
			return grid.Settings{}, err
		}
		s = loaded
		log.Debug("layout loaded", logger.Fields{"path": o.ConfigPath})
	}

	next, errs := expr.ApplyAll(s, o.Sets)
	for _, err := range errs {
		if o.Strict {
			return grid.Settings{}, fmt.Errorf("apply --set: %w", err)
		}
		log.Rejected(err, strings.Join(o.Sets, "; "))
	}
	if len(o.Sets) > 0 {
		log.Debug("expressions applied", logger.Fields{"count": len(o.Sets), "rejected": len(errs)})
	}

	return next, nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
