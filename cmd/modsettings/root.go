// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ManuGH/belt/internal/config"
	"github.com/ManuGH/belt/internal/log"
	"github.com/ManuGH/belt/internal/modsettings"
	"github.com/ManuGH/belt/internal/version"
	"github.com/spf13/cobra"
)

// errReported marks failures whose details were already printed.
var errReported = errors.New("failed")

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exactArgs is cobra.ExactArgs with usage classification.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// app carries state shared by every subcommand once the root's
// PersistentPreRunE has loaded the configuration.
type app struct {
	configPath string
	logLevel   string
	cfg        config.AppConfig
}

func (a *app) settingsOptions() []modsettings.Option {
	return []modsettings.Option{modsettings.WithTreeOptions(a.cfg.TreeOptions())}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.NewLoader(a.configPath, version.Version).Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := config.Validate(cfg); err != nil {
			return &usageError{err: err}
		}
	}
	a.cfg = cfg

	log.Configure(log.Config{
		Level:   cfg.LogLevel,
		Output:  cmd.ErrOrStderr(),
		Version: version.Version,
		Console: cfg.LogConsole,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(log.Base().WithContext(ctx))
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "modsettings",
		Short:         "Inspect and edit mod-settings.dat files",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config and "+config.EnvLogLevel+")")

	root.AddCommand(
		newDumpCmd(a),
		newGetCmd(a),
		newSetCmd(a),
		newUnsetCmd(a),
		newVerifyCmd(a),
		newWatchCmd(a),
		newSanitizeCmd(a),
		newBlueprintCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), version.String()+"\n")
			return err
		},
	}
}
