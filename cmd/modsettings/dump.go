// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"github.com/ManuGH/belt/internal/config"
	"github.com/ManuGH/belt/internal/modsettings"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print every setting of a settings file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.OutputFormat
			}
			if format != config.FormatYAML && format != config.FormatJSON {
				return usageErrorf("unsupported format %q (want yaml or json)", format)
			}
			s, err := modsettings.Load(args[0], a.settingsOptions()...)
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), format, settingsDocument(s))
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: yaml or json (default from config)")
	return cmd
}
