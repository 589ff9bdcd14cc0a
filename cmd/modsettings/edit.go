// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	"github.com/ManuGH/belt/internal/log"
	"github.com/ManuGH/belt/internal/modsettings"
	"github.com/ManuGH/belt/internal/validate"
	"github.com/spf13/cobra"
)

// parseTarget validates the SCOPE and KEY arguments.
func parseTarget(scopeArg, key string) (modsettings.Scope, error) {
	v := validate.New()
	v.NotEmpty("key", key)
	scope, err := modsettings.ParseScope(scopeArg)
	if err != nil {
		v.AddError("scope", err.Error(), scopeArg)
	}
	if err := v.Err(); err != nil {
		return 0, &usageError{err: err}
	}
	return scope, nil
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE SCOPE KEY",
		Short: "Print one setting value",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseTarget(args[1], args[2])
			if err != nil {
				return err
			}
			s, err := modsettings.Load(args[0], a.settingsOptions()...)
			if err != nil {
				return err
			}
			v, ok := s.Get(scope, args[2])
			if !ok {
				return fmt.Errorf("%s: no setting %q", scope, args[2])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatValue(v))
			return err
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "set FILE SCOPE KEY VALUE",
		Short: "Set one setting and save the file",
		Long: `Set one setting and save the file.

Colours are given as r,g,b or r,g,b,a with channels in 0..1.`,
		Args: exactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseTarget(args[1], args[2])
			if err != nil {
				return err
			}
			kind, err := modsettings.ParseKind(kindName)
			if err != nil {
				return &usageError{err: err}
			}
			v, err := modsettings.ParseValue(kind, args[3])
			if err != nil {
				return &usageError{err: err}
			}
			var (
				prev     modsettings.Value
				replaced bool
			)
			err = editFile(a, args[0], func(s *modsettings.Settings) {
				prev, replaced = s.Set(scope, args[2], v)
			})
			if err != nil {
				return err
			}
			logger := log.WithComponent("cli")
			ev := logger.Info().
				Str(log.FieldEvent, "settings.set").
				Str(log.FieldScope, scope.Key()).
				Str(log.FieldKey, args[2]).
				Str(log.FieldKind, kind.String())
			if replaced {
				ev = ev.Str("previous", formatValue(prev))
			}
			ev.Msg("setting updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&kindName, "type", "string", "value type: string, number, int, bool or color")
	return cmd
}

func newUnsetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset FILE SCOPE KEY",
		Short: "Remove one setting and save the file",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseTarget(args[1], args[2])
			if err != nil {
				return err
			}
			var removed bool
			err = editFile(a, args[0], func(s *modsettings.Settings) {
				_, removed = s.Set(scope, args[2], nil)
			})
			if err != nil {
				return err
			}
			logger := log.WithComponent("cli")
			logger.Info().
				Str(log.FieldEvent, "settings.unset").
				Str(log.FieldScope, scope.Key()).
				Str(log.FieldKey, args[2]).
				Bool("removed", removed).
				Msg("setting removed")
			return nil
		},
	}
}

func editFile(a *app, path string, edit func(*modsettings.Settings)) error {
	s, err := modsettings.Load(path, a.settingsOptions()...)
	if err != nil {
		return err
	}
	edit(s)
	return s.Save(path)
}
