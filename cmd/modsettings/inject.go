// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"github.com/ManuGH/belt/internal/blueprint"
	"github.com/ManuGH/belt/internal/fsutil"
	"github.com/ManuGH/belt/internal/inject"
	"github.com/ManuGH/belt/internal/log"
	"github.com/spf13/cobra"
)

// resolveModsDir picks the flag, then the configured directory, then the
// first default location that exists, and checks it holds a settings file.
func (a *app) resolveModsDir(flagValue string) (string, error) {
	dir := flagValue
	if dir == "" {
		dir = a.cfg.ModsDir
	}
	if dir == "" {
		found, err := fsutil.FindModsDir(fsutil.DefaultModsDirs())
		if err != nil {
			return "", usageErrorf("%v; pass --mods-dir explicitly", err)
		}
		dir = found
	}
	if _, err := fsutil.SettingsFile(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// injectJobs resolves every --mods-dir value into a job applying p. With no
// flag the single default directory is used.
func (a *app) injectJobs(flagValues []string, p inject.Profile) ([]inject.Job, error) {
	if len(flagValues) == 0 {
		flagValues = []string{""}
	}
	jobs := make([]inject.Job, 0, len(flagValues))
	for _, v := range flagValues {
		dir, err := a.resolveModsDir(v)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, inject.Job{ModsDir: dir, Profile: p})
	}
	return jobs, nil
}

func newSanitizeCmd(a *app) *cobra.Command {
	var (
		modsDirs []string
		p        inject.SanitizeProfile
		noAlign bool
	)
	cmd := &cobra.Command{
		Use:   "sanitize",
		Short: "Configure the sanitizer mod for a production check",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := p.Validate(); err != nil {
				return &usageError{err: err}
			}
			if !noAlign {
				if aligned := inject.AlignTicks(p.TargetTick); aligned != p.TargetTick {
					logger := log.WithComponent("cli")
					logger.Info().
						Str(log.FieldEvent, "sanitize.ticks_aligned").
						Int64("requested", p.TargetTick).
						Int64("aligned", aligned).
						Msg("adjusted tick count to a production statistics boundary")
					p.TargetTick = aligned
				}
			}
			jobs, err := a.injectJobs(modsDirs, p)
			if err != nil {
				return err
			}
			return inject.New(a.cfg.TreeOptions()).Batch(cmd.Context(), jobs)
		},
	}
	cmd.Flags().StringArrayVar(&modsDirs, "mods-dir", nil, "mods directory holding mod-settings.dat (repeatable)")
	cmd.Flags().Int64Var(&p.TargetTick, "ticks", 0, "tick at which production is checked (required)")
	cmd.Flags().StringVar(&p.Items, "items", "", "comma-separated items to report")
	cmd.Flags().StringVar(&p.Fluids, "fluids", "", "comma-separated fluids to report")
	cmd.Flags().BoolVar(&noAlign, "no-align", false, "use --ticks exactly as given")
	return cmd
}

func newBlueprintCmd(a *app) *cobra.Command {
	var (
		modsDirs []string
		file     string
		p        inject.BlueprintProfile
	)
	cmd := &cobra.Command{
		Use:   "blueprint",
		Short: "Configure the sanitizer mod to build a blueprint",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return usageErrorf("--file is required")
			}
			bp, sum, err := blueprint.ReadFile(file)
			if err != nil {
				return err
			}
			p.Blueprint = bp
			if err := p.Validate(); err != nil {
				return &usageError{err: err}
			}
			jobs, err := a.injectJobs(modsDirs, p)
			if err != nil {
				return err
			}
			logger := log.WithComponent("cli")
			logger.Info().
				Str(log.FieldEvent, "blueprint.loaded").
				Str(log.FieldPath, file).
				Str("kind", sum.Kind).
				Str("label", sum.Label).
				Int("entities", sum.Entities).
				Msg("blueprint read")
			return inject.New(a.cfg.TreeOptions()).Batch(cmd.Context(), jobs)
		},
	}
	cmd.Flags().StringArrayVar(&modsDirs, "mods-dir", nil, "mods directory holding mod-settings.dat (repeatable)")
	cmd.Flags().StringVar(&file, "file", "", "file holding the blueprint string (required)")
	cmd.Flags().Int64Var(&p.BufferTicks, "buffer-ticks", 0, "ticks to run before measuring")
	cmd.Flags().Int64Var(&p.Count, "count", 1, "number of copies to place")
	return cmd
}
