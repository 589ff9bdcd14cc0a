// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ManuGH/belt/internal/log"
	"github.com/ManuGH/belt/internal/modsettings"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Decode FILE again every time it is rewritten",
		Long: `Decode FILE again every time it is rewritten and log a summary.

Runs until interrupted.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Derive(func(c *zerolog.Context) {
				*c = c.Str(log.FieldComponent, "watch").Str(log.FieldPath, args[0])
			})
			w, err := newSettingsWatcher(args[0], a.settingsOptions())
			if err != nil {
				return err
			}
			report(logger, w.load())
			return w.run(cmd.Context(), func(r loadResult) {
				report(logger, r)
			})
		},
	}
}

type loadResult struct {
	settings *modsettings.Settings
	err      error
}

func report(logger zerolog.Logger, r loadResult) {
	if r.err != nil {
		logger.Warn().Err(r.err).
			Str(log.FieldEvent, "watch.decode_failed").
			Msg("settings file does not decode")
		return
	}
	ev := logger.Info().
		Str(log.FieldEvent, "watch.loaded").
		Str(log.FieldVersion, r.settings.Version().String())
	for _, scope := range modsettings.Scopes {
		ev = ev.Int(scope.Key(), r.settings.Len(scope))
	}
	ev.Msg("settings file loaded")
}

// settingsWatcher watches the directory holding the settings file so
// atomic replacement by rename is seen as well as in-place writes.
type settingsWatcher struct {
	path    string
	opts    []modsettings.Option
	watcher *fsnotify.Watcher
}

func newSettingsWatcher(path string, opts []modsettings.Option) (*settingsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &settingsWatcher{path: abs, opts: opts, watcher: fw}, nil
}

func (w *settingsWatcher) load() loadResult {
	s, err := modsettings.Load(w.path, w.opts...)
	return loadResult{settings: s, err: err}
}

// run delivers a loadResult for every write or replacement of the file
// until ctx is done. The watcher is closed on return.
func (w *settingsWatcher) run(ctx context.Context, onChange func(loadResult)) error {
	defer func() { _ = w.watcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			onChange(w.load())
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}
