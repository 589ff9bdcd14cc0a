// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package inject

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/ManuGH/belt/internal/log"
	"github.com/ManuGH/belt/internal/modsettings"
	"github.com/ManuGH/belt/internal/ptree"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SettingsPath returns the settings file inside modsDir.
func SettingsPath(modsDir string) string {
	return filepath.Join(modsDir, modsettings.FileName)
}

// Injector applies profiles to settings files. Calls for the same mods
// directory run one at a time; the game itself must not be running.
type Injector struct {
	opts  ptree.Options
	locks sync.Map // map[string]*sync.Mutex, keyed by absolute mods dir
}

// New returns an injector that decodes and encodes with opts.
func New(opts ptree.Options) *Injector {
	return &Injector{opts: opts}
}

func (i *Injector) lock(modsDir string) *sync.Mutex {
	key := modsDir
	if abs, err := filepath.Abs(modsDir); err == nil {
		key = abs
	}
	mu, _ := i.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Apply loads the settings file in modsDir, applies p and writes the file
// back. Nothing is written when loading or p fails.
func (i *Injector) Apply(ctx context.Context, modsDir string, p Profile) error {
	mu := i.lock(modsDir)
	mu.Lock()
	defer mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	ctx = log.ContextWithModsDir(ctx, modsDir)
	logger := log.WithComponentFromContext(ctx, "inject")
	path := SettingsPath(modsDir)

	s, err := modsettings.Load(path, modsettings.WithTreeOptions(i.opts))
	if err != nil {
		return fmt.Errorf("inject %s: %w", p.Name(), err)
	}
	if err := p.Apply(s); err != nil {
		return fmt.Errorf("inject %s: %w", p.Name(), err)
	}
	if err := s.Save(path); err != nil {
		return fmt.Errorf("inject %s: %w", p.Name(), err)
	}

	logger.Info().
		Str(log.FieldEvent, "inject.applied").
		Str(log.FieldProfile, p.Name()).
		Str(log.FieldPath, path).
		Int("startup_settings", s.Len(modsettings.Startup)).
		Msg("settings injected")
	return nil
}

// Job is one profile application. An empty ID is replaced by a random one
// for logging.
type Job struct {
	ID      string
	ModsDir string
	Profile Profile
}

// Batch applies jobs concurrently and returns the first error. Jobs sharing
// a mods directory are serialised; after the first failure, jobs not yet
// started are skipped.
func (i *Injector) Batch(ctx context.Context, jobs []Job) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		g.Go(func() error {
			id := job.ID
			if id == "" {
				id = uuid.NewString()
			}
			return i.Apply(log.ContextWithJobID(ctx, id), job.ModsDir, job.Profile)
		})
	}
	return g.Wait()
}
