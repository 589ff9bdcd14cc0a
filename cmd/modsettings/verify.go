// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ManuGH/belt/internal/modsettings"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errRoundTripMismatch = errors.New("re-encoded bytes differ from file")

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check that files decode and re-encode byte for byte",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return verifyFiles(cmd.Context(), cmd.OutOrStdout(), args, a.settingsOptions())
		},
	}
}

// verifyFiles checks every path concurrently and reports one line per file
// in argument order.
func verifyFiles(ctx context.Context, out io.Writer, paths []string, opts []modsettings.Option) error {
	results := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = verifyFile(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, path := range paths {
		if results[i] != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", path, results[i])
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed: %w", failed, len(paths), errReported)
	}
	return nil
}

func verifyFile(path string, opts []modsettings.Option) error {
	// #nosec G304 -- paths are given on the command line
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return err
	}
	s, err := modsettings.Decode(data, opts...)
	if err != nil {
		return err
	}
	out, err := s.Encode()
	if err != nil {
		return err
	}
	if !bytes.Equal(out, data) {
		return fmt.Errorf("%w (at offset %d)", errRoundTripMismatch, firstDiff(out, data))
	}
	return nil
}

func firstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
