// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// modsettings inspects and edits mod-settings.dat files.
//
// Usage:
//
//	modsettings dump mod-settings.dat --format json
//	modsettings set mod-settings.dat startup my-setting 42 --type int
//	modsettings verify mods/*/mod-settings.dat
//	modsettings sanitize --mods-dir ~/.factorio/mods --ticks 3600
//
// Exit codes:
//   - 0: success
//   - 1: the operation failed (decode error, mismatch, missing key)
//   - 2: usage error (bad arguments or flags)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}
