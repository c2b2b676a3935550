// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the makecolors command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/cumulus13/make-colors/cmd"
	"github.com/cumulus13/make-colors/internal/ctxlog"
	"github.com/cumulus13/make-colors/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.FromEnv())
	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := cmd.NewRootCmd().Run(ctx, os.Args) // Err is handled by cli framework

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1) //nolint:gocritic
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Debug("command completed successfully")
}
