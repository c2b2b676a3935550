// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker provides a way to listen for OS signals and handle them gracefully.
// By default it listens for os.Interrupt, syscall.SIGTERM and syscall.SIGQUIT.
//
// Watch cancels a context on the first signal of a type, so the pager can
// restore the terminal and the prompt can close, and exits the process on
// the second.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cumulus13/make-colors/internal/ctxlog"
)

var termSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// New creates a new signal broker that listens for OS signals that should terminate the process.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop stops delivery to ch and closes it, which ends Watch.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
	close(ch)
}
