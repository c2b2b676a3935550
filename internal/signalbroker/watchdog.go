// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/cumulus13/make-colors/internal/ctxlog"
)

// ForcedExitCode is the exit status after a repeated signal.
const ForcedExitCode = 130

// exit is replaced in tests.
var exit = os.Exit

// Watch monitors the signal channel until it is closed.
// The first signal of a type cancels the context, the second of the same type exits.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
			exit(ForcedExitCode)

			return
		}

		ctxlog.Debug(ctx, "watchdog", "detail", "received first signal of type, cancelling", "signal", sig.String())

		seen[sig] = struct{}{}

		cancel()
	}
}
