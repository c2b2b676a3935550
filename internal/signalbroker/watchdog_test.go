// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"syscall"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
)

// watch feeds sigs to Watch on a closed channel and records exit calls.
func watch(t *testing.T, sigs ...os.Signal) (context.Context, []int) {
	t.Helper()

	var codes []int

	stubs := gostub.Stub(&exit, func(code int) {
		codes = append(codes, code)
	})
	defer stubs.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	sigCh := make(chan os.Signal, len(sigs))
	for _, s := range sigs {
		sigCh <- s
	}

	close(sigCh)

	Watch(ctx, sigCh, cancel)

	return ctx, codes
}

func TestWatch_FirstSignalCancels(t *testing.T) {
	ctx, codes := watch(t, os.Interrupt)

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Empty(t, codes)
}

func TestWatch_SecondSignalExits(t *testing.T) {
	ctx, codes := watch(t, os.Interrupt, os.Interrupt)

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, []int{ForcedExitCode}, codes)
}

func TestWatch_DifferentSignalsDoNotExit(t *testing.T) {
	ctx, codes := watch(t, os.Interrupt, syscall.SIGTERM)

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Empty(t, codes)
}

func TestWatch_NoSignals(t *testing.T) {
	ctx, codes := watch(t)

	assert.NoError(t, ctx.Err())
	assert.Empty(t, codes)
}
