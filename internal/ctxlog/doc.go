// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog logger in a context.
//
// The default logger writes to stderr through a pretty console handler.
// Its level comes from "<EXE>_LOG_LEVEL", derived from the executable name,
// or MAKECOLORS_LOG_LEVEL, and defaults to WARN.
package ctxlog
