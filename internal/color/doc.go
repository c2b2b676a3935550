// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color holds the ANSI SGR code table used by the fallback styling
// backend and by the console log handler, and decides whether colour output
// is enabled for the process.
//
// Enablement is resolved once in package init. In order of precedence:
// CLICOLOR_FORCE (truthy forces colour on), NO_COLOR (any value turns it
// off), FORCE_COLOR (any value turns it on), and finally whether stdout is a
// terminal as reported by golang.org/x/term. Commands can override the result
// with SetEnabled, for example from a --color flag.
package color
