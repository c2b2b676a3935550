// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pager shows rendered output that is taller than the terminal in
// a scrollable full-screen view with a status line.
package pager
