// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package style turns style descriptors such as "bold red", "bold-red",
// "red-yellow", "white on blue" or the abbreviation "lr" into terminal
// escape sequences.
//
// Rendering goes through the Styler interface. Two implementations exist:
// Lipgloss, backed by github.com/charmbracelet/lipgloss, and ANSI, a
// dependency-free fallback built on the package's own SGR code table. Both
// produce the same visible result for the 16-color palette, and both return
// text unchanged when disabled.
package style
