// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package vtext measures and reshapes text that may carry terminal escape
// sequences and inline style markup such as "[bold red]text[/]".
//
// Everything is built on Scan, which classifies a string into literal runs,
// escape sequences and markup tags. Escape sequences and tags have no
// visual width. A bracketed span only counts as a tag when its content is a
// complete style descriptor, or when it is a closing tag, so ordinary text
// such as "[1]" or "[OK]" is measured as written.
//
// Widths assume one column per code point, with tabs advancing to the next
// multiple of eight.
package vtext
