// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package makecolors provides the version and commit information for the makecolors application.
package makecolors

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// VersionString returns the version and commit in one line.
func VersionString() string {
	return Version + " (commit: " + Commit + ")"
}
