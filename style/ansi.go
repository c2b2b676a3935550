// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package style

import "github.com/cumulus13/make-colors/internal/color"

var _ Styler = (*ANSI)(nil)

// ANSI renders descriptors as raw SGR sequences without any third-party styling engine.
type ANSI struct {
	enabled bool
}

// NewANSI creates the fallback styler.
func NewANSI(enabled bool) *ANSI {
	return &ANSI{enabled: enabled}
}

// Enabled implements Styler.
func (a *ANSI) Enabled() bool {
	return a.enabled
}

// Render implements Styler. All codes go in one sequence and a reset follows the text.
func (a *ANSI) Render(text string, d Descriptor) string {
	if !a.enabled || d.IsZero() {
		return text
	}

	return color.Wrap(text, d.codes()...)
}
