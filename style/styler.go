// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cumulus13/make-colors/internal/color"
)

// Styler decorates text for a parsed descriptor.
type Styler interface {
	// Render returns text wrapped in the escape sequences for d.
	Render(text string, d Descriptor) string
	// Enabled reports whether Render emits escape sequences at all.
	Enabled() bool
}

// Backend selects a Styler implementation.
type Backend int

// Available backends.
const (
	BackendLipgloss Backend = iota
	BackendANSI
)

// ErrUnknownBackend is returned by ParseBackend for names other than lipgloss and ansi.
var ErrUnknownBackend = errors.New("unknown style backend")

// ParseBackend converts a backend name into a Backend. The empty string is BackendLipgloss.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lipgloss":
		return BackendLipgloss, nil
	case "ansi":
		return BackendANSI, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// String returns the name ParseBackend accepts for b.
func (b Backend) String() string {
	if b == BackendANSI {
		return "ansi"
	}

	return "lipgloss"
}

// New returns the Styler for backend b.
func New(b Backend, enabled bool) Styler {
	if b == BackendANSI {
		return NewANSI(enabled)
	}

	return NewLipgloss(enabled)
}

// Default returns the lipgloss backend, enabled when the process supports color.
func Default() Styler {
	return NewLipgloss(color.Enabled())
}

// Apply parses descriptor and renders text with s.
// Empty text, an empty descriptor, a descriptor with no recognised tokens,
// a nil or disabled styler all return text unchanged.
func Apply(s Styler, text, descriptor string) string {
	if text == "" || strings.TrimSpace(descriptor) == "" {
		return text
	}

	d, _ := Parse(descriptor)

	return ApplyDescriptor(s, text, d)
}

// ApplyDescriptor renders text with an already parsed descriptor.
func ApplyDescriptor(s Styler, text string, d Descriptor) string {
	if text == "" || d.IsZero() || s == nil || !s.Enabled() {
		return text
	}

	return s.Render(text, d)
}
