// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package style

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var _ Styler = (*Lipgloss)(nil)

// Lipgloss renders descriptors through a lipgloss renderer pinned to the
// 16-color ANSI profile, so output does not depend on terminal probing.
type Lipgloss struct {
	r       *lipgloss.Renderer
	enabled bool
}

// NewLipgloss creates the primary styler. When disabled the renderer uses the
// Ascii profile and emits no escape sequences.
func NewLipgloss(enabled bool) *Lipgloss {
	r := lipgloss.NewRenderer(io.Discard)
	if enabled {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Lipgloss{r: r, enabled: enabled}
}

// Enabled implements Styler.
func (l *Lipgloss) Enabled() bool {
	return l.enabled
}

// Style converts d into a lipgloss style bound to this renderer.
// Tab conversion is disabled so the text keeps its measured width.
func (l *Lipgloss) Style(d Descriptor) lipgloss.Style {
	st := l.r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if d.Attrs.Has(Bold) {
		st = st.Bold(true)
	}

	if d.Attrs.Has(Italic) {
		st = st.Italic(true)
	}

	if d.Attrs.Has(Underline) {
		st = st.Underline(true)
	}

	if d.Attrs.Has(Reverse) {
		st = st.Reverse(true)
	}

	if d.Attrs.Has(Blink) {
		st = st.Blink(true)
	}

	if d.Attrs.Has(Dim) {
		st = st.Faint(true)
	}

	if d.Attrs.Has(Strike) {
		st = st.Strikethrough(true)
	}

	if d.Fg != NoColor {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(d.Fg.Index())))
	}

	if d.Bg != NoColor {
		st = st.Background(lipgloss.Color(strconv.Itoa(d.Bg.Index())))
	}

	return st
}

// Render implements Styler.
func (l *Lipgloss) Render(text string, d Descriptor) string {
	if !l.enabled || d.IsZero() {
		return text
	}

	return l.Style(d).Render(text)
}
