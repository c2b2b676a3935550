// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vtext

import (
	"strings"
	"unicode/utf8"

	"github.com/cumulus13/make-colors/style"
)

// Segment is a run of visible text sharing one style.
type Segment struct {
	Text  string
	Style style.Descriptor
}

// ParseMarkup splits marked-up text into styled segments. Tags nest: an
// opening tag layers its descriptor over the enclosing one and any closing
// tag ends the innermost open tag. Escape sequences are kept in the text.
func ParseMarkup(s string) []Segment {
	var (
		segs  []Segment
		stack []style.Descriptor
	)

	current := func() style.Descriptor {
		if len(stack) == 0 {
			return style.Descriptor{}
		}

		return stack[len(stack)-1]
	}

	for _, sp := range Scan(s) {
		switch sp.Kind {
		case OpenTag:
			stack = append(stack, current().Merge(sp.Style))
		case CloseTag:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			d := current()
			if n := len(segs); n > 0 && segs[n-1].Style == d {
				segs[n-1].Text += sp.Text
				continue
			}

			segs = append(segs, Segment{Text: sp.Text, Style: d})
		}
	}

	return segs
}

// RenderMarkup replaces the markup tags in s with the styling s asks for.
// With a disabled styler the result is s with its tags removed.
func RenderMarkup(st style.Styler, s string) string {
	var sb strings.Builder

	for _, seg := range ParseMarkup(s) {
		sb.WriteString(style.ApplyDescriptor(st, seg.Text, seg.Style))
	}

	return sb.String()
}

// WrapMarkup wraps the visible text of marked-up s to width as Wrap does
// and returns every line as styled segments. Escape sequences are dropped.
// Each source line is wrapped on its own; one that wraps to nothing yields
// a single empty line.
func WrapMarkup(s string, width int) [][]Segment {
	var (
		lines  [][]Segment
		runes  []rune
		styles []style.Descriptor
	)

	flush := func() {
		lines = append(lines, wrapStyled(runes, styles, width)...)
		runes, styles = runes[:0], styles[:0]
	}

	for _, seg := range ParseMarkup(s) {
		for _, r := range StripEscapes(seg.Text) {
			if r == '\n' {
				flush()
				continue
			}

			runes = append(runes, r)
			styles = append(styles, seg.Style)
		}
	}

	flush()

	return lines
}

// wrapStyled wraps one source line and maps every wrapped line back onto
// the styles of the runes it was cut from.
func wrapStyled(runes []rune, styles []style.Descriptor, width int) [][]Segment {
	var (
		norm       strings.Builder
		normStyles []style.Descriptor
	)

	expand(runes, func(r rune, src int) {
		norm.WriteRune(r)
		normStyles = append(normStyles, styles[src])
	})

	wrapped := Wrap(string(runes), width)
	if len(wrapped) == 0 {
		return [][]Segment{nil}
	}

	text := norm.String()
	out := make([][]Segment, 0, len(wrapped))
	pos := 0

	for _, l := range wrapped {
		at := strings.Index(text[pos:], l)
		if at < 0 {
			break
		}

		at += pos
		start := utf8.RuneCountInString(text[:at])
		out = append(out, segments([]rune(l), normStyles[start:]))
		pos = at + len(l)
	}

	return out
}

// segments groups runes into segments of equal style. styles[i] is the style of runes[i].
func segments(runes []rune, styles []style.Descriptor) []Segment {
	var segs []Segment

	for i, r := range runes {
		if n := len(segs); n > 0 && segs[n-1].Style == styles[i] {
			segs[n-1].Text += string(r)
			continue
		}

		segs = append(segs, Segment{Text: string(r), Style: styles[i]})
	}

	return segs
}
