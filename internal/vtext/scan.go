// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vtext

import (
	"strings"

	"github.com/cumulus13/make-colors/style"
)

// Kind classifies a Span.
type Kind int

// Span kinds.
const (
	Literal Kind = iota
	Escape
	OpenTag
	CloseTag
)

const (
	esc      = '\x1b'
	tabWidth = 8
)

// Span is a run of text of a single kind. For OpenTag spans Style holds the
// parsed descriptor.
type Span struct {
	Kind  Kind
	Text  string
	Style style.Descriptor
}

// Scan splits s into spans. Concatenating the Text of every span yields s.
//
// A closing tag is only markup while an opening tag is pending: "[/]" ends
// the innermost one and "[/name]" does so when name describes it. Any other
// "[/...]" is literal text.
func Scan(s string) []Span {
	var (
		spans []Span
		open  []style.Descriptor
		lit   int // start of the pending literal run
	)

	flush := func(end int) {
		if end > lit {
			spans = append(spans, Span{Kind: Literal, Text: s[lit:end]})
		}
	}

	for i := 0; i < len(s); {
		switch s[i] {
		case esc:
			n := escapeLen(s[i:])
			if n == 0 {
				i++
				continue
			}

			flush(i)
			spans = append(spans, Span{Kind: Escape, Text: s[i : i+n]})
			i += n
			lit = i
		case '[':
			sp, n := tagAt(s[i:])
			if n == 0 || (sp.Kind == CloseTag && !closes(sp.Text, open)) {
				i++
				continue
			}

			if sp.Kind == OpenTag {
				open = append(open, sp.Style)
			} else {
				open = open[:len(open)-1]
			}

			flush(i)
			spans = append(spans, sp)
			i += n
			lit = i
		default:
			i++
		}
	}

	flush(len(s))

	return spans
}

// escapeLen returns the byte length of the escape sequence at the start of s,
// or 0 when s does not start with a complete one. CSI sequences are
// ESC '[' parameter bytes, intermediate bytes and a final byte; any other
// escape is ESC followed by a single byte in 0x40-0x5f.
func escapeLen(s string) int {
	if len(s) < 2 || s[0] != esc {
		return 0
	}

	if s[1] != '[' {
		if s[1] >= 0x40 && s[1] <= 0x5f {
			return 2
		}

		return 0
	}

	i := 2
	for i < len(s) && s[i] >= 0x30 && s[i] <= 0x3f {
		i++
	}

	for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2f {
		i++
	}

	if i < len(s) && s[i] >= 0x40 && s[i] <= 0x7e {
		return i + 1
	}

	return 0
}

// tagAt recognises a markup tag at the start of s.
func tagAt(s string) (Span, int) {
	end := strings.IndexByte(s, ']')
	if end < 1 {
		return Span{}, 0
	}

	content := s[1:end]
	if strings.ContainsAny(content, "[\n\x1b") {
		return Span{}, 0
	}

	if strings.HasPrefix(content, "/") {
		return Span{Kind: CloseTag, Text: s[:end+1]}, end + 1
	}

	d, ok := style.Parse(content)
	if !ok {
		return Span{}, 0
	}

	return Span{Kind: OpenTag, Text: s[:end+1], Style: d}, end + 1
}

// closes reports whether the closing tag text ends the innermost open tag.
func closes(text string, open []style.Descriptor) bool {
	if len(open) == 0 {
		return false
	}

	name := text[2 : len(text)-1]
	if name == "" {
		return true
	}

	d, ok := style.Parse(name)

	return ok && d == open[len(open)-1]
}

// Strip removes escape sequences and markup tags from s.
func Strip(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, sp := range Scan(s) {
		if sp.Kind == Literal {
			sb.WriteString(sp.Text)
		}
	}

	return sb.String()
}

// StripEscapes removes escape sequences from s and leaves markup tags in place.
func StripEscapes(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, sp := range Scan(s) {
		if sp.Kind != Escape {
			sb.WriteString(sp.Text)
		}
	}

	return sb.String()
}

// HasEscape reports whether s contains an escape sequence.
func HasEscape(s string) bool {
	if strings.IndexByte(s, esc) < 0 {
		return false
	}

	for _, sp := range Scan(s) {
		if sp.Kind == Escape {
			return true
		}
	}

	return false
}

// HasMarkup reports whether s contains at least one opening markup tag.
func HasMarkup(s string) bool {
	if strings.IndexByte(s, '[') < 0 {
		return false
	}

	for _, sp := range Scan(s) {
		if sp.Kind == OpenTag {
			return true
		}
	}

	return false
}

// SGRCodes returns the SGR escape sequences ("ESC [ ... m") in s, in order
// and concatenated, leaving out resets.
func SGRCodes(s string) string {
	var sb strings.Builder

	for _, sp := range Scan(s) {
		if sp.Kind != Escape || len(sp.Text) < 3 || sp.Text[1] != '[' || sp.Text[len(sp.Text)-1] != 'm' {
			continue
		}

		if strings.Trim(sp.Text[2:len(sp.Text)-1], "0") == "" {
			continue
		}

		sb.WriteString(sp.Text)
	}

	return sb.String()
}

// Width returns the visual width of s: escape sequences and markup tags are
// ignored, tabs advance to the next multiple of eight and for multi-line
// text the widest line wins.
func Width(s string) int {
	return PlainWidth(Strip(s))
}

// PlainWidth measures s without looking for escapes or tags.
func PlainWidth(s string) int {
	maxWidth, col := 0, 0

	for _, r := range s {
		switch r {
		case '\n':
			maxWidth = max(maxWidth, col)
			col = 0
		case '\t':
			col = (col/tabWidth + 1) * tabWidth
		default:
			col++
		}
	}

	return max(maxWidth, col)
}
