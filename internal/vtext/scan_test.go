// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vtext

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/cumulus13/make-colors/style"
)

func TestScan(t *testing.T) {
	in := "a\x1b[1;31m[bold]b[/]c\x1b[0m"
	spans := Scan(in)

	kinds := make([]Kind, 0, len(spans))
	texts := make([]string, 0, len(spans))

	for _, sp := range spans {
		kinds = append(kinds, sp.Kind)
		texts = append(texts, sp.Text)
	}

	assert.Equal(t, []Kind{Literal, Escape, OpenTag, Literal, CloseTag, Literal, Escape}, kinds)
	assert.Equal(t, in, strings.Join(texts, ""))
	assert.Equal(t, style.Descriptor{Attrs: style.Bold}, spans[2].Style)
}

func TestScanLiteralBrackets(t *testing.T) {
	for _, in := range []string{"[1]", "[OK]", "[]", "[ ", "a[b", "x]y", "[[red]"} {
		t.Run(in, func(t *testing.T) {
			for _, sp := range Scan(in) {
				if sp.Kind == OpenTag {
					assert.Equal(t, "[red]", sp.Text)
					continue
				}

				assert.Equal(t, Literal, sp.Kind)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "hello", 5},
		{"empty", "", 0},
		{"sgr", "\x1b[1;31mhello\x1b[0m", 5},
		{"markup", "[bold red]hello[/]", 5},
		{"markup with close name", "[cyan]hi[/cyan] there", 8},
		{"literal brackets", "[1] item", 8},
		{"closing tag without opening tag", "a[/]b", 5},
		{"path in brackets", "see [/usr]", 10},
		{"closing tag naming another style", "[red]x[/blue]", 8},
		{"nested closing by name", "[bold][red]x[/red]y[/bold]", 2},
		{"multi-line takes widest", "ab\nabcd\nabc", 4},
		{"tab stop", "a\tb", 9},
		{"tab at stop", "abcdefgh\tb", 17},
		{"two tabs", "\t\t", 16},
		{"code points not bytes", "✓ OK", 4},
		{"unterminated escape", "\x1b[31", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Width(tt.in))
		})
	}
}

func TestEscapesHaveNoWidth(t *testing.T) {
	st := style.NewANSI(true)

	for _, text := range []string{"x", "hello world", "a\tb", "multi\nline text"} {
		for _, desc := range []string{"red", "bold-green", "white on blue", "lr", "underline"} {
			styled := style.Apply(st, text, desc)
			assert.Equal(t, Width(text), Width(styled), "%q styled %q", text, desc)
			assert.Equal(t, ansi.Strip(styled), Strip(styled))
		}
	}
}

// A cell without an opening tag is measured as it is drawn.
func TestScanStrayClosingTags(t *testing.T) {
	for _, in := range []string{"see [/usr]", "a[/]b", "[/]", "x [/red] y"} {
		t.Run(in, func(t *testing.T) {
			assert.False(t, HasMarkup(in))
			assert.Equal(t, in, Strip(in))
			assert.Equal(t, PlainWidth(in), Width(in))
		})
	}
}

func TestStripEscapes(t *testing.T) {
	assert.Equal(t, "[red]x[/]", StripEscapes("\x1b[1m[red]x[/]\x1b[0m"))
}

func TestHasMarkupAndEscape(t *testing.T) {
	assert.True(t, HasMarkup("[bold]x[/]"))
	assert.False(t, HasMarkup("[1] x"))
	assert.False(t, HasMarkup("plain"))
	assert.True(t, HasEscape("\x1b[31mx\x1b[0m"))
	assert.False(t, HasEscape("x"))
	assert.False(t, HasEscape("\x1b"))
}

func TestSGRCodes(t *testing.T) {
	assert.Equal(t, "\x1b[1m\x1b[31m", SGRCodes("\x1b[1m\x1b[31mx\x1b[0m"))
	assert.Equal(t, "\x1b[32m", SGRCodes("\x1b[mA\x1b[32mB\x1b[00m"))
	assert.Equal(t, "", SGRCodes("\x1b[2Jx"))
}
