// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vtext

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"word boundary", "hello world", 5, []string{"hello", "world"}},
		{"greedy", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"hard break", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after short", "ab cdefghij", 5, []string{"ab cd", "efghi", "j"}},
		{"collapses edge whitespace", "a    b", 2, []string{"a", "b"}},
		{"keeps leading indent", "  ab", 4, []string{"  ab"}},
		{"empty", "", 5, nil},
		{"only spaces", "    ", 2, nil},
		{"tab expanded", "a\tb", 20, []string{"a       b"}},
		{"newline is whitespace", "a\nb", 5, []string{"a b"}},
		{"zero width treated as one", "ab", 0, []string{"a", "b"}},
		{"code points", "✓✓✓✓", 2, []string{"✓✓", "✓✓"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, tt.width))
		})
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcXYZ  \t-✓")

	for n := 0; n < 500; n++ {
		runes := make([]rune, rng.Intn(60))
		for i := range runes {
			runes[i] = alphabet[rng.Intn(len(alphabet))]
		}

		text := string(runes)
		width := 1 + rng.Intn(12)

		lines := Wrap(text, width)
		for _, l := range lines {
			assert.LessOrEqual(t, PlainWidth(l), width, "text %q width %d line %q", text, width, l)
		}

		wantWords := strings.Join(strings.Fields(normalize(text)), "")
		assert.Equal(t, wantWords, strings.Join(strings.Fields(strings.Join(lines, "")), ""),
			"wrapping must not lose or invent characters")
	}
}
