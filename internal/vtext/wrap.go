// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vtext

import "strings"

type chunk struct {
	r     []rune
	space bool
}

// Wrap breaks plain text into lines no wider than width columns.
//
// Tabs are expanded and every whitespace character becomes a space before
// wrapping. Lines break at word boundaries; a word longer than width is
// split across lines. Whitespace at the start and end of each line is
// dropped, except leading whitespace of the first line. Text that is empty
// or only whitespace yields no lines. A width below 1 is treated as 1.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	chunks := split(normalize(text))

	var lines []string

	for i := 0; i < len(chunks); {
		if len(lines) > 0 && chunks[i].space {
			i++
			continue
		}

		var (
			cur    []chunk
			curLen int
		)

		for i < len(chunks) && curLen+len(chunks[i].r) <= width {
			cur = append(cur, chunks[i])
			curLen += len(chunks[i].r)
			i++
		}

		if i < len(chunks) && len(chunks[i].r) > width {
			if left := width - curLen; left > 0 {
				c := chunks[i]
				cur = append(cur, chunk{r: c.r[:left], space: c.space})
				chunks[i] = chunk{r: c.r[left:], space: c.space}
			}
		}

		if n := len(cur); n > 0 && cur[n-1].space {
			cur = cur[:n-1]
		}

		if len(cur) > 0 {
			var sb strings.Builder
			for _, c := range cur {
				sb.WriteString(string(c.r))
			}

			lines = append(lines, sb.String())
		}
	}

	return lines
}

// normalize expands tabs to the next multiple of eight and turns every
// whitespace character into a plain space.
func normalize(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	expand([]rune(s), func(r rune, _ int) {
		sb.WriteRune(r)
	})

	return sb.String()
}

// expand performs the normalisation of normalize, calling emit for every
// output rune with the index of the source rune it came from.
func expand(s []rune, emit func(r rune, src int)) {
	col := 0

	for i, r := range s {
		switch r {
		case '\t':
			next := (col/tabWidth + 1) * tabWidth
			for ; col < next; col++ {
				emit(' ', i)
			}
		case '\n', '\r':
			emit(' ', i)

			col = 0
		case '\v', '\f':
			emit(' ', i)

			col++
		default:
			emit(r, i)

			col++
		}
	}
}

// split cuts s into maximal runs of spaces and non-spaces.
func split(s string) []chunk {
	var out []chunk

	for _, r := range s {
		sp := r == ' '
		if n := len(out); n > 0 && out[n-1].space == sp {
			out[n-1].r = append(out[n-1].r, r)
			continue
		}

		out = append(out, chunk{r: []rune{r}, space: sp})
	}

	return out
}
