// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package style

import (
	"strings"

	"github.com/cumulus13/make-colors/internal/color"
)

// Color is one of the 16 basic terminal colors, or NoColor.
type Color int

// The 16-color palette. Light variants follow the base colors in the same order.
const (
	NoColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	LightBlack
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	LightWhite
)

var colorNames = [...]string{
	"", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"lightblack", "lightred", "lightgreen", "lightyellow", "lightblue", "lightmagenta", "lightcyan", "lightwhite",
}

var colorAbbrevs = [...]string{
	"", "b", "r", "g", "y", "bl", "m", "c", "w",
	"lk", "lr", "lg", "ly", "lb", "lm", "lc", "lw",
}

// String returns the descriptor name of the color.
func (c Color) String() string {
	if c < NoColor || c > LightWhite {
		return ""
	}

	return colorNames[c]
}

// Abbrev returns the short descriptor form of the color, e.g. "lr" for LightRed.
func (c Color) Abbrev() string {
	if c < NoColor || c > LightWhite {
		return ""
	}

	return colorAbbrevs[c]
}

// Light reports whether c is one of the high-intensity colors.
func (c Color) Light() bool {
	return c >= LightBlack && c <= LightWhite
}

// Index returns the 0-15 terminal palette index, or -1 for NoColor.
func (c Color) Index() int {
	if c <= NoColor || c > LightWhite {
		return -1
	}

	return int(c) - 1
}

func (c Color) fgCode() color.Code {
	if c.Light() {
		return color.FgHiBlack + color.Code(c-LightBlack)
	}

	return color.FgBlack + color.Code(c-Black)
}

func (c Color) bgCode() color.Code {
	if c.Light() {
		return color.BgHiBlack + color.Code(c-LightBlack)
	}

	return color.BgBlack + color.Code(c-Black)
}

func (c Color) lighten() Color {
	if c >= Black && c <= White {
		return c + (LightBlack - Black)
	}

	return c
}

// Palette returns every color in palette order.
func Palette() []Color {
	out := make([]Color, 0, LightWhite)
	for c := Black; c <= LightWhite; c++ {
		out = append(out, c)
	}

	return out
}

// Attr is a set of text attributes.
type Attr uint8

// Text attributes.
const (
	Bold Attr = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Reverse
	Strike
)

// Has reports whether every attribute in o is set in a.
func (a Attr) Has(o Attr) bool {
	return a&o == o
}

var attrNames = map[string]Attr{
	"bold":          Bold,
	"dim":           Dim,
	"faint":         Dim,
	"italic":        Italic,
	"underline":     Underline,
	"blink":         Blink,
	"reverse":       Reverse,
	"strike":        Strike,
	"strikethrough": Strike,
}

var colorTokens = func() map[string]Color {
	m := make(map[string]Color, 2*len(colorNames)+4)
	for c := Black; c <= LightWhite; c++ {
		m[colorNames[c]] = c
		m[colorAbbrevs[c]] = c
	}

	m["bk"] = Black
	m["gray"] = LightBlack
	m["grey"] = LightBlack

	return m
}()

// Descriptor is a parsed style: foreground, background and attributes.
type Descriptor struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// IsZero reports whether the descriptor carries no styling.
func (d Descriptor) IsZero() bool {
	return d.Fg == NoColor && d.Bg == NoColor && d.Attrs == 0
}

// Merge layers o over d: colors set in o replace those of d, attributes accumulate.
func (d Descriptor) Merge(o Descriptor) Descriptor {
	if o.Fg != NoColor {
		d.Fg = o.Fg
	}

	if o.Bg != NoColor {
		d.Bg = o.Bg
	}

	d.Attrs |= o.Attrs

	return d
}

// codes returns the SGR codes for d: attributes, then foreground, then background.
func (d Descriptor) codes() []color.Code {
	codes := make([]color.Code, 0, 9) //nolint:mnd

	for _, ac := range []struct {
		a Attr
		c color.Code
	}{
		{Bold, color.Bold},
		{Italic, color.Italic},
		{Underline, color.Underline},
		{Reverse, color.ReverseVideo},
		{Blink, color.BlinkSlow},
		{Dim, color.Faint},
		{Strike, color.CrossedOut},
	} {
		if d.Attrs.Has(ac.a) {
			codes = append(codes, ac.c)
		}
	}

	if d.Fg != NoColor {
		codes = append(codes, d.Fg.fgCode())
	}

	if d.Bg != NoColor {
		codes = append(codes, d.Bg.bgCode())
	}

	return codes
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '-', '_', ',':
		return true
	default:
		return false
	}
}

// Parse reads a descriptor string. The first color is the foreground and the
// second the background, unless the keyword "on" marks the next color as the
// background. "light" or "bright" before a color selects its light variant.
//
// Unknown tokens are skipped. The boolean result reports whether the
// descriptor had at least one token and every token was recognised.
func Parse(s string) (Descriptor, bool) {
	var (
		d         Descriptor
		known     = true
		bgNext    bool
		lightNext bool
	)

	tokens := strings.FieldsFunc(strings.ToLower(s), isSeparator)
	for _, tok := range tokens {
		if a, ok := attrNames[tok]; ok {
			d.Attrs |= a
			continue
		}

		switch tok {
		case "on":
			bgNext = true
			continue
		case "light", "bright":
			lightNext = true
			continue
		}

		c, ok := colorTokens[tok]
		if !ok {
			known = false
			continue
		}

		if lightNext {
			c = c.lighten()
			lightNext = false
		}

		switch {
		case bgNext:
			d.Bg = c
			bgNext = false
		case d.Fg == NoColor:
			d.Fg = c
		case d.Bg == NoColor:
			d.Bg = c
		}
	}

	return d, known && len(tokens) > 0
}

// IsDescriptor reports whether s parses completely as a descriptor.
func IsDescriptor(s string) bool {
	_, ok := Parse(s)
	return ok
}
