// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

// Code represents an ANSI control code for text formatting.
type Code int

// ControlString generates a string with ANSI control codes for text formatting.
func ControlString(c ...Code) string {
	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range c {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)

	return sb.String()
}

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	// CliColorForce is the BSD-style variable that forces color output when truthy.
	CliColorForce = "CLICOLOR_FORCE"
	// ResetSequence ends any styling started by ControlString.
	ResetSequence = "\033[0m"
	prefix        = "\033["
	suffix        = "m"
)

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
	BlinkSlow
	BlinkRapid
	ReverseVideo
	Concealed
	CrossedOut
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Background text colors.
const (
	BgBlack Code = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

// Background Hi-Intensity text colors.
const (
	BgHiBlack Code = iota + 100
	BgHiRed
	BgHiGreen
	BgHiYellow
	BgHiBlue
	BgHiMagenta
	BgHiCyan
	BgHiWhite
)

// Mode is a user colour preference, typically taken from a --color flag.
type Mode string

// Colour preferences accepted by ParseMode.
const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ErrUnknownMode is returned by ParseMode for values other than auto, always and never.
var ErrUnknownMode = errors.New("unknown color mode")

var enabled bool

func init() {
	enabled = isColorCapable()
}

// Wrap returns str surrounded by the control string for colorCodes and a reset,
// regardless of whether color output is enabled.
func Wrap(str string, colorCodes ...Code) string {
	if len(colorCodes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(ResetSequence) + sbPadding)
	sb.WriteString(ControlString(colorCodes...))
	sb.WriteString(str)
	sb.WriteString(ResetSequence)

	return sb.String()
}

// Colorize returns a string with ANSI color codes applied.
// It appends the reset code at the end of the string to reset the color.
func Colorize(str string, colorCodes ...Code) string {
	// If color output is not enabled, return the string as is
	if !enabled {
		return str
	}

	return Wrap(str, colorCodes...)
}

// Enabled reports whether color output is enabled.
// It is initialized in package init() and may be overridden with SetEnabled.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides the detected color capability for the process.
func SetEnabled(v bool) {
	enabled = v
}

// ParseMode converts a flag value into a Mode. The empty string is ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Resolve reports whether color should be used for the given preference.
// ModeAuto defers to the detected capability.
func (m Mode) Resolve() bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return isColorCapable()
	}
}

func isColorCapable() bool {
	if isTruthy(os.Getenv(CliColorForce)) {
		return true
	}

	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return isTerminal(int(os.Stdout.Fd()))
}

// isTerminal is a variable so tests can pretend stdout is a terminal.
var isTerminal = term.IsTerminal

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
