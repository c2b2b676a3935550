// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"strings"
)

// Align is the horizontal alignment of a column.
type Align int

// Horizontal alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical alignment of a column within a multi-line row.
type VAlign int

// Vertical alignments.
const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

// DType controls how cell values of a column are formatted.
type DType int

// Column data types.
const (
	DTypeAuto DType = iota
	DTypeText
	DTypeFloat
	DTypeExponential
	DTypeInteger
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

func (v VAlign) String() string {
	switch v {
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

func (d DType) String() string {
	switch d {
	case DTypeText:
		return "text"
	case DTypeFloat:
		return "float"
	case DTypeExponential:
		return "exponential"
	case DTypeInteger:
		return "integer"
	default:
		return "auto"
	}
}

// ParseAlign accepts "l", "c", "r" or their long forms. Empty means left.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "l", "left":
		return AlignLeft, nil
	case "c", "center", "centre":
		return AlignCenter, nil
	case "r", "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("%w: alignment %q", ErrInvalidValue, s)
	}
}

// ParseVAlign accepts "t", "m", "b" or their long forms. Empty means top.
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "t", "top":
		return VAlignTop, nil
	case "m", "middle":
		return VAlignMiddle, nil
	case "b", "bottom":
		return VAlignBottom, nil
	default:
		return VAlignTop, fmt.Errorf("%w: vertical alignment %q", ErrInvalidValue, s)
	}
}

// ParseDType accepts "a", "t", "f", "e", "i" or their long forms. Empty means auto.
func ParseDType(s string) (DType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a", "auto":
		return DTypeAuto, nil
	case "t", "text":
		return DTypeText, nil
	case "f", "float":
		return DTypeFloat, nil
	case "e", "exp", "exponential":
		return DTypeExponential, nil
	case "i", "int", "integer":
		return DTypeInteger, nil
	default:
		return DTypeAuto, fmt.Errorf("%w: dtype %q", ErrInvalidValue, s)
	}
}

// Column describes one table column. A zero Width means the width is
// computed from the content.
type Column struct {
	Header string
	Style  string
	Align  Align
	VAlign VAlign
	DType  DType
	Width  int
}

// Decoration selects which lines are drawn.
type Decoration struct {
	Border bool // outer border
	Header bool // line under the header
	HLines bool // lines between rows
	VLines bool // lines between columns
}

// DefaultDecoration enables every line.
func DefaultDecoration() Decoration {
	return Decoration{Border: true, Header: true, HLines: true, VLines: true}
}

// Chars are the line-drawing characters.
type Chars struct {
	Horizontal string
	Vertical   string
	Corner     string
	Header     string
}

// DefaultChars returns "-", "|", "+" and "=".
func DefaultChars() Chars {
	return Chars{Horizontal: "-", Vertical: "|", Corner: "+", Header: "="}
}
