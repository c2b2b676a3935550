// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tabledef

import (
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ErrCellValue is returned for an HCL cell that is not a string, number, bool or null.
var ErrCellValue = errors.New("unsupported cell value")

func init() {
	Register(FormatHCL, decodeHCL)
}

type hclDefinition struct {
	Title       string      `hcl:"title,optional"`
	TitleStyle  string      `hcl:"title_style,optional"`
	HeaderStyle string      `hcl:"header_style,optional"`
	MaxWidth    *int        `hcl:"max_width,optional"`
	Precision   *int        `hcl:"precision,optional"`
	Chars       []string    `hcl:"chars,optional"`
	Decoration  *Decoration `hcl:"decoration,block"`
	Columns     []hclColumn `hcl:"column,block"`
	Rows        []hclRow    `hcl:"row,block"`
}

type hclColumn struct {
	Header string `hcl:"header,label"`
	Align  string `hcl:"align,optional"`
	VAlign string `hcl:"valign,optional"`
	DType  string `hcl:"dtype,optional"`
	Style  string `hcl:"style,optional"`
	Width  int    `hcl:"width,optional"`
}

type hclRow struct {
	Style string    `hcl:"style,optional"`
	Cells cty.Value `hcl:"cells"`
}

// evalContext offers a few string functions to expressions in definitions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"title":  stdlib.TitleFunc,
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
		},
	}
}

func decodeHCL(filename string, data []byte) (*Definition, error) {
	// hclsimple picks the syntax from the suffix.
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".hcl" && ext != ".json" {
		filename += ".hcl"
	}

	var src hclDefinition
	if err := hclsimple.Decode(filename, data, evalContext(), &src); err != nil {
		return nil, err
	}

	def := &Definition{
		Title:       src.Title,
		TitleStyle:  src.TitleStyle,
		HeaderStyle: src.HeaderStyle,
		MaxWidth:    src.MaxWidth,
		Precision:   src.Precision,
		Decoration:  src.Decoration,
		Chars:       src.Chars,
	}

	for _, c := range src.Columns {
		def.Columns = append(def.Columns, Column(c))
	}

	for i, r := range src.Rows {
		cells, err := ctyCells(r.Cells)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		def.Rows = append(def.Rows, Row{Style: r.Style, Cells: cells})
	}

	return def, nil
}

// ctyCells converts a list or tuple of scalars to cell values.
func ctyCells(v cty.Value) ([]any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, fmt.Errorf("%w: cells must be a known list", ErrCellValue)
	}

	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return nil, fmt.Errorf("%w: cells must be a list, got %s", ErrCellValue, ty.FriendlyName())
	}

	cells := make([]any, 0, v.LengthInt())

	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()

		c, err := ctyScalar(ev)
		if err != nil {
			return nil, err
		}

		cells = append(cells, c)
	}

	return cells, nil
}

// ctyScalar keeps whole numbers as int64 so they format as integers.
func ctyScalar(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	switch v.Type() {
	case cty.String:
		return v.AsString(), nil
	case cty.Bool:
		return v.True(), nil
	case cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}

		f, _ := bf.Float64()

		return f, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrCellValue, v.Type().FriendlyName())
}
