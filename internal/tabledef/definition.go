// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tabledef

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/cumulus13/make-colors/style"
	"github.com/cumulus13/make-colors/table"
)

var (
	// ErrInvalidDefinition is returned when a definition fails validation.
	ErrInvalidDefinition = errors.New("invalid table definition")
	// ErrEmptyDefinition is returned when a definition has neither columns nor rows.
	ErrEmptyDefinition = errors.New("definition has no columns and no rows")
	// ErrUnknownStyle is returned for a style descriptor with unrecognised words.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrRowSize is returned when a row does not have one cell per column.
	ErrRowSize = errors.New("row size does not match column count")
	// ErrBuild is returned when a valid definition cannot be turned into a table.
	ErrBuild = errors.New("failed to build table")
)

// Definition is a table described in a file.
type Definition struct {
	Title       string      `yaml:"title" toml:"title"`
	TitleStyle  string      `yaml:"title_style" toml:"title_style"`
	HeaderStyle string      `yaml:"header_style" toml:"header_style"`
	MaxWidth    *int        `yaml:"max_width" toml:"max_width"`
	Precision   *int        `yaml:"precision" toml:"precision"`
	Decoration  *Decoration `yaml:"decoration" toml:"decoration"`
	Chars       []string    `yaml:"chars" toml:"chars"`
	Columns     []Column    `yaml:"columns" toml:"columns"`
	Rows        []Row       `yaml:"rows" toml:"rows"`
}

// Decoration switches individual lines off. Unset fields keep the line.
type Decoration struct {
	Border *bool `yaml:"border" toml:"border" hcl:"border,optional"`
	Header *bool `yaml:"header" toml:"header" hcl:"header,optional"`
	HLines *bool `yaml:"hlines" toml:"hlines" hcl:"hlines,optional"`
	VLines *bool `yaml:"vlines" toml:"vlines" hcl:"vlines,optional"`
}

// Column is one column of a definition. Alignments and dtype use the
// names accepted by table.ParseAlign, table.ParseVAlign and table.ParseDType.
type Column struct {
	Header string `yaml:"header" toml:"header"`
	Align  string `yaml:"align" toml:"align"`
	VAlign string `yaml:"valign" toml:"valign"`
	DType  string `yaml:"dtype" toml:"dtype"`
	Style  string `yaml:"style" toml:"style"`
	Width  int    `yaml:"width" toml:"width"`
}

// Row is one data row with an optional style.
type Row struct {
	Style string `yaml:"style" toml:"style"`
	Cells []any  `yaml:"cells" toml:"cells"`
}

func (d *Decoration) resolve() table.Decoration {
	deco := table.DefaultDecoration()
	if d == nil {
		return deco
	}

	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	set(&deco.Border, d.Border)
	set(&deco.Header, d.Header)
	set(&deco.HLines, d.HLines)
	set(&deco.VLines, d.VLines)

	return deco
}

func checkStyle(field, descriptor string) error {
	if descriptor == "" || style.IsDescriptor(descriptor) {
		return nil
	}

	return fmt.Errorf("%w: %s %q", ErrUnknownStyle, field, descriptor)
}

// Validate reports every problem of the definition at once.
func (d *Definition) Validate() error {
	var err error

	if len(d.Columns) == 0 && len(d.Rows) == 0 {
		err = multierror.Append(err, ErrEmptyDefinition)
	}

	if d.MaxWidth != nil && *d.MaxWidth < 0 {
		err = multierror.Append(err, fmt.Errorf("%w: max_width %d", table.ErrInvalidValue, *d.MaxWidth))
	}

	if d.Precision != nil && *d.Precision < 0 {
		err = multierror.Append(err, fmt.Errorf("%w: precision %d", table.ErrInvalidValue, *d.Precision))
	}

	if len(d.Chars) > 0 {
		if cerr := table.New().SetChars(d.Chars); cerr != nil {
			err = multierror.Append(err, fmt.Errorf("chars: %w", cerr))
		}
	}

	for _, e := range []error{
		checkStyle("title_style", d.TitleStyle),
		checkStyle("header_style", d.HeaderStyle),
	} {
		if e != nil {
			err = multierror.Append(err, e)
		}
	}

	for i, c := range d.Columns {
		if e := c.validate(); e != nil {
			err = multierror.Append(err, fmt.Errorf("column %d: %w", i+1, e))
		}
	}

	want := len(d.Columns)

	for i, r := range d.Rows {
		if want == 0 {
			want = len(r.Cells)
		}

		if len(r.Cells) == 0 || len(r.Cells) != want {
			err = multierror.Append(err, fmt.Errorf("row %d: %w: %d cells, %d expected", i+1, ErrRowSize, len(r.Cells), want))
		}

		if e := checkStyle("style", r.Style); e != nil {
			err = multierror.Append(err, fmt.Errorf("row %d: %w", i+1, e))
		}
	}

	if err != nil {
		return errors.Join(ErrInvalidDefinition, err)
	}

	return nil
}

func (c Column) validate() error {
	var err error

	if _, e := table.ParseAlign(c.Align); e != nil {
		err = multierror.Append(err, e)
	}

	if _, e := table.ParseVAlign(c.VAlign); e != nil {
		err = multierror.Append(err, e)
	}

	if _, e := table.ParseDType(c.DType); e != nil {
		err = multierror.Append(err, e)
	}

	if c.Width < 0 {
		err = multierror.Append(err, fmt.Errorf("%w: width %d", table.ErrInvalidValue, c.Width))
	}

	if e := checkStyle("style", c.Style); e != nil {
		err = multierror.Append(err, e)
	}

	return err
}

// Build validates the definition and returns the table it describes.
// opts are applied after the definition's own settings, so they win.
func (d *Definition) Build(opts ...table.Option) (*table.Table, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	all := []table.Option{
		table.WithTitle(d.Title),
		table.WithTitleStyle(d.TitleStyle),
		table.WithHeaderStyle(d.HeaderStyle),
	}

	if d.MaxWidth != nil {
		all = append(all, table.WithMaxWidth(*d.MaxWidth))
	}

	t := table.New(append(all, opts...)...)
	t.SetDecoration(d.Decoration.resolve())

	if err := d.configure(t); err != nil {
		return nil, errors.Join(ErrBuild, err)
	}

	return t, nil
}

func (d *Definition) configure(t *table.Table) error {
	for _, c := range d.Columns {
		align, _ := table.ParseAlign(c.Align)
		valign, _ := table.ParseVAlign(c.VAlign)
		dtype, _ := table.ParseDType(c.DType)

		if err := t.AddColumn(table.Column{
			Header: c.Header,
			Style:  c.Style,
			Align:  align,
			VAlign: valign,
			DType:  dtype,
			Width:  c.Width,
		}); err != nil {
			return err
		}
	}

	if d.Precision != nil {
		if err := t.SetPrecision(*d.Precision); err != nil {
			return err
		}
	}

	if len(d.Chars) > 0 {
		if err := t.SetChars(d.Chars); err != nil {
			return err
		}
	}

	for i, r := range d.Rows {
		if err := t.AddStyledRow(r.Style, r.Cells...); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return nil
}
