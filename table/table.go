// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"unicode/utf8"

	"github.com/cumulus13/make-colors/style"
)

const (
	// DefaultMaxWidth is the total line width a table is fitted into unless configured otherwise.
	DefaultMaxWidth = 80
	// DefaultPrecision is the number of decimals used for float and exponential cells.
	DefaultPrecision = 3
)

// Table accumulates columns and rows and renders them as text.
// A Table is not safe for concurrent use.
type Table struct {
	maxWidth    int
	precision   int
	title       string
	titleStyle  string
	headerStyle string
	styler      style.Styler
	deco        Decoration
	chars       Chars
	columns     []Column
	added       int // trailing columns created by AddColumn
	hasHeader   bool
	rows        [][]any
	rowStyles   []string
}

// Option configures a Table at construction.
type Option func(*Table)

// WithMaxWidth sets the maximum total line width. Zero or less disables the limit.
func WithMaxWidth(n int) Option {
	return func(t *Table) {
		if n < 0 {
			n = 0
		}

		t.maxWidth = n
	}
}

// WithTitle sets a title drawn centred above the table.
// The title may contain inline markup such as "[bold red]Report[/]".
func WithTitle(title string) Option {
	return func(t *Table) {
		t.title = title
	}
}

// WithTitleStyle sets the style descriptor applied to a title without markup.
func WithTitleStyle(descriptor string) Option {
	return func(t *Table) {
		t.titleStyle = descriptor
	}
}

// WithHeaderStyle sets the style descriptor applied to header cells without markup.
func WithHeaderStyle(descriptor string) Option {
	return func(t *Table) {
		t.headerStyle = descriptor
	}
}

// WithStyler replaces the default styler.
func WithStyler(s style.Styler) Option {
	return func(t *Table) {
		t.styler = s
	}
}

// New returns an empty table.
func New(opts ...Option) *Table {
	t := &Table{
		maxWidth:  DefaultMaxWidth,
		precision: DefaultPrecision,
		deco:      DefaultDecoration(),
		chars:     DefaultChars(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.styler == nil {
		t.styler = style.Default()
	}

	return t
}

// ColumnCount returns the established number of columns, zero if none yet.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Columns returns a copy of the column definitions.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// AddColumn appends a column together with its header.
// Columns cannot be added once rows exist.
func (t *Table) AddColumn(c Column) error {
	if len(t.rows) > 0 {
		return fmt.Errorf("%w: cannot add a column to a table with %d rows", ErrSizeMismatch, len(t.rows))
	}

	if c.Width < 0 {
		return fmt.Errorf("%w: column width %d", ErrInvalidValue, c.Width)
	}

	t.columns = append(t.columns, c)
	t.added++
	t.hasHeader = true

	return nil
}

// AddRow appends a row of cell values. The number of values must match
// the column count; the first array-shaped call establishes it.
func (t *Table) AddRow(values ...any) error {
	return t.addRow("", values)
}

// AddStyledRow appends a row drawn with the given style descriptor,
// which takes precedence over column styles.
func (t *Table) AddStyledRow(descriptor string, values ...any) error {
	return t.addRow(descriptor, values)
}

func (t *Table) addRow(descriptor string, values []any) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: row has no values", ErrSizeMismatch)
	}

	if err := t.checkSize(len(values), "row"); err != nil {
		return err
	}

	t.growColumns(len(values))
	t.rows = append(t.rows, append([]any(nil), values...))

	idx := len(t.rows) - 1
	switch {
	case idx < len(t.rowStyles):
		if descriptor != "" {
			t.rowStyles[idx] = descriptor
		}
	case descriptor != "":
		t.rowStyles = append(t.rowStyles, make([]string, idx-len(t.rowStyles))...)
		t.rowStyles = append(t.rowStyles, descriptor)
	}

	return nil
}

// SetHeader sets the header texts, one per column.
// An empty header on a table without columns is a no-op.
func (t *Table) SetHeader(headers []string) error {
	if len(headers) == 0 && len(t.columns) == 0 {
		return nil
	}

	if err := t.checkSize(len(headers), "header"); err != nil {
		return err
	}

	t.growColumns(len(headers))

	for i, h := range headers {
		t.columns[i].Header = h
	}

	t.hasHeader = true

	return nil
}

// SetColsAlign sets the horizontal alignment of every column.
func (t *Table) SetColsAlign(aligns []Align) error {
	if err := t.checkSize(len(aligns), "alignments"); err != nil {
		return err
	}

	t.growColumns(len(aligns))

	for i, a := range aligns {
		t.columns[i].Align = a
	}

	return nil
}

// SetColsVAlign sets the vertical alignment of every column.
func (t *Table) SetColsVAlign(aligns []VAlign) error {
	if err := t.checkSize(len(aligns), "vertical alignments"); err != nil {
		return err
	}

	t.growColumns(len(aligns))

	for i, a := range aligns {
		t.columns[i].VAlign = a
	}

	return nil
}

// SetColsDType sets how the values of every column are formatted.
func (t *Table) SetColsDType(dtypes []DType) error {
	if err := t.checkSize(len(dtypes), "dtypes"); err != nil {
		return err
	}

	t.growColumns(len(dtypes))

	for i, d := range dtypes {
		t.columns[i].DType = d
	}

	return nil
}

// SetColsWidth fixes the width of every column. Widths must be positive.
func (t *Table) SetColsWidth(widths []int) error {
	if err := t.checkSize(len(widths), "widths"); err != nil {
		return err
	}

	for _, w := range widths {
		if w <= 0 {
			return fmt.Errorf("%w: column width %d must be positive", ErrInvalidValue, w)
		}
	}

	t.growColumns(len(widths))

	for i, w := range widths {
		t.columns[i].Width = w
	}

	return nil
}

// SetColsStyle sets the style descriptor of every column. Empty entries leave a column unstyled.
func (t *Table) SetColsStyle(descriptors []string) error {
	if err := t.checkSize(len(descriptors), "styles"); err != nil {
		return err
	}

	t.growColumns(len(descriptors))

	for i, d := range descriptors {
		t.columns[i].Style = d
	}

	return nil
}

// SetRowsStyle sets the style descriptor of rows by position.
// Entries beyond the current rows apply to rows added later.
func (t *Table) SetRowsStyle(descriptors []string) {
	if len(descriptors) > len(t.rowStyles) {
		t.rowStyles = append(t.rowStyles, make([]string, len(descriptors)-len(t.rowStyles))...)
	}

	copy(t.rowStyles, descriptors)
}

// SetPrecision sets the number of decimals for float and exponential cells.
func (t *Table) SetPrecision(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: precision %d must not be negative", ErrInvalidValue, n)
	}

	t.precision = n

	return nil
}

// SetDecoration selects which lines are drawn.
func (t *Table) SetDecoration(d Decoration) {
	t.deco = d
}

// SetChars sets the horizontal, vertical, corner and header line characters.
// Exactly four non-empty strings are required; only the first rune of each is kept.
func (t *Table) SetChars(chars []string) error {
	if len(chars) != 4 {
		return fmt.Errorf("%w: expected 4 line characters, got %d", ErrSizeMismatch, len(chars))
	}

	first := make([]string, len(chars))

	for i, c := range chars {
		r, size := utf8.DecodeRuneInString(c)
		if size == 0 {
			return fmt.Errorf("%w: line character %d is empty", ErrInvalidValue, i)
		}

		first[i] = string(r)
	}

	t.chars = Chars{Horizontal: first[0], Vertical: first[1], Corner: first[2], Header: first[3]}

	return nil
}

// Reset removes all rows, row styles and header texts, and the columns
// created by AddColumn. Other columns keep their alignment, type, width
// and style.
func (t *Table) Reset() {
	t.rows = nil
	t.rowStyles = nil
	t.hasHeader = false
	t.columns = t.columns[:len(t.columns)-t.added]
	t.added = 0

	for i := range t.columns {
		t.columns[i].Header = ""
	}
}

func (t *Table) checkSize(n int, what string) error {
	if len(t.columns) == 0 || n == len(t.columns) {
		return nil
	}

	return fmt.Errorf("%w: %s has %d elements, table has %d columns", ErrSizeMismatch, what, n, len(t.columns))
}

func (t *Table) growColumns(n int) {
	if len(t.columns) == 0 && n > 0 {
		t.columns = make([]Column, n)
	}
}

func (t *Table) rowStyle(i int) string {
	if i < len(t.rowStyles) {
		return t.rowStyles[i]
	}

	return ""
}
