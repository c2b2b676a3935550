// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import (
	"strings"

	"github.com/cumulus13/make-colors/internal/color"
	"github.com/cumulus13/make-colors/internal/vtext"
	"github.com/cumulus13/make-colors/style"
)

// Draw renders the table. The result has no trailing newline.
// A table with neither header nor rows renders as the empty string.
// Draw does not modify the table and may be called repeatedly.
func (t *Table) Draw() string {
	if !t.hasHeader && len(t.rows) == 0 {
		return ""
	}

	cells := t.formatRows()
	widths := t.columnWidths(cells)

	var sb strings.Builder

	if t.title != "" {
		sb.WriteString(t.drawTitle(widths))
	}

	if t.deco.Border {
		sb.WriteString(t.hline(widths, false))
	}

	if t.hasHeader {
		sb.WriteString(t.drawLine(t.headers(), widths, true, ""))

		if t.deco.Header {
			sb.WriteString(t.hline(widths, true))
		}
	}

	for i, row := range cells {
		sb.WriteString(t.drawLine(row, widths, false, t.rowStyle(i)))

		if t.deco.HLines && i < len(cells)-1 {
			sb.WriteString(t.hline(widths, false))
		}
	}

	if t.deco.Border {
		sb.WriteString(t.hline(widths, false))
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Draw()
}

func (t *Table) headers() []string {
	h := make([]string, len(t.columns))
	for i, c := range t.columns {
		h[i] = c.Header
	}

	return h
}

func (t *Table) formatRows() [][]string {
	out := make([][]string, len(t.rows))

	for i, row := range t.rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = formatCell(v, t.columns[j].DType, t.precision)
		}
	}

	return out
}

// columnWidths returns the content width of every column. Fixed columns
// keep their width; when the table would exceed the max width the
// remaining budget is shared evenly between the other columns.
func (t *Table) columnWidths(cells [][]string) []int {
	n := len(t.columns)
	widths := make([]int, n)
	fixed, fixedSum, total := 0, 0, 0

	for i, c := range t.columns {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed++
			fixedSum += c.Width
			total += c.Width

			continue
		}

		if t.hasHeader {
			widths[i] = vtext.Width(c.Header)
		}

		for _, row := range cells {
			widths[i] = max(widths[i], vtext.Width(row[i]))
		}

		total += widths[i]
	}

	if t.maxWidth <= 0 || fixed == n || total+3*n+1 <= t.maxWidth {
		return widths
	}

	share := max((t.maxWidth-3*n-1-fixedSum)/(n-fixed), 1)

	for i, c := range t.columns {
		if c.Width == 0 {
			widths[i] = share
		}
	}

	return widths
}

func (t *Table) drawTitle(widths []int) string {
	total := 3*len(widths) + 1
	for _, w := range widths {
		total += w
	}

	title := t.title
	if vtext.HasMarkup(title) {
		title = vtext.RenderMarkup(t.styler, title)
	} else {
		title = style.Apply(t.styler, title, t.titleStyle)
	}

	pad := max((total-vtext.Width(t.title))/2, 0)

	return strings.Repeat(" ", pad) + title + "\n"
}

// hline draws a separator line, using the header character when header is set.
func (t *Table) hline(widths []int, header bool) string {
	h := t.chars.Horizontal
	if header {
		h = t.chars.Header
	}

	joint := h + h + h
	if t.deco.VLines {
		joint = h + t.chars.Corner + h
	}

	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(h, w)
	}

	body := strings.Join(parts, joint)

	if t.deco.Border {
		return t.chars.Corner + h + body + h + t.chars.Corner + "\n"
	}

	return body + "\n"
}

// cellLine is one drawn line of a cell with its visible width.
// Lines of cells written in markup also carry their styled segments.
type cellLine struct {
	text  string
	width int
	segs  []vtext.Segment
}

// cell is a wrapped cell.
type cell struct {
	lines  []cellLine
	markup bool
}

// splitCell wraps s to width. Each line of the source is wrapped on its
// own. Markup keeps its styling per wrapped line; escape sequences are
// stripped before wrapping and their SGR codes are reapplied to every
// wrapped line.
func splitCell(s string, width int) cell {
	c := cell{markup: vtext.HasMarkup(s)}

	if c.markup {
		for _, segs := range vtext.WrapMarkup(s, width) {
			var sb strings.Builder
			for _, seg := range segs {
				sb.WriteString(seg.Text)
			}

			c.lines = append(c.lines, cellLine{text: sb.String(), width: vtext.PlainWidth(sb.String()), segs: segs})
		}

		return c
	}

	for _, part := range strings.Split(s, "\n") {
		codes := ""
		if vtext.HasEscape(part) {
			codes = vtext.SGRCodes(part)
			part = vtext.StripEscapes(part)
		}

		wrapped := vtext.Wrap(part, width)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}

		for _, l := range wrapped {
			text := l
			if codes != "" && l != "" {
				text = codes + l + color.ResetSequence
			}

			c.lines = append(c.lines, cellLine{text: text, width: vtext.PlainWidth(l)})
		}
	}

	return c
}

// valignCells pads every cell to the height of the tallest one.
func (t *Table) valignCells(cells []cell, header bool) {
	height := 0
	for _, c := range cells {
		height = max(height, len(c.lines))
	}

	for i := range cells {
		missing := height - len(cells[i].lines)
		if missing == 0 {
			continue
		}

		valign := t.columns[i].VAlign
		if header {
			valign = VAlignTop
		}

		var before int

		switch valign {
		case VAlignMiddle:
			before = missing / 2
		case VAlignBottom:
			before = missing
		}

		lines := make([]cellLine, 0, height)
		lines = append(lines, make([]cellLine, before)...)
		lines = append(lines, cells[i].lines...)
		lines = append(lines, make([]cellLine, missing-before)...)
		cells[i].lines = lines
	}
}

// drawLine draws one header or data row, which may span several lines.
func (t *Table) drawLine(values []string, widths []int, header bool, rowStyle string) string {
	cells := make([]cell, len(values))
	for i, v := range values {
		cells[i] = splitCell(v, widths[i])
	}

	t.valignCells(cells, header)

	sep := "   "
	if t.deco.VLines {
		sep = " " + t.chars.Vertical + " "
	}

	var sb strings.Builder

	for l := range cells[0].lines {
		if t.deco.Border {
			sb.WriteString(t.chars.Vertical + " ")
		}

		for i, c := range cells {
			if i > 0 {
				sb.WriteString(sep)
			}

			line := c.lines[l]
			fill := max(widths[i]-line.width, 0)

			align := t.columns[i].Align
			if header {
				align = AlignCenter
			}

			var before int

			switch align {
			case AlignCenter:
				before = fill / 2
			case AlignRight:
				before = fill
			}

			sb.WriteString(strings.Repeat(" ", before))
			sb.WriteString(t.styleCell(line, i, c.markup, header, rowStyle))
			sb.WriteString(strings.Repeat(" ", fill-before))
		}

		if t.deco.Border {
			sb.WriteString(" " + t.chars.Vertical)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// styleCell applies, in order of precedence, the row style, the cell's
// markup and the column style. Header cells use their markup or the header
// style. Unstyled text inside a markup cell gets the column or header style.
func (t *Table) styleCell(line cellLine, col int, markup, header bool, rowStyle string) string {
	fallback := t.columns[col].Style
	if header {
		fallback = t.headerStyle
	}

	switch {
	case line.text == "":
		return line.text
	case !header && rowStyle != "":
		return style.Apply(t.styler, line.text, rowStyle)
	case markup:
		return t.renderSegments(line.segs, fallback)
	}

	return style.Apply(t.styler, line.text, fallback)
}

func (t *Table) renderSegments(segs []vtext.Segment, fallback string) string {
	var sb strings.Builder

	for _, seg := range segs {
		if seg.Style.IsZero() {
			sb.WriteString(style.Apply(t.styler, seg.Text, fallback))
			continue
		}

		sb.WriteString(style.ApplyDescriptor(t.styler, seg.Text, seg.Style))
	}

	return sb.String()
}
