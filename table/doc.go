// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package table renders aligned, optionally colored text tables for the terminal.
//
// A Table is filled either column by column:
//
//	t := table.New(table.WithTitle("[bold cyan]Packages[/]"))
//	_ = t.AddColumn(table.Column{Header: "Name", Style: "bold"})
//	_ = t.AddColumn(table.Column{Header: "Status", Style: "green"})
//	_ = t.AddRow("numpy", "OK")
//	_ = t.AddStyledRow("bold yellow", "pandas", "Update")
//	fmt.Println(t.Draw())
//
// or with whole arrays (SetHeader, SetColsAlign, SetColsDType, SetColsWidth,
// SetColsStyle, SetRowsStyle). Every array must match the column count,
// which is fixed by the first array-shaped call.
//
// Cell text may contain escape sequences or inline markup; neither counts
// towards column widths. Draw never changes the table and may be called
// repeatedly.
package table
