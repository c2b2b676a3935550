// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package palette implements the palette subcommand, a table of every color
// name with its abbreviation and samples.
package palette

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/cumulus13/make-colors/cmd/cmdstate"
	"github.com/cumulus13/make-colors/style"
	"github.com/cumulus13/make-colors/table"
)

const sample = "sample"

// New returns the palette command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "palette",
		Usage: "Show every color name, its abbreviation and a sample",
		Flags: []cli.Flag{
			cmdstate.ColorFlag(),
			cmdstate.BackendFlag(),
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	styler, err := cmdstate.ApplyColor(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	tbl, err := Table(styler)
	if err != nil {
		return cli.Exit("failed to build palette: "+err.Error(), 1)
	}

	if _, err := io.WriteString(cmd.Root().Writer, tbl.Draw()+"\n"); err != nil {
		return cli.Exit("failed to write palette: "+err.Error(), 1)
	}

	return nil
}

// Table returns the palette drawn with st. Samples are markup cells, so
// they are plain when st is disabled.
func Table(st style.Styler) (*table.Table, error) {
	tbl := table.New(
		table.WithStyler(st),
		table.WithTitle("Palette"),
		table.WithTitleStyle("bold"),
		table.WithHeaderStyle("bold"),
	)

	if err := tbl.SetHeader([]string{"Name", "Abbrev", "Foreground", "Background"}); err != nil {
		return nil, err
	}

	if err := tbl.SetColsAlign([]table.Align{table.AlignLeft, table.AlignLeft, table.AlignCenter, table.AlignCenter}); err != nil {
		return nil, err
	}

	tbl.SetDecoration(table.Decoration{Border: true, Header: true, VLines: true})

	for _, c := range style.Palette() {
		if err := tbl.AddRow(
			c.String(),
			c.Abbrev(),
			fmt.Sprintf("[%s]%s[/]", c, sample),
			fmt.Sprintf("[on %s]%s[/]", c, sample),
		); err != nil {
			return nil, err
		}
	}

	return tbl, nil
}
