// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tablecmd implements the table subcommand, which draws a table
// definition file.
package tablecmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/cumulus13/make-colors/cmd/cmdstate"
	"github.com/cumulus13/make-colors/internal/ctxlog"
	"github.com/cumulus13/make-colors/internal/pager"
	"github.com/cumulus13/make-colors/internal/tabledef"
	"github.com/cumulus13/make-colors/table"
)

const (
	fileArg        = "file"
	formatFlag     = "format"
	maxWidthFlag   = "max-width"
	pagerFlag      = "pager"
	maxWidthEnvVar = "MAKECOLORS_MAX_WIDTH"
)

// ErrNegativeWidth is returned for a negative --max-width.
var ErrNegativeWidth = errors.New("max width must not be negative")

// Replaced in tests.
var (
	terminalHeight = pager.TerminalHeight
	runPager       = pager.Run
)

// New returns the table command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "Draw a table described in a YAML, TOML or HCL file",
		Description: `Load a table definition and print the drawn table.

The format is taken from the file extension (.yaml, .yml, .json, .toml, .hcl)
unless --format is given. With --pager, a table taller than the terminal is
shown in a scrollable view instead of being printed.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      fileArg,
				UsageText: "FILE",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     formatFlag,
				Aliases:  []string{"f"},
				Usage:    "Definition format: yaml, toml or hcl",
				OnlyOnce: true,
				Validator: func(s string) error {
					_, err := tabledef.ParseFormat(s)
					return err
				},
			},
			&cli.IntFlag{
				Name:     maxWidthFlag,
				Aliases:  []string{"w"},
				Usage:    "Maximum table width, 0 for unlimited. Overrides the definition",
				Value:    table.DefaultMaxWidth,
				Sources:  cli.EnvVars(maxWidthEnvVar),
				OnlyOnce: true,
				Validator: func(n int) error {
					if n < 0 {
						return fmt.Errorf("%w: %d", ErrNegativeWidth, n)
					}

					return nil
				},
			},
			cmdstate.ColorFlag(),
			cmdstate.BackendFlag(),
			&cli.BoolFlag{
				Name:        pagerFlag,
				Aliases:     []string{"p"},
				Usage:       "Page tables taller than the terminal",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	path := cmd.StringArg(fileArg)
	if path == "" {
		return cli.Exit("Please provide a table definition file", 1)
	}

	styler, err := cmdstate.ApplyColor(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var format tabledef.Format

	if cmd.IsSet(formatFlag) {
		if format, err = tabledef.ParseFormat(cmd.String(formatFlag)); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	opts := []table.Option{table.WithStyler(styler)}

	// The flag default must not override a max_width from the definition.
	if cmd.IsSet(maxWidthFlag) {
		opts = append(opts, table.WithMaxWidth(cmd.Int(maxWidthFlag)))
	}

	tbl, err := tabledef.LoadTable(ctx, path, format, opts...)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load table from %s: %s", path, err.Error()), 1)
	}

	out := tbl.Draw()
	logger.Debug("table drawn", "path", path, "rows", tbl.RowCount(), "columns", tbl.ColumnCount())

	if cmd.Bool(pagerFlag) {
		if height, ok := terminalHeight(); ok && !pager.Fits(out, height) {
			if err := runPager(ctx, filepath.Base(path), out); err != nil {
				return cli.Exit("pager failed: "+err.Error(), 1)
			}

			return nil
		}

		logger.Debug("pager not needed", "bytes", len(out))
	}

	return write(cmd.Root().Writer, out)
}

func write(w io.Writer, out string) error {
	if out == "" {
		return nil
	}

	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return cli.Exit("failed to write table: "+err.Error(), 1)
	}

	return nil
}
