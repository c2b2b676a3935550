// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/urfave/cli/v3"

	makecolors "github.com/cumulus13/make-colors"
	"github.com/cumulus13/make-colors/cmd/palette"
	"github.com/cumulus13/make-colors/cmd/stylecmd"
	"github.com/cumulus13/make-colors/cmd/tablecmd"
	"github.com/cumulus13/make-colors/cmd/version"
)

// NewRootCmd returns the root command for the CLI. Every call builds a fresh
// command tree, since flags keep their parsed values.
func NewRootCmd() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			palette.New(),
			stylecmd.New(),
			tablecmd.New(),
			version.New(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "makecolors",
		Version:   makecolors.VersionString(),
		Description: `makecolors styles terminal text with compact descriptors such as
"bold red on white" or "lr_b", renders inline markup like "[bold]title[/]",
and draws bordered text tables with alignment, wrapping and per-row colours
from YAML, TOML or HCL definitions.`,
		Usage:     "makecolors table services.yaml",
		Copyright: "Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.",
		Authors: []any{
			"Hadi Cahyadi (cumulus13)",
		},
		EnableShellCompletion: true,
	}
}
