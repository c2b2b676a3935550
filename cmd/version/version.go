// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package version implements the version subcommand.
package version

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	makecolors "github.com/cumulus13/make-colors"
)

// New returns the version command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version and commit",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if _, err := fmt.Fprintf(cmd.Root().Writer, "%s %s\n", cmd.Root().Name, makecolors.VersionString()); err != nil {
				return cli.Exit("failed to write version: "+err.Error(), 1)
			}

			return nil
		},
	}
}
