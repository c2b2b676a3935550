// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds the flags and process-wide state shared by the subcommands.
// Colour enablement is global because the logger and the stylers all consult it.
package cmdstate

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cumulus13/make-colors/internal/color"
	"github.com/cumulus13/make-colors/internal/ctxlog"
	"github.com/cumulus13/make-colors/style"
)

const (
	// ColorFlagName is the name of the colour preference flag.
	ColorFlagName = "color"
	// ColorEnvVar sets the colour preference when the flag is absent.
	ColorEnvVar = "MAKECOLORS_COLOR"
	// BackendFlagName is the name of the styling backend flag.
	BackendFlagName = "backend"
	// BackendEnvVar selects the styling backend when the flag is absent.
	BackendEnvVar = "MAKECOLORS_BACKEND"
)

// ColorFlag returns a fresh --color flag.
func ColorFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     ColorFlagName,
		Aliases:  []string{"colour"},
		Usage:    "When to emit colour: auto, always or never",
		Value:    string(color.ModeAuto),
		Sources:  cli.EnvVars(ColorEnvVar),
		OnlyOnce: true,
		Validator: func(s string) error {
			_, err := color.ParseMode(s)
			return err
		},
	}
}

// BackendFlag returns a fresh --backend flag.
func BackendFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     BackendFlagName,
		Usage:    "Styling backend: lipgloss or ansi",
		Value:    style.BackendLipgloss.String(),
		Sources:  cli.EnvVars(BackendEnvVar),
		OnlyOnce: true,
		Validator: func(s string) error {
			_, err := style.ParseBackend(s)
			return err
		},
	}
}

// ApplyColor resolves the --color and --backend flags of cmd, records the
// colour decision for the whole process and returns a styler that honours it.
func ApplyColor(ctx context.Context, cmd *cli.Command) (style.Styler, error) {
	mode, err := color.ParseMode(cmd.String(ColorFlagName))
	if err != nil {
		return nil, err
	}

	backend, err := style.ParseBackend(cmd.String(BackendFlagName))
	if err != nil {
		return nil, err
	}

	enabled := mode.Resolve()
	color.SetEnabled(enabled)

	ctxlog.Debug(ctx, "colour resolved", "mode", string(mode), "enabled", enabled, "backend", backend.String())

	return style.New(backend, enabled), nil
}
