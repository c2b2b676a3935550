// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stylecmd implements the style subcommand, which prints text in a
// style descriptor or renders inline markup.
package stylecmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cumulus13/make-colors/cmd/cmdstate"
	"github.com/cumulus13/make-colors/internal/ctxlog"
	"github.com/cumulus13/make-colors/internal/vtext"
	"github.com/cumulus13/make-colors/style"
)

const (
	argsArg         = "args"
	markupFlag      = "markup"
	interactiveFlag = "interactive"
)

var (
	// ErrUnknownStyle is returned for a descriptor with no recognised words.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrMissingText is returned when there is nothing to print.
	ErrMissingText = errors.New("no text given")
)

// New returns the style command.
func New() *cli.Command {
	return &cli.Command{
		Name:      "style",
		Usage:     "Print text in a style",
		ArgsUsage: "DESCRIPTOR TEXT...",
		Description: `Print TEXT styled by DESCRIPTOR, e.g. "bold red on white" or "lr_b".

With --markup every argument is text and may contain inline tags such as
"[bold red]error[/] details". With --interactive, lines of the form
"descriptor: text" are read from a prompt and printed styled; lines without a
colon are rendered as markup.`,
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name: argsArg,
				Min:  0,
				Max:  -1,
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        markupFlag,
				Aliases:     []string{"m"},
				Usage:       "Render the text as inline markup",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        interactiveFlag,
				Aliases:     []string{"i"},
				Usage:       "Read descriptor: text lines from a prompt",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
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

	w := cmd.Root().Writer

	if cmd.Bool(interactiveFlag) {
		return repl(ctx, w, styler)
	}

	var out string

	args := cmd.StringArgs(argsArg)
	ctxlog.Debug(ctx, "styling text", "markup", cmd.Bool(markupFlag), "args", len(args))

	if cmd.Bool(markupFlag) {
		out, err = renderMarkup(styler, args)
	} else {
		out, err = renderArgs(styler, args)
	}

	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return cli.Exit("failed to write output: "+err.Error(), 1)
	}

	return nil
}

func renderArgs(st style.Styler, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: usage is style DESCRIPTOR TEXT...", ErrMissingText)
	}

	return render(st, args[0], strings.Join(args[1:], " "))
}

func renderMarkup(st style.Styler, args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrMissingText
	}

	return vtext.RenderMarkup(st, strings.Join(args, " ")), nil
}

func render(st style.Styler, descriptor, text string) (string, error) {
	d, ok := style.Parse(descriptor)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, descriptor)
	}

	return style.ApplyDescriptor(st, text, d), nil
}

// interpret handles one prompt line. "descriptor: text" prints text in the
// descriptor's style; anything else is treated as markup.
func interpret(st style.Styler, line string) string {
	descriptor, text, ok := strings.Cut(line, ":")
	if !ok {
		return vtext.RenderMarkup(st, line)
	}

	d, ok := style.Parse(descriptor)
	if !ok {
		return vtext.RenderMarkup(st, line)
	}

	return style.ApplyDescriptor(st, strings.TrimPrefix(text, " "), d)
}
