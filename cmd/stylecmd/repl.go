// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package stylecmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"

	"github.com/cumulus13/make-colors/internal/ctxlog"
	"github.com/cumulus13/make-colors/style"
)

const prompt = "style> "

// prompter is the part of liner.State used by the prompt loop.
type prompter interface {
	Prompt(p string) (string, error)
	AppendHistory(item string)
	Close() error
}

// newPrompter is replaced in tests.
var newPrompter = func() prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	return line
}

func repl(ctx context.Context, w io.Writer, st style.Styler) error {
	line := newPrompter()
	defer func() {
		_ = line.Close()
	}()

	fmt.Fprintln(w, `Type "descriptor: text" or markup, "quit" or Ctrl+C to leave.`) //nolint:errcheck

	for ctx.Err() == nil {
		input, err := line.Prompt(prompt)

		switch {
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return cli.Exit("error reading line: "+err.Error(), 1)
		}

		input = strings.TrimSpace(input)

		switch input {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		line.AppendHistory(input)
		ctxlog.Debug(ctx, "rendering prompt line", "input", input)

		if _, err := fmt.Fprintln(w, interpret(st, input)); err != nil {
			return cli.Exit("failed to write output: "+err.Error(), 1)
		}
	}

	return nil
}
