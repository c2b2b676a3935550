// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pager

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/cumulus13/make-colors/internal/ctxlog"
)

// getSize is replaced in tests.
var getSize = term.GetSize

// TerminalHeight returns the height of the terminal on stdout and whether
// stdout is a terminal at all.
func TerminalHeight() (int, bool) {
	_, h, err := getSize(int(os.Stdout.Fd()))
	if err != nil || h <= 0 {
		return 0, false
	}

	return h, true
}

// Fits reports whether content can be shown in height lines without paging.
func Fits(content string, height int) bool {
	return strings.Count(content, "\n")+1 <= height
}

type options struct {
	input  io.Reader
	output io.Writer
}

// Option configures Run.
type Option func(*options)

// WithInput reads keys from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithOutput draws to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// Run shows content until the user quits or ctx is cancelled.
func Run(ctx context.Context, title, content string, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}

	if o.input != nil {
		progOpts = append(progOpts, tea.WithInput(o.input))
	}

	if o.output != nil {
		progOpts = append(progOpts, tea.WithOutput(o.output))
	}

	m := NewModel(title, content)
	ctxlog.Debug(ctx, "starting pager", "title", title, "lines", m.lines)

	_, err := tea.NewProgram(m, progOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}

	return err
}
