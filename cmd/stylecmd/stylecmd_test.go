// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package stylecmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cumulus13/make-colors/style"
)

type fakePrompter struct {
	lines   []string
	end     error
	history []string
	closed  bool
}

func (f *fakePrompter) Prompt(string) (string, error) {
	if len(f.lines) == 0 {
		return "", f.end
	}

	l := f.lines[0]
	f.lines = f.lines[1:]

	return l, nil
}

func (f *fakePrompter) AppendHistory(item string) {
	f.history = append(f.history, item)
}

func (f *fakePrompter) Close() error {
	f.closed = true
	return nil
}

func stubPrompter(t *testing.T, f *fakePrompter) {
	t.Helper()

	stubs := gostub.Stub(&newPrompter, func() prompter { return f })
	t.Cleanup(stubs.Reset)
}

func TestInterpret(t *testing.T) {
	st := style.NewANSI(true)

	tests := []struct {
		line string
		want string
	}{
		{"red: hello", "\x1b[31mhello\x1b[0m"},
		{"bold green:x", "\x1b[1;32mx\x1b[0m"},
		{"note: not a style", "note: not a style"},
		{"[blue]markup[/] line", "\x1b[34mmarkup\x1b[0m line"},
		{"plain text", "plain text"},
		{"red:", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, interpret(st, tt.line))
		})
	}
}

func TestRepl(t *testing.T) {
	tests := []struct {
		name string
		end  error
	}{
		{"eof", io.EOF},
		{"aborted", liner.ErrPromptAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakePrompter{lines: []string{"red: a", "  ", "[bold]b[/]"}, end: tt.end}
			stubPrompter(t, f)

			var out bytes.Buffer
			require.NoError(t, repl(context.Background(), &out, style.NewANSI(true)))

			assert.True(t, f.closed)
			assert.Equal(t, []string{"red: a", "[bold]b[/]"}, f.history)
			assert.Contains(t, out.String(), "\x1b[31ma\x1b[0m\n\x1b[1mb\x1b[0m\n")
		})
	}
}

func TestRepl_Quit(t *testing.T) {
	f := &fakePrompter{lines: []string{"quit", "red: never"}}
	stubPrompter(t, f)

	var out bytes.Buffer
	require.NoError(t, repl(context.Background(), &out, style.NewANSI(false)))

	assert.NotContains(t, out.String(), "never")
	assert.Empty(t, f.history)
	assert.Len(t, f.lines, 1)
}

func TestRepl_ReadError(t *testing.T) {
	f := &fakePrompter{end: errors.New("tty gone")}
	stubPrompter(t, f)

	err := repl(context.Background(), io.Discard, style.NewANSI(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
	assert.True(t, f.closed)
}

func TestRepl_Cancelled(t *testing.T) {
	f := &fakePrompter{lines: []string{"red: a"}}
	stubPrompter(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, repl(ctx, &out, style.NewANSI(false)))
	assert.Len(t, f.lines, 1)
}
