// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/cumulus13/make-colors/internal/color"
	"github.com/cumulus13/make-colors/internal/tabledef"
)

const fruitYAML = `
columns:
  - header: Name
  - header: Qty
    align: right
    dtype: int
rows:
  - cells: [apple, 3]
  - cells: [pear, 12]
`

var fruitDrawn = strings.Join([]string{
	"+-------+-----+",
	"| Name  | Qty |",
	"+=======+=====+",
	"| apple |   3 |",
	"+-------+-----+",
	"| pear  |  12 |",
	"+-------+-----+",
}, "\n") + "\n"

// run executes the root command with args and returns what it printed.
// Exit errors are returned instead of ending the process.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prev := color.Enabled()
	t.Cleanup(func() { color.SetEnabled(prev) })

	var stdout, stderr bytes.Buffer

	root := NewRootCmd()
	root.Writer = &stdout
	root.ErrWriter = &stderr
	root.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := root.Run(context.Background(), append([]string{"makecolors"}, args...))

	return stdout.String(), err
}

func memFs(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&tabledef.FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	var ec cli.ExitCoder
	require.ErrorAs(t, err, &ec)

	return ec.ExitCode()
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "makecolors dev (commit: unknown)\n", out)
}

func TestStyle(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "plain",
			args: []string{"style", "--color", "never", "bold red", "hello", "world"},
			want: "hello world\n",
		},
		{
			name: "coloured",
			args: []string{"style", "--color", "always", "red", "x"},
			want: "\x1b[31mx\x1b[0m\n",
		},
		{
			name: "abbreviation",
			args: []string{"style", "--color", "always", "lr_b", "x"},
			want: "\x1b[91;40mx\x1b[0m\n",
		},
		{
			name: "markup",
			args: []string{"style", "--color", "always", "--markup", "[red]a[/] b"},
			want: "\x1b[31ma\x1b[0m b\n",
		},
		{
			name: "markup_without_colour",
			args: []string{"style", "--color", "never", "-m", "[red]a[/]", "b"},
			want: "a b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestStyle_ColourFromEnv(t *testing.T) {
	t.Setenv("MAKECOLORS_COLOR", "always")

	out, err := run(t, "style", "green", "ok")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32mok\x1b[0m\n", out)
	assert.True(t, color.Enabled())
}

func TestStyle_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown_descriptor", []string{"style", "sparkly", "x"}, "unknown style"},
		{"no_text", []string{"style", "red"}, "no text given"},
		{"no_markup_text", []string{"style", "--markup"}, "no text given"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, 1, exitCode(t, err))
			assert.Contains(t, err.Error(), tt.msg)
			assert.Empty(t, out)
		})
	}
}

func TestBadColourFlag(t *testing.T) {
	_, err := run(t, "style", "--color", "sometimes", "red", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color mode")
}

func TestBackendsAgree(t *testing.T) {
	memFs(t, map[string]string{"/defs/fruit.yaml": fruitYAML})

	for _, args := range [][]string{
		{"style", "--color", "always", "bold red-yellow", "x"},
		{"style", "--color", "always", "-m", "[lg]a[/] [italic cyan]b[/]"},
		{"palette", "--color", "always"},
		{"table", "--color", "always", "/defs/fruit.yaml"},
	} {
		t.Run(args[0], func(t *testing.T) {
			withBackend := func(b string) []string {
				return append([]string{args[0], "--backend", b}, args[1:]...)
			}

			primary, err := run(t, withBackend("lipgloss")...)
			require.NoError(t, err)

			fallback, err := run(t, withBackend("ansi")...)
			require.NoError(t, err)

			assert.Equal(t, primary, fallback)
		})
	}
}

func TestBackendFromEnv(t *testing.T) {
	t.Setenv("MAKECOLORS_BACKEND", "ansi")

	out, err := run(t, "style", "--color", "always", "red", "x")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mx\x1b[0m\n", out)
}

func TestBadBackendFlag(t *testing.T) {
	_, err := run(t, "style", "--backend", "curses", "red", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown style backend")
}

func TestTable(t *testing.T) {
	memFs(t, map[string]string{"/defs/fruit.yaml": fruitYAML})

	out, err := run(t, "table", "--color", "never", "/defs/fruit.yaml")
	require.NoError(t, err)
	assert.Equal(t, fruitDrawn, out)
}

func TestTable_ExplicitFormat(t *testing.T) {
	memFs(t, map[string]string{"/defs/fruit.txt": fruitYAML})

	_, err := run(t, "table", "--color", "never", "/defs/fruit.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown definition format")

	out, err := run(t, "table", "--color", "never", "--format", "yaml", "/defs/fruit.txt")
	require.NoError(t, err)
	assert.Equal(t, fruitDrawn, out)
}

func TestTable_MaxWidth(t *testing.T) {
	memFs(t, map[string]string{"/long.yaml": "rows:\n  - cells: [\"aaaa bbbb cccc dddd\"]\n"})

	out, err := run(t, "table", "--color", "never", "--max-width", "13", "/long.yaml")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, []string{
		"+-----------+",
		"| aaaa bbbb |",
		"| cccc dddd |",
		"+-----------+",
	}, lines)

	t.Setenv("MAKECOLORS_MAX_WIDTH", "8")

	out, err = run(t, "table", "--color", "never", "/long.yaml")
	require.NoError(t, err)

	for _, l := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.Len(t, l, 8, l)
	}
}

func TestTable_Errors(t *testing.T) {
	memFs(t, map[string]string{"/bad.yaml": "rows:\n  - cells: [a]\n  - cells: [a, b]\n"})

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no_file", []string{"table"}, "Please provide a table definition file"},
		{"missing_file", []string{"table", "/nope.yaml"}, "failed to read definition file"},
		{"invalid_definition", []string{"table", "/bad.yaml"}, "row size does not match column count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, 1, exitCode(t, err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := run(t, "table", "--max-width=-1", "/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max width must not be negative")

	_, err = run(t, "table", "--format", "xml", "/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown definition format")
}

func TestPalette(t *testing.T) {
	out, err := run(t, "palette", "--color", "never")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, "Palette", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines, "| red          | r      |   sample   |   sample   |")
	assert.Contains(t, lines, "| lightmagenta | lm     |   sample   |   sample   |")

	for _, l := range lines[1:] {
		assert.Len(t, l, 51, l)
	}
}

func TestPalette_Coloured(t *testing.T) {
	out, err := run(t, "palette", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[31msample\x1b[0m")
	assert.Contains(t, out, "\x1b[41msample\x1b[0m")
	assert.Contains(t, out, "\x1b[1mName\x1b[0m")
}
