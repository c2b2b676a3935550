// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tabledef

import (
	"context"
	"errors"

	"github.com/spf13/afero"

	"github.com/cumulus13/make-colors/internal/ctxlog"
	"github.com/cumulus13/make-colors/table"
)

// ErrReadDefinition is returned when a definition file cannot be read.
var ErrReadDefinition = errors.New("failed to read definition file")

// FsFactory returns the filesystem definitions are read from. Tests swap in
// an in-memory one.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Load reads and validates the definition at path from the filesystem
// returned by FsFactory. An empty format is derived from the extension.
func Load(ctx context.Context, path string, format Format) (*Definition, error) {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}

		format = f
	}

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadDefinition, err)
	}

	ctxlog.Debug(ctx, "decoding table definition", "path", path, "format", string(format), "bytes", len(data))

	def, err := Decode(format, path, data)
	if err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "table definition loaded", "path", path, "columns", len(def.Columns), "rows", len(def.Rows))

	return def, nil
}

// LoadTable loads the definition at path and builds it.
func LoadTable(ctx context.Context, path string, format Format, opts ...table.Option) (*table.Table, error) {
	def, err := Load(ctx, path, format)
	if err != nil {
		return nil, err
	}

	return def.Build(opts...)
}
