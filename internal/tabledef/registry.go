// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tabledef

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrUnknownFormat is returned for a format without a registered decoder.
	ErrUnknownFormat = errors.New("unknown definition format")
	// ErrDecode is returned when a definition file cannot be decoded.
	ErrDecode = errors.New("failed to decode definition")
)

// Format names a definition file syntax.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// Decoder turns the content of a definition file into a Definition.
// filename is used for diagnostics only.
type Decoder func(filename string, data []byte) (*Definition, error)

// Registry holds the mapping between formats and their decoders.
type Registry map[Format]Decoder

// DefaultRegistry is the default registry for definition formats.
var DefaultRegistry = make(Registry)

// extensions maps file extensions to formats. JSON is read by the YAML decoder.
var extensions = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatYAML,
	".toml": FormatTOML,
	".hcl":  FormatHCL,
}

// Register registers a decoder for a format.
func Register(f Format, d Decoder) {
	DefaultRegistry[f] = d
}

// Formats returns the registered formats in name order.
func Formats() []Format {
	out := make([]Format, 0, len(DefaultRegistry))
	for f := range DefaultRegistry {
		out = append(out, f)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ParseFormat returns the registered format named s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := DefaultRegistry[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}

	return f, nil
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w: cannot tell the format of %q from its extension", ErrUnknownFormat, path)
	}

	return f, nil
}

// Decode decodes data in format f and validates the result.
func Decode(f Format, filename string, data []byte) (*Definition, error) {
	dec, ok := DefaultRegistry[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	def, err := dec(filename, data)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return def, nil
}
