// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tabledef

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

func init() {
	Register(FormatTOML, decodeTOML)
}

func decodeTOML(filename string, data []byte) (*Definition, error) {
	var def Definition

	err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&def)
	if err == nil {
		return &def, nil
	}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return nil, fmt.Errorf("%s:%d:%d: %w", filename, row, col, err)
	}

	return nil, err
}
