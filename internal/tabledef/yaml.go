// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tabledef

import "github.com/goccy/go-yaml"

func init() {
	Register(FormatYAML, decodeYAML)
}

// decodeYAML rejects unknown keys so typos in a definition are reported.
func decodeYAML(_ string, data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.UnmarshalWithOptions(data, &def, yaml.Strict()); err != nil {
		return nil, err
	}

	return &def, nil
}
