// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import "errors"

var (
	// ErrSizeMismatch is returned when an array does not match the established column count.
	ErrSizeMismatch = errors.New("array size does not match column count")
	// ErrInvalidValue is returned when a numeric setting is out of range.
	ErrInvalidValue = errors.New("invalid value")
)
