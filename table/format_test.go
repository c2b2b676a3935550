// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name  string
		value any
		dtype DType
		prec  int
		want  string
	}{
		{"auto_int", 3, DTypeAuto, 3, "3"},
		{"auto_whole_float", 250.0, DTypeAuto, 3, "250"},
		{"auto_fraction", 2.5, DTypeAuto, 3, "2.500"},
		{"auto_numeric_string", "42", DTypeAuto, 3, "42"},
		{"auto_padded_string", " 3.14159 ", DTypeAuto, 3, "3.142"},
		{"auto_large_whole", 123456789.0, DTypeAuto, 3, "1.235e+08"},
		{"auto_threshold", 1e8, DTypeAuto, 3, "100000000"},
		{"auto_large_fraction", 123456789.5, DTypeAuto, 2, "1.23e+08"},
		{"auto_negative", -0.5, DTypeAuto, 1, "-0.5"},
		{"auto_text", "abc", DTypeAuto, 3, "abc"},
		{"auto_hex_string", "0x10", DTypeAuto, 3, "0x10"},
		{"auto_hex_float_string", "-0X1p4", DTypeAuto, 3, "-0X1p4"},
		{"float_hex_passthrough", "0x1p-2", DTypeFloat, 2, "0x1p-2"},
		{"auto_empty_string", "", DTypeAuto, 3, ""},
		{"auto_nil", nil, DTypeAuto, 3, ""},
		{"auto_bool", true, DTypeAuto, 3, "true"},
		{"auto_uint8", uint8(200), DTypeAuto, 3, "200"},
		{"auto_float32", float32(0.25), DTypeAuto, 3, "0.250"},
		{"auto_stringer", 1500 * time.Millisecond, DTypeAuto, 3, "1.5s"},
		{"text_keeps_number", 7, DTypeText, 3, "7"},
		{"text_keeps_numeric_string", "007", DTypeText, 3, "007"},
		{"float", 1, DTypeFloat, 3, "1.000"},
		{"float_precision_zero", 2.75, DTypeFloat, 0, "3"},
		{"float_string", "1.23456", DTypeFloat, 2, "1.23"},
		{"float_text_passthrough", "n/a", DTypeFloat, 2, "n/a"},
		{"exponential", 1234.56, DTypeExponential, 3, "1.235e+03"},
		{"exponential_small", 0.00012, DTypeExponential, 1, "1.2e-04"},
		{"integer_rounds_half_even_down", 2.5, DTypeInteger, 3, "2"},
		{"integer_rounds_half_even_up", 3.5, DTypeInteger, 3, "4"},
		{"integer_no_negative_zero", -0.4, DTypeInteger, 3, "0"},
		{"integer_string", "9.6", DTypeInteger, 3, "10"},
		{"integer_large", 1e20, DTypeInteger, 3, "100000000000000000000"},
		{"inf", math.Inf(1), DTypeAuto, 3, "inf"},
		{"neg_inf", math.Inf(-1), DTypeFloat, 3, "-inf"},
		{"nan", math.NaN(), DTypeInteger, 3, "nan"},
		{"overflowing_string", "1e400", DTypeExponential, 3, "inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCell(tt.value, tt.dtype, tt.prec))
		})
	}
}

func TestParseEnums(t *testing.T) {
	a, err := ParseAlign("C")
	assert.NoError(t, err)
	assert.Equal(t, AlignCenter, a)

	v, err := ParseVAlign("bottom")
	assert.NoError(t, err)
	assert.Equal(t, VAlignBottom, v)

	d, err := ParseDType("e")
	assert.NoError(t, err)
	assert.Equal(t, DTypeExponential, d)

	_, err = ParseAlign("diagonal")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseVAlign("x")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseDType("complex")
	assert.ErrorIs(t, err, ErrInvalidValue)

	for _, d := range []DType{DTypeAuto, DTypeText, DTypeFloat, DTypeExponential, DTypeInteger} {
		got, err := ParseDType(d.String())
		assert.NoError(t, err)
		assert.Equal(t, d, got)
	}
}
