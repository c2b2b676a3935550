// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// exponentThreshold is the magnitude above which auto cells switch to exponential form.
const exponentThreshold = 1e8

// formatCell renders v according to dtype and precision.
// Values that are not numeric are always rendered as text.
func formatCell(v any, dtype DType, precision int) string {
	if dtype == DTypeText {
		return text(v)
	}

	f, ok := number(v)
	if !ok {
		return text(v)
	}

	if s, ok := nonFinite(f); ok {
		return s
	}

	switch dtype {
	case DTypeInteger:
		return formatInteger(f)
	case DTypeFloat:
		return strconv.FormatFloat(f, 'f', precision, 64)
	case DTypeExponential:
		return formatExponent(f, precision)
	}

	if f == math.Trunc(f) {
		if math.Abs(f) > exponentThreshold {
			return formatExponent(f, precision)
		}

		return formatInteger(f)
	}

	if math.Abs(f) > exponentThreshold {
		return formatExponent(f, precision)
	}

	return strconv.FormatFloat(f, 'f', precision, 64)
}

func formatInteger(f float64) string {
	r := math.RoundToEven(f)
	if r == 0 {
		r = 0 // no "-0"
	}

	return strconv.FormatFloat(r, 'f', 0, 64)
}

// formatExponent uses a mantissa with precision decimals and a signed,
// at least two digit exponent, e.g. 1.235e+09.
func formatExponent(f float64, precision int) string {
	return fmt.Sprintf("%.*e", precision, f)
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "nan", true
	case math.IsInf(f, 1):
		return "inf", true
	case math.IsInf(f, -1):
		return "-inf", true
	}

	return "", false
}

// number converts numeric kinds and numeric strings to float64.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" || isHex(s) {
			return 0, false
		}

		f, err := strconv.ParseFloat(s, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return f, true
		}
	}

	return 0, false
}

// isHex reports whether s is a hexadecimal literal such as "0x10".
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")

	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}

	return fmt.Sprint(v)
}
