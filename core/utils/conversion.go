package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CellString converts a raw cell value of any type to its string form.
// Spreadsheet rows and QBXML fields arrive untyped, so the coercion rules
// live in one place instead of being repeated per adapter.
func CellString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CellID coerces a raw cell value into a record identifier string.
// Whole numeric values normalize to their integer form ("30.0" -> "30") so
// ids read from numeric spreadsheet cells match ids stored as text elsewhere.
// Only plain decimal forms are normalized; text ids that merely parse as a
// number some other way ("1e3", "0x1F") pass through unchanged.
// ok is false when no usable identifier is present.
func CellID(val any) (id string, ok bool) {
	s := strings.TrimSpace(CellString(val))
	if s == "" {
		return "", false
	}

	if isDecimal(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil && isWhole(f) {
			return strconv.FormatInt(int64(f), 10), true
		}
	}

	return s, true
}

func formatNumber(f float64) string {
	if isWhole(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// isDecimal reports whether s is a plain decimal number: an optional sign,
// digits, and at most one decimal point. Exponent and hex forms fail.
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits, dot := false, false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits = true
		case s[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits
}

func isWhole(f float64) bool {
	return f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < math.MaxInt64
}
