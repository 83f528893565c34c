package interpreter

import (
	"math"
	"strconv"
)

// Lox values are represented by Go values: nil, bool, float64 and string.

func isTruthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

func isEqual(a, b any) bool {
	return a == b
}

// Stringify formats a value the way Lox prints it: integral numbers have no
// fractional part, strings are unquoted.
func Stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		switch {
		case math.IsNaN(v):
			return "nan"
		case math.IsInf(v, 1):
			return "inf"
		case math.IsInf(v, -1):
			return "-inf"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return "<unknown>"
	}
}
