package query

import (
	"strconv"
	"strings"
)

// coerceFloat attempts numeric coercion of a resolved attribute value.
// Booleans coerce to 1/0 and numeric strings parse; anything else fails.
func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// coerceString returns the string form of a scalar attribute value.
// Nested mappings, lists, and nulls have no string form.
func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int8, int16, int32:
		f, _ := coerceFloat(t)
		return strconv.FormatFloat(f, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint, uint8, uint16, uint32, uint64:
		f, _ := coerceFloat(t)
		return strconv.FormatFloat(f, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
