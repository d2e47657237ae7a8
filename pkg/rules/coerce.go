package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// stringOf reduces scalar raw values to their string form. Composite values
// (slices, maps, structs) are rejected so string-shaped rules fail cleanly
// instead of validating a formatted dump.
func stringOf(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

func floatOf(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// paramFloat parses the i-th rule parameter as a float.
func paramFloat(ctx *Context, i int) (float64, bool) {
	if i >= len(ctx.Parameters) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(ctx.Parameters[i]), 64)
	return f, err == nil
}

// paramInt parses the i-th rule parameter as an int.
func paramInt(ctx *Context, i int) (int, bool) {
	if i >= len(ctx.Parameters) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(ctx.Parameters[i]))
	return n, err == nil
}

func param(ctx *Context, i int) string {
	if i >= len(ctx.Parameters) {
		return ""
	}
	return ctx.Parameters[i]
}
