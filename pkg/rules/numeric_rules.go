package rules

import (
	"strconv"
	"strings"
)

// integerRule accepts integer-typed values and strings that parse as base-10
// integers. Floats are rejected even when they carry no fractional part.
func integerRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be an integer.",
		check: func(value any, _ *Context) bool {
			switch v := value.(type) {
			case int, int8, int16, int32, int64,
				uint, uint8, uint16, uint32, uint64:
				return true
			case string:
				_, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
				return err == nil
			default:
				return false
			}
		},
	}
}

// decimalRule requires a fractional notation: a float value, or a string that
// parses as a float and contains a decimal point.
func decimalRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be a decimal number.",
		check: func(value any, _ *Context) bool {
			switch v := value.(type) {
			case float32, float64:
				return true
			case string:
				if !strings.Contains(v, ".") {
					return false
				}
				_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
				return err == nil
			default:
				return false
			}
		},
	}
}

// numericRule accepts anything coercible to a float: integer and float types,
// and numeric strings with or without a fractional part.
func numericRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be a number.",
		check: func(value any, _ *Context) bool {
			_, ok := floatOf(value)
			return ok
		},
	}
}

// rangeRule: range[min,max] — numeric value within inclusive bounds.
func rangeRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be between {min} and {max}.",
		check: func(value any, ctx *Context) bool {
			f, ok := floatOf(value)
			if !ok {
				return false
			}
			min, okMin := paramFloat(ctx, 0)
			max, okMax := paramFloat(ctx, 1)
			return okMin && okMax && f >= min && f <= max
		},
		format: func(ctx *Context) map[string]any {
			return map[string]any{"min": param(ctx, 0), "max": param(ctx, 1)}
		},
	}
}

func greaterThanRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be greater than {threshold}.",
		check: func(value any, ctx *Context) bool {
			f, ok := floatOf(value)
			if !ok {
				return false
			}
			threshold, ok := paramFloat(ctx, 0)
			return ok && f > threshold
		},
		format: func(ctx *Context) map[string]any {
			return map[string]any{"threshold": param(ctx, 0)}
		},
	}
}

func lessThanRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be less than {threshold}.",
		check: func(value any, ctx *Context) bool {
			f, ok := floatOf(value)
			if !ok {
				return false
			}
			threshold, ok := paramFloat(ctx, 0)
			return ok && f < threshold
		},
		format: func(ctx *Context) map[string]any {
			return map[string]any{"threshold": param(ctx, 0)}
		},
	}
}
