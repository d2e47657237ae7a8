package rules

import (
	"reflect"
)

// inListRule: inList[a,b,c] — the value's string form must equal one of the
// parameters exactly. List entries containing commas cannot be expressed.
func inListRule() Rule {
	return ruleFunc{
		template: "{fieldName} is not an allowed value.",
		check: func(value any, ctx *Context) bool {
			s, ok := stringOf(value)
			if !ok {
				return false
			}
			for _, allowed := range ctx.Parameters {
				if s == allowed {
					return true
				}
			}
			return false
		},
	}
}

func notInListRule() Rule {
	return ruleFunc{
		template: "{fieldName} is not an allowed value.",
		check: func(value any, ctx *Context) bool {
			s, ok := stringOf(value)
			if !ok {
				return false
			}
			for _, disallowed := range ctx.Parameters {
				if s == disallowed {
					return false
				}
			}
			return true
		},
	}
}

// matchesRule: matches[otherKey] — cross-field equality against the raw cage
// value of another key, read through the context's cage accessor. Scalars are
// compared by string form, anything else structurally.
func matchesRule() Rule {
	return ruleFunc{
		template: "{fieldName} must match {other}.",
		check: func(value any, ctx *Context) bool {
			if ctx.Cage == nil {
				return false
			}
			other, ok := ctx.Cage.CageValue(param(ctx, 0))
			if !ok {
				return false
			}
			a, okA := stringOf(value)
			b, okB := stringOf(other)
			if okA && okB {
				return a == b
			}
			return reflect.DeepEqual(value, other)
		},
		format: func(ctx *Context) map[string]any {
			return map[string]any{"other": param(ctx, 0)}
		},
	}
}
