package rules

import (
	"github.com/TracyFogel/nbd.php-validation/pkg/sanitizer"
)

// requiredRule backs the engine's presence check. Its template is rendered
// when a required field is absent from the cage data; standalone use treats
// nil and the empty string as missing.
func requiredRule() Rule {
	return ruleFunc{
		template: "{fieldName} is required.",
		check: func(value any, _ *Context) bool {
			if value == nil {
				return false
			}
			if s, ok := value.(string); ok && s == "" {
				return false
			}
			return true
		},
	}
}

// nullableRule owns the "counts as null" policy the engine consults for
// nullable-marked fields. IsValid reports whether the raw value is null, NOT
// whether the value passes; the engine short-circuits on a true result.
func nullableRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be empty.",
		check: func(value any, _ *Context) bool {
			if value == nil {
				return true
			}
			s, ok := value.(string)
			return ok && s == ""
		},
	}
}

// filterRule rewrites the working value through the named sanitizer
// transforms, in parameter order. A non-string value or an unknown transform
// name fails the rule; the value is left untouched on failure.
type filterRule struct{}

func (filterRule) ErrorTemplate() string { return "{fieldName} could not be filtered." }

func (r filterRule) IsValid(value any, ctx *Context) bool {
	_, ok := r.Filter(value, ctx)
	return ok
}

func (filterRule) Filter(value any, ctx *Context) (any, bool) {
	s, ok := value.(string)
	if !ok {
		return value, false
	}
	for _, name := range ctx.Parameters {
		transform, ok := sanitizer.Transform(name)
		if !ok {
			return value, false
		}
		s = transform(s)
	}
	return s, true
}
