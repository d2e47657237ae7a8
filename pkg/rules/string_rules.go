package rules

import (
	"regexp"
	"unicode/utf8"
)

var (
	alphaRx    = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaNumRx = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// minLengthRule: minLength[n] — at least n UTF-8 characters.
func minLengthRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be at least {min} characters long.",
		check: func(value any, ctx *Context) bool {
			s, ok := stringOf(value)
			if !ok {
				return false
			}
			n, ok := paramInt(ctx, 0)
			return ok && utf8.RuneCountInString(s) >= n
		},
		format: func(ctx *Context) map[string]any {
			return map[string]any{"min": param(ctx, 0)}
		},
	}
}

// maxLengthRule: maxLength[n] — at most n UTF-8 characters.
func maxLengthRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be at most {max} characters long.",
		check: func(value any, ctx *Context) bool {
			s, ok := stringOf(value)
			if !ok {
				return false
			}
			n, ok := paramInt(ctx, 0)
			return ok && utf8.RuneCountInString(s) <= n
		},
		format: func(ctx *Context) map[string]any {
			return map[string]any{"max": param(ctx, 0)}
		},
	}
}

// lengthBetweenRule: lengthBetween[min,max] — inclusive character bounds.
func lengthBetweenRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be between {min} and {max} characters long.",
		check: func(value any, ctx *Context) bool {
			s, ok := stringOf(value)
			if !ok {
				return false
			}
			min, okMin := paramInt(ctx, 0)
			max, okMax := paramInt(ctx, 1)
			if !okMin || !okMax {
				return false
			}
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max
		},
		format: func(ctx *Context) map[string]any {
			return map[string]any{"min": param(ctx, 0), "max": param(ctx, 1)}
		},
	}
}

func alphaRule() Rule {
	return ruleFunc{
		template: "{fieldName} may only contain letters.",
		check: func(value any, _ *Context) bool {
			s, ok := stringOf(value)
			return ok && alphaRx.MatchString(s)
		},
	}
}

func alphaNumericRule() Rule {
	return ruleFunc{
		template: "{fieldName} may only contain letters and numbers.",
		check: func(value any, _ *Context) bool {
			s, ok := stringOf(value)
			return ok && alphaNumRx.MatchString(s)
		},
	}
}

// regexRule: regex[pattern] — matches a caller-supplied pattern. The pattern
// is the raw first parameter, so patterns containing commas cannot be
// expressed (the parameter grammar has no comma escape).
func regexRule() Rule {
	return ruleFunc{
		template: "{fieldName} has an invalid format.",
		check: func(value any, ctx *Context) bool {
			s, ok := stringOf(value)
			if !ok {
				return false
			}
			rx, err := regexp.Compile(param(ctx, 0))
			return err == nil && rx.MatchString(s)
		},
	}
}
