package rules

import (
	"errors"
	"fmt"
)

// ErrUnknownRule is returned when a rule name has no registration.
var ErrUnknownRule = errors.New("unknown validation rule")

// Provider is the boundary the execution engine depends on: name resolution
// plus dynamic registration of ad-hoc callback rules synthesized by the
// rule-spec parser.
type Provider interface {
	Rule(name string) (Rule, error)
	SetCallbackRule(name string, fn CallbackFunc)
}

// Registry is the default Provider: a flat map from rule name to rule value,
// preloaded with the built-in rule set and open for extension. Lookup is a
// plain map access; the parser has already normalized names, so no case
// folding happens here.
//
// A Registry is safe to share across validators as long as no goroutine
// registers rules concurrently with lookups.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry returns a Registry preloaded with the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Rule)}

	r.Register(Required, requiredRule())
	r.Register(Nullable, nullableRule())
	r.Register(Filter, filterRule{})

	r.Register("minLength", minLengthRule())
	r.Register("maxLength", maxLengthRule())
	r.Register("lengthBetween", lengthBetweenRule())
	r.Register("alpha", alphaRule())
	r.Register("alphaNumeric", alphaNumericRule())
	r.Register("regex", regexRule())

	r.Register("integer", integerRule())
	r.Register("decimal", decimalRule())
	r.Register("numeric", numericRule())
	r.Register("range", rangeRule())
	r.Register("greaterThan", greaterThanRule())
	r.Register("lessThan", lessThanRule())

	r.Register("email", emailRule())
	r.Register("url", urlRule())
	r.Register("uuid", uuidRule())
	r.Register("boolean", booleanRule())

	r.Register("inList", inListRule())
	r.Register("notInList", notInListRule())
	r.Register("matches", matchesRule())

	return r
}

// Register adds or replaces a rule under the given name.
func (r *Registry) Register(name string, rule Rule) {
	r.rules[name] = rule
}

// Rule resolves a rule by name.
func (r *Registry) Rule(name string) (Rule, error) {
	rule, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return rule, nil
}

// SetCallbackRule registers an ad-hoc predicate under the given name.
func (r *Registry) SetCallbackRule(name string, fn CallbackFunc) {
	r.Register(name, callbackRule{fn: fn})
}

// Names returns the registered rule names, for diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	return names
}
