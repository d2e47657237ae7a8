// Package rules provides the rule implementations and the rule provider the
// validation engine dispatches to.
//
// # Architecture
//
// Every rule is a value implementing the Rule interface: a boolean IsValid
// predicate over a raw value plus a raw error template with named
// placeholders. Two optional capabilities extend that contract: FilterRule
// for the mutating invocation shape (the filter rule rewrites the field's
// working value through named sanitizer transforms), and FormattingRule for
// rule-specific enrichment of the rendering context (range exposes {min} and
// {max}, matches exposes {other}).
//
// Rules receive their parameters at invocation time through the Context, so
// rule values are stateless and shared. Parameter coercion is each rule's own
// job; a malformed parameter simply fails the check.
//
// The Registry is the default Provider: a flat name-to-rule map preloaded
// with the built-in set and open for extension via Register and
// SetCallbackRule. Resolution is a plain lookup returning a typed error on a
// miss, never reflection.
//
// # Usage
//
//	registry := rules.NewRegistry()
//	registry.Register("even", myEvenRule)
//
//	v := validator.New(registry)
//	v.SetRule("age", "Age", "required|integer|range[1,10]")
//
// # Built-in rules
//
// Markers and processing: required, nullable, filter[transform,...].
// String: minLength[n], maxLength[n], lengthBetween[min,max], alpha,
// alphaNumeric, regex[pattern]. Numeric: integer, decimal, numeric,
// range[min,max], greaterThan[n], lessThan[n]. Format: email, url, uuid,
// boolean. Choice: inList[a,b,...], notInList[a,b,...]. Cross-field:
// matches[otherKey].
//
// Parameters are split on commas with no escaping, so a parameter can never
// contain a literal comma. This is a known limitation of the token grammar.
package rules
