package validator

import (
	"fmt"

	"github.com/TracyFogel/nbd.php-validation/pkg/rules"
)

// Run validates every registered field against the cage data. The boolean
// result is "no field failed"; the error is reserved for configuration
// faults discovered mid-run, such as an unknown rule name or a malformed
// appended token. Validated values and field errors are recomputed from
// scratch on every call.
func (v *Validator) Run() (bool, error) {
	v.validated = make(map[string]any)
	v.failures = make(map[string]*FieldError)
	v.failureOrder = nil

	for _, key := range v.order {
		if err := v.runField(v.fields[key]); err != nil {
			return false, err
		}
	}

	v.runComplete = true
	return len(v.failures) == 0, nil
}

// RunStrict behaves like Run but converts an overall validation failure into
// a *FailureError carrying the joined rendered messages and the validator
// itself for detailed inspection.
func (v *Validator) RunStrict() error {
	ok, err := v.Run()
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return &FailureError{
		Validator: v,
		Message:   v.JoinedErrorMessages(", "),
	}
}

// runField applies the three-tier short-circuit for one field: presence,
// nullability, then the marker-filtered chain in registration order.
func (v *Validator) runField(def *fieldDefinition) error {
	raw, present := v.cage[def.key]

	// Absent key: a required field records a failure against the provider's
	// required rule; either way, nothing else runs for this field.
	if !present {
		if def.hasMarker(rules.Required) {
			rule, err := v.resolveRule(rules.Required)
			if err != nil {
				return err
			}
			v.recordFailure(def, rule, &rules.Context{
				Field:     def.key,
				FieldName: def.fieldName,
				RuleName:  rules.Required,
				Cage:      v,
			})
		}
		return nil
	}

	// Nullable field holding a value the nullable rule deems null: the raw
	// value goes straight to validated data and the chain never runs.
	if def.hasMarker(rules.Nullable) {
		rule, err := v.resolveRule(rules.Nullable)
		if err != nil {
			return err
		}
		ctx := &rules.Context{
			Field:     def.key,
			FieldName: def.fieldName,
			RuleName:  rules.Nullable,
			Cage:      v,
		}
		if rule.IsValid(raw, ctx) {
			v.recordValidated(def.key, raw)
			return nil
		}
	}

	working := raw
	for _, token := range def.executableChain() {
		spec, err := ParseRuleSpec(token)
		if err != nil {
			return err
		}
		rule, err := v.resolveRule(spec.Name)
		if err != nil {
			return err
		}

		ctx := &rules.Context{
			Field:      def.key,
			FieldName:  def.fieldName,
			RuleName:   spec.Name,
			Parameters: spec.Parameters,
			Cage:       v,
		}

		if filter, ok := rule.(rules.FilterRule); ok {
			mutated, passed := filter.Filter(working, ctx)
			if !passed {
				v.recordFailure(def, rule, ctx)
				return nil
			}
			working = mutated
			continue
		}

		if !rule.IsValid(working, ctx) {
			v.recordFailure(def, rule, ctx)
			return nil
		}
	}

	v.recordValidated(def.key, working)
	return nil
}

func (v *Validator) resolveRule(name string) (rules.Rule, error) {
	rule, err := v.provider.Rule(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return rule, nil
}

// recordValidated stores a passed value, evicting any prior failure so a key
// never holds both.
func (v *Validator) recordValidated(key string, value any) {
	v.dropFailure(key)
	v.validated[key] = value
}

// recordFailure stores the first failure for a field, evicting any prior
// validated entry for the key.
func (v *Validator) recordFailure(def *fieldDefinition, rule rules.Rule, ctx *rules.Context) {
	delete(v.validated, def.key)
	if _, exists := v.failures[def.key]; !exists {
		v.failureOrder = append(v.failureOrder, def.key)
	}
	v.failures[def.key] = &FieldError{
		Field:    def.key,
		RuleName: ctx.RuleName,
		rule:     rule,
		ctx:      ctx,
	}
}

func (v *Validator) dropFailure(key string) {
	if _, exists := v.failures[key]; !exists {
		return
	}
	delete(v.failures, key)
	for i, k := range v.failureOrder {
		if k == key {
			v.failureOrder = append(v.failureOrder[:i], v.failureOrder[i+1:]...)
			break
		}
	}
}
