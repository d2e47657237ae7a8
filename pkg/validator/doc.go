// Package validator implements a rule-chain validation engine: named raw
// input values (the "cage data") are checked against declarative per-field
// rule chains, producing either validated values or per-field errors.
//
// # Overview
//
// A Validator binds one cage-data snapshot to a field registry and a rule
// provider. Fields are registered with a key, a human-readable name, and an
// ordered rule chain written in the token grammar:
//
//	name              plain rule
//	name[p1,p2]       rule with parameters (split on ',', no escaping)
//	a|b[x]|c          '|'-delimited chain in one string
//
// Two reserved markers, required and nullable, are interpreted by the engine
// itself rather than dispatched: a required field that is absent from the
// cage data fails immediately, and a nullable field holding a null value is
// accepted as-is without running its chain. The filter token dispatches to a
// rule with the mutating invocation shape, letting chained transforms such as
// filter[trim,upper] rewrite the working value before later rules see it.
//
// # Execution
//
// Run processes every registered field independently: presence check, then
// nullability, then the marker-filtered chain in registration order with
// first-failure-wins short-circuiting. A field's value lands in the
// validated store only when its whole chain passed; a key never holds both a
// validated value and an error. Run may be called repeatedly and recomputes
// everything from scratch, so rules and cage data may be adjusted between
// runs.
//
// # Usage
//
//	v := validator.NewDefault()
//	v.SetCageData(map[string]any{"email": " Bob@Example.COM ", "age": "7"})
//
//	_ = v.SetRule("email", "Email Address", "required|filter[trim,lower]|email")
//	_ = v.SetRule("age", "Age", "required|integer|range[1,10]")
//
//	ok, err := v.Run()
//	if err != nil {
//	    // configuration fault: unknown rule, malformed token
//	}
//	if !ok {
//	    for _, msg := range v.ErrorMessages() {
//	        // "{fieldName} must be ..." rendered lazily per failed field
//	    }
//	}
//	email, _ := v.ValidatedField("email") // "bob@example.com"
//
// RunStrict converts an overall validation failure into a *FailureError
// carrying the joined rendered messages and the validator for inspection.
//
// # Error taxonomy
//
// ErrRuleRequirement, ErrInvalidRule and ErrNotRun classify configuration
// mistakes and are matched with errors.Is. A rule rejecting a value is not
// an error in this sense; it is the expected false outcome reported through
// Run's boolean result and the per-field error surface.
//
// # Concurrency
//
// A Validator is single-goroutine state: construct, configure, and run it
// per logical request. No locking is performed.
package validator
