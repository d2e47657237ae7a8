package validator

import "errors"

// The error taxonomy. All are programmer or configuration errors surfaced
// synchronously; a rule reporting "value invalid" is not an error here, it is
// the expected false outcome captured in the field errors.
var (
	// ErrRuleRequirement marks malformed rule configuration discoverable at
	// registration or parse time: an empty chain, a chain of only the
	// required/nullable markers, an unterminated parameter list.
	ErrRuleRequirement = errors.New("rule requirement not met")

	// ErrInvalidRule marks a reference to an unknown field or rule name, or
	// structurally wrong registration input.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrNotRun marks an attempt to read a validated value before any
	// successful Run.
	ErrNotRun = errors.New("validator has not been run")
)

// FailureError is the aggregate signal raised by RunStrict when at least one
// field failed. It carries the joined rendered messages and the validator
// itself for detailed inspection.
type FailureError struct {
	Validator *Validator
	Message   string
}

func (e *FailureError) Error() string { return e.Message }
