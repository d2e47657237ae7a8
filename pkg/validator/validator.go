package validator

import (
	"fmt"

	"github.com/TracyFogel/nbd.php-validation/pkg/rules"
)

// fieldDefinition holds one registered field: its human-readable name and the
// original, unfiltered token chain (markers included).
type fieldDefinition struct {
	key       string
	fieldName string
	chain     []string
}

func (d *fieldDefinition) hasMarker(marker string) bool {
	for _, token := range d.chain {
		if token == marker {
			return true
		}
	}
	return false
}

// executableChain returns the chain with the required/nullable markers
// removed, preserving registration order.
func (d *fieldDefinition) executableChain() []string {
	chain := make([]string, 0, len(d.chain))
	for _, token := range d.chain {
		if token == rules.Required || token == rules.Nullable {
			continue
		}
		chain = append(chain, token)
	}
	return chain
}

// Validator binds one cage-data snapshot to a field registry and a rule
// provider, and computes validated values and field errors on Run.
//
// A Validator is meant to be constructed, configured, and run on a single
// goroutine per logical request; it holds shared mutable state with no
// locking. Re-running after mutating rules or cage data is supported and
// recomputes all derived state from scratch.
type Validator struct {
	provider rules.Provider

	cage    map[string]any
	cageSet bool

	fields map[string]*fieldDefinition
	order  []string

	validated    map[string]any
	failures     map[string]*FieldError
	failureOrder []string

	runComplete bool
}

// New creates a Validator backed by the given rule provider.
func New(provider rules.Provider) *Validator {
	return &Validator{
		provider:  provider,
		fields:    make(map[string]*fieldDefinition),
		validated: make(map[string]any),
		failures:  make(map[string]*FieldError),
	}
}

// NewDefault creates a Validator backed by a fresh default rule registry.
func NewDefault() *Validator {
	return New(rules.NewRegistry())
}

// Provider returns the rule provider the validator dispatches to.
func (v *Validator) Provider() rules.Provider { return v.provider }

// SetCageData binds the raw input snapshot. The map is copied, so later
// mutations of the argument do not leak into the validator; call SetCageData
// again to replace the snapshot between runs.
func (v *Validator) SetCageData(data map[string]any) {
	v.cage = make(map[string]any, len(data))
	for k, val := range data {
		v.cage[k] = val
	}
	v.cageSet = true
}

// CageValue returns the raw value for key and whether the key exists. It is
// the read surface cross-field rules use through the rule context.
func (v *Validator) CageValue(key string) (any, bool) {
	value, ok := v.cage[key]
	return value, ok
}

// SetRule registers (or replaces) a field: its key, human-readable name, and
// rule chain. Each chain entry is a rule-token string (optionally
// '|'-delimited), a rules.CallbackFunc, or a rules.Rule value. A chain that
// is empty after splitting, or that contains only the required/nullable
// markers, is rejected with ErrRuleRequirement.
func (v *Validator) SetRule(key, fieldName string, ruleChain ...any) error {
	tokens, err := v.normalizeChain(ruleChain)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return fmt.Errorf("%w: no rules supplied for field %q", ErrRuleRequirement, key)
	}

	def := &fieldDefinition{key: key, fieldName: fieldName, chain: tokens}
	if len(def.executableChain()) == 0 {
		return fmt.Errorf("%w: field %q defines only required/nullable markers", ErrRuleRequirement, key)
	}

	if _, exists := v.fields[key]; !exists {
		v.order = append(v.order, key)
	}
	v.fields[key] = def
	return nil
}

// SetRules is the bulk registration form. Each row is
// [key, fieldName, token, token...]; a row with fewer than three cells, or
// whose first two cells are not strings, is rejected with ErrInvalidRule.
func (v *Validator) SetRules(rows [][]any) error {
	for i, row := range rows {
		if len(row) < 3 {
			return fmt.Errorf("%w: registration row %d has %d cells, want at least 3", ErrInvalidRule, i, len(row))
		}
		key, okKey := row[0].(string)
		fieldName, okName := row[1].(string)
		if !okKey || !okName {
			return fmt.Errorf("%w: registration row %d must start with key and field name strings", ErrInvalidRule, i)
		}
		if err := v.SetRule(key, fieldName, row[2:]...); err != nil {
			return err
		}
	}
	return nil
}

// AppendRule appends one token to an already registered field's chain. The
// token is not validated here; malformed tokens surface at run time.
func (v *Validator) AppendRule(key, token string) error {
	def, ok := v.fields[key]
	if !ok {
		return fmt.Errorf("%w: field %q is not registered", ErrInvalidRule, key)
	}
	def.chain = append(def.chain, token)
	return nil
}

// FieldRules returns the stored, unfiltered token chain for key.
func (v *Validator) FieldRules(key string) ([]string, error) {
	def, ok := v.fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: field %q is not registered", ErrInvalidRule, key)
	}
	chain := make([]string, len(def.chain))
	copy(chain, def.chain)
	return chain, nil
}

// AllFieldRules returns every registered field's token chain keyed by field.
func (v *Validator) AllFieldRules() map[string][]string {
	all := make(map[string][]string, len(v.fields))
	for key, def := range v.fields {
		chain := make([]string, len(def.chain))
		copy(chain, def.chain)
		all[key] = chain
	}
	return all
}

// FieldName returns the human-readable name registered for key.
func (v *Validator) FieldName(key string) (string, error) {
	def, ok := v.fields[key]
	if !ok {
		return "", fmt.Errorf("%w: field %q is not registered", ErrInvalidRule, key)
	}
	return def.fieldName, nil
}

// IsFieldRequired reports whether the stored chain contains the required
// marker literal.
func (v *Validator) IsFieldRequired(key string) bool {
	def, ok := v.fields[key]
	return ok && def.hasMarker(rules.Required)
}

// IsFieldNullable reports whether the stored chain contains the nullable
// marker literal.
func (v *Validator) IsFieldNullable(key string) bool {
	def, ok := v.fields[key]
	return ok && def.hasMarker(rules.Nullable)
}

// ValidatedField returns the value key holds after a successful run. It
// fails with ErrNotRun before any successful Run and with ErrInvalidRule for
// a never-registered key. A registered field that failed or was skipped
// yields (nil, nil).
func (v *Validator) ValidatedField(key string) (any, error) {
	if !v.runComplete {
		return nil, fmt.Errorf("%w: call Run before reading validated fields", ErrNotRun)
	}
	if _, ok := v.fields[key]; !ok {
		return nil, fmt.Errorf("%w: field %q is not registered", ErrInvalidRule, key)
	}
	return v.validated[key], nil
}

// ValidatedFields returns the keys that passed their full chain, in
// registration order.
func (v *Validator) ValidatedFields() []string {
	keys := make([]string, 0, len(v.validated))
	for _, key := range v.order {
		if _, ok := v.validated[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// FailedFields returns the keys with a recorded error, in failure order.
func (v *Validator) FailedFields() []string {
	keys := make([]string, len(v.failureOrder))
	copy(keys, v.failureOrder)
	return keys
}

// IsFieldFailed reports whether key has a recorded error.
func (v *Validator) IsFieldFailed(key string) bool {
	_, ok := v.failures[key]
	return ok
}
