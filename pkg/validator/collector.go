package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TracyFogel/nbd.php-validation/pkg/rules"
)

// FieldError associates a failed field with the rule that rejected it and
// the invocation context captured at failure time. Rendering is lazy: the
// template is read from the rule and substituted only when a message is
// requested, so template changes between failure and read are visible.
type FieldError struct {
	Field    string
	RuleName string

	rule rules.Rule
	ctx  *rules.Context
}

// Template returns the rule's raw, unsubstituted error template.
func (e *FieldError) Template() string { return e.rule.ErrorTemplate() }

// RenderingContext builds the substitution context: the captured invocation
// state ({field}, {fieldName}, {ruleName}, {param0}...), enriched by the
// rule's FormattingContext when it provides one.
func (e *FieldError) RenderingContext() map[string]any {
	ctx := map[string]any{
		"field":     e.ctx.Field,
		"fieldName": e.ctx.FieldName,
		"ruleName":  e.ctx.RuleName,
	}
	for i, p := range e.ctx.Parameters {
		ctx["param"+strconv.Itoa(i)] = p
	}
	if formatter, ok := e.rule.(rules.FormattingRule); ok {
		for k, v := range formatter.FormattingContext(e.ctx) {
			ctx[k] = v
		}
	}
	return ctx
}

// Message renders the human-readable message for this failure.
func (e *FieldError) Message() string {
	return renderTemplate(e.Template(), e.RenderingContext())
}

// renderTemplate substitutes {name} placeholders from the rendering context.
// Unknown placeholders are left as-is.
func renderTemplate(template string, ctx map[string]any) string {
	for name, value := range ctx {
		template = strings.ReplaceAll(template, "{"+name+"}", fmt.Sprint(value))
	}
	return template
}

// FieldError returns the recorded error for key, if any.
func (v *Validator) FieldError(key string) (*FieldError, bool) {
	fe, ok := v.failures[key]
	return fe, ok
}

// ErrorMessage returns the rendered message for a failed key.
func (v *Validator) ErrorMessage(key string) (string, bool) {
	fe, ok := v.failures[key]
	if !ok {
		return "", false
	}
	return fe.Message(), true
}

// ErrorTemplate returns the raw template for a failed key.
func (v *Validator) ErrorTemplate(key string) (string, bool) {
	fe, ok := v.failures[key]
	if !ok {
		return "", false
	}
	return fe.Template(), true
}

// RenderingContext returns the substitution context for a failed key.
func (v *Validator) RenderingContext(key string) (map[string]any, bool) {
	fe, ok := v.failures[key]
	if !ok {
		return nil, false
	}
	return fe.RenderingContext(), true
}

// ErrorMessages renders every failed field's message, in failure order
// (field registration order intersected with the fields that failed).
func (v *Validator) ErrorMessages() []string {
	messages := make([]string, 0, len(v.failureOrder))
	for _, key := range v.failureOrder {
		messages = append(messages, v.failures[key].Message())
	}
	return messages
}

// JoinedErrorMessages renders and joins every failed field's message with
// the given delimiter.
func (v *Validator) JoinedErrorMessages(delimiter string) string {
	return strings.Join(v.ErrorMessages(), delimiter)
}

// AddFieldFailure injects a failure for an already registered field from
// outside the chain, e.g. a cross-cutting business check, using an ad-hoc
// template rule. It fails with ErrInvalidRule if the field was never
// registered. Any validated entry for the key is evicted.
func (v *Validator) AddFieldFailure(key, template string) error {
	def, ok := v.fields[key]
	if !ok {
		return fmt.Errorf("%w: field %q is not registered", ErrInvalidRule, key)
	}
	v.recordFailure(def, rules.NewTemplateRule(template), &rules.Context{
		Field:     def.key,
		FieldName: def.fieldName,
		RuleName:  "fieldFailure",
		Cage:      v,
	})
	return nil
}
