package rules

// Reserved chain tokens. Required and Nullable are markers interpreted by the
// execution engine itself; Filter is dispatched like any other rule but with
// the mutating invocation shape.
const (
	Required = "required"
	Nullable = "nullable"
	Filter   = "filter"
)

// DataAccessor gives a rule read access to the raw cage snapshot, so that
// cross-field rules such as matches can inspect other fields' values.
type DataAccessor interface {
	// CageValue returns the raw value for key and whether the key exists.
	CageValue(key string) (any, bool)
}

// Context carries per-invocation state to a rule. Field, FieldName and Cage
// are stable for the duration of one field's chain; RuleName and Parameters
// describe the current chain entry.
type Context struct {
	Field      string
	FieldName  string
	RuleName   string
	Parameters []string
	Cage       DataAccessor
}

// Rule is the capability every registered rule must provide: a boolean
// predicate over a raw value and a raw, unsubstituted error template.
// Parameter coercion (string to int, etc.) is each rule's own responsibility.
type Rule interface {
	IsValid(value any, ctx *Context) bool
	ErrorTemplate() string
}

// FilterRule is the mutating invocation shape. Filter returns the possibly
// rewritten value together with the pass/fail result; the engine replaces the
// field's working value with the returned one on success.
type FilterRule interface {
	Rule
	Filter(value any, ctx *Context) (any, bool)
}

// FormattingRule lets a rule enrich the rendering context before its error
// template is substituted (for example, range exposes {min} and {max}).
type FormattingRule interface {
	Rule
	FormattingContext(ctx *Context) map[string]any
}

// CallbackFunc is the ad-hoc rule shape: a bare predicate supplied in place
// of a rule name. The parser registers it under a synthesized unique name.
type CallbackFunc func(value any, ctx *Context) bool

type callbackRule struct {
	fn CallbackFunc
}

func (r callbackRule) IsValid(value any, ctx *Context) bool { return r.fn(value, ctx) }
func (r callbackRule) ErrorTemplate() string                { return "{fieldName} is invalid." }

// NewCallback wraps a bare predicate into a Rule value.
func NewCallback(fn CallbackFunc) Rule { return callbackRule{fn: fn} }

type templateRule struct {
	template string
}

func (r templateRule) IsValid(any, *Context) bool { return false }
func (r templateRule) ErrorTemplate() string      { return r.template }

// NewTemplateRule returns a rule that always fails and carries the given
// error template. Used for externally injected field failures.
func NewTemplateRule(template string) Rule { return templateRule{template: template} }

// ruleFunc is the internal building block for the built-in rule set.
type ruleFunc struct {
	template string
	check    func(value any, ctx *Context) bool
	format   func(ctx *Context) map[string]any
}

func (r ruleFunc) IsValid(value any, ctx *Context) bool { return r.check(value, ctx) }
func (r ruleFunc) ErrorTemplate() string                { return r.template }

func (r ruleFunc) FormattingContext(ctx *Context) map[string]any {
	if r.format == nil {
		return nil
	}
	return r.format(ctx)
}
