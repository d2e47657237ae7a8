package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/TracyFogel/nbd.php-validation/pkg/rules"
)

// RuleSpec is the canonical form of one chain entry: a normalized rule name
// and its raw string parameters.
type RuleSpec struct {
	Name       string
	Parameters []string
}

// ParseRuleSpec parses a textual rule token. The first '[' opens the
// parameter list and the token must then end with ']'; everything between the
// brackets is split on ',' into parameter strings. There is no escaping for
// literal commas inside a parameter; rule sets may depend on that exact
// behavior, so it is preserved.
func ParseRuleSpec(token string) (RuleSpec, error) {
	open := strings.IndexByte(token, '[')
	if open < 0 {
		return RuleSpec{Name: normalizeRuleName(token)}, nil
	}
	if !strings.HasSuffix(token, "]") || len(token) < open+2 {
		return RuleSpec{}, fmt.Errorf("%w: unterminated parameter list in rule token %q", ErrRuleRequirement, token)
	}
	return RuleSpec{
		Name:       normalizeRuleName(token[:open]),
		Parameters: strings.Split(token[open+1:len(token)-1], ","),
	}, nil
}

// normalizeRuleName lower-cases the first character only, so lookups behave
// the same whether the caller wrote "Email" or "email".
func normalizeRuleName(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return name
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// normalizeChain flattens registration input into token strings. String
// entries may be '|'-delimited and are split, with empty segments dropped.
// Function-valued entries are registered with the provider under a
// process-unique synthetic name and replaced by that name.
func (v *Validator) normalizeChain(ruleChain []any) ([]string, error) {
	var tokens []string
	for _, entry := range ruleChain {
		switch e := entry.(type) {
		case string:
			for _, token := range strings.Split(e, "|") {
				if token != "" {
					tokens = append(tokens, token)
				}
			}
		case rules.CallbackFunc:
			tokens = append(tokens, v.registerCallback(e))
		case func(any, *rules.Context) bool:
			tokens = append(tokens, v.registerCallback(e))
		case rules.Rule:
			name, err := v.registerAdHocRule(e)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, name)
		default:
			return nil, fmt.Errorf("%w: unsupported rule token type %T", ErrInvalidRule, entry)
		}
	}
	return tokens, nil
}

func (v *Validator) registerCallback(fn rules.CallbackFunc) string {
	name := syntheticRuleName()
	v.provider.SetCallbackRule(name, fn)
	return name
}

// ruleRegistrar is the optional provider capability needed to accept full
// Rule values, not just bare callbacks.
type ruleRegistrar interface {
	Register(name string, rule rules.Rule)
}

func (v *Validator) registerAdHocRule(rule rules.Rule) (string, error) {
	registrar, ok := v.provider.(ruleRegistrar)
	if !ok {
		return "", fmt.Errorf("%w: provider %T cannot register ad-hoc rule values", ErrInvalidRule, v.provider)
	}
	name := syntheticRuleName()
	registrar.Register(name, rule)
	return name, nil
}

func syntheticRuleName() string {
	return "callback_" + uuid.NewString()
}
