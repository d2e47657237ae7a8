package rules

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

func emailRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be a valid email address.",
		check: func(value any, _ *Context) bool {
			s, ok := value.(string)
			if !ok || s == "" {
				return false
			}
			addr, err := mail.ParseAddress(s)
			// Reject display-name forms; the cage value must be the bare address.
			return err == nil && addr.Address == s
		},
	}
}

func urlRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be a valid URL.",
		check: func(value any, _ *Context) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			u, err := url.Parse(s)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
	}
}

// uuidRule validates standard UUID format with pre-validation to avoid
// expensive parsing of obviously malformed input.
func uuidRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be a valid UUID.",
		check: func(value any, _ *Context) bool {
			s, ok := value.(string)
			if !ok || len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
	}
}

var booleanLiterals = map[string]bool{
	"true": true, "false": true, "1": true, "0": true, "yes": true, "no": true,
}

func booleanRule() Rule {
	return ruleFunc{
		template: "{fieldName} must be true or false.",
		check: func(value any, _ *Context) bool {
			switch v := value.(type) {
			case bool:
				return true
			case string:
				return booleanLiterals[strings.ToLower(v)]
			case int:
				return v == 0 || v == 1
			default:
				return false
			}
		},
	}
}
