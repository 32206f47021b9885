package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

// Email validates that a string is a parseable email address without a display name.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := mail.ParseAddress(value)
			return err == nil && addr.Address == value
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Group:   "email",
			Key:     "mustBeValidEmail",
			Params:  map[string]any{"field": field},
		},
	}
}

// URL validates that a string is an absolute http or https URL.
func URL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			u, err := url.Parse(strings.TrimSpace(value))
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL",
			Group:   "url",
			Key:     "mustBeValidUrl",
			Params:  map[string]any{"field": field},
		},
	}
}
