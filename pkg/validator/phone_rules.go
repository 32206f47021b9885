package validator

import (
	"github.com/dmitrymomot/schemakit/pkg/phone"
)

// Phone validates that a string normalizes to a US phone number in the given
// format. The normalizer's output is advisory, so the rule re-validates it
// against the strict format pattern before accepting.
func Phone(field, value string, format phone.Format) Rule {
	return Rule{
		Check: func() bool {
			normalized, ok := phone.Normalize(value, format)
			if !ok {
				return false
			}
			switch format {
			case phone.E164:
				return phone.IsE164(normalized)
			case phone.National:
				return phone.IsNational(normalized)
			default:
				return false
			}
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number",
			Group:   "phone",
			Key:     "mustBeValidPhone",
			Params: map[string]any{
				"field":    field,
				"e164":     "+11234567890",
				"national": "1234567890",
			},
		},
	}
}
