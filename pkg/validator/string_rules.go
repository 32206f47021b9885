package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty or whitespace-only.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "is required",
			Group:   "string",
			Key:     "required",
			Params:  map[string]any{"field": field},
		},
	}
}

// MinLen validates that a string has at least min characters.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Group:   "string",
			Key:     "tooShort",
			Params: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen validates that a string has at most max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Group:   "string",
			Key:     "tooLong",
			Params: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
