package validator

import (
	"github.com/google/uuid"
)

// UUID validates that a string is a valid UUID in canonical form.
func UUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			parsed, err := uuid.Parse(value)
			// uuid.Parse accepts urn: and braced variants; only the
			// canonical 36-character form round-trips unchanged.
			return err == nil && parsed.String() == value
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid UUID",
			Group:   "uuid",
			Key:     "mustBeValidUuid",
			Params:  map[string]any{"field": field},
		},
	}
}
