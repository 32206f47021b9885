package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/schemakit/pkg/errmsg"
)

// ValidationError represents a single validation error with localization support.
// Group and Key address the message template ("string" + "tooShort"); Params
// carries the interpolation arguments; Message is the plain English default
// used when no formatter is involved.
type ValidationError struct {
	Field   string
	Message string
	Group   string
	Key     string
	Params  map[string]any
}

// Request converts the error into a FormatRequest for the errmsg formatter,
// using the field name as the embedded label.
func (e ValidationError) Request() errmsg.FormatRequest {
	return errmsg.FormatRequest{
		Group:   e.Group,
		Key:     e.Key,
		Msg:     e.Field,
		MsgType: errmsg.FieldName,
		Params:  e.Params,
	}
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Localize renders every error through the formatter, keyed by field name.
// Formatter failures for a single error fall back to the plain Message so one
// malformed rule cannot hide the rest of the failures.
func (ve ValidationErrors) Localize(f *errmsg.Formatter) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		msg, ferr := f.Format(err.Request())
		if ferr != nil {
			msg = err.Message
		}
		out[err.Field] = append(out[err.Field], msg)
	}
	return out
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var verrs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			verrs = append(verrs, rule.Error)
		}
	}

	if verrs.IsEmpty() {
		return nil
	}

	return verrs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
