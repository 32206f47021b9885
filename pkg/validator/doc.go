// Package validator provides a small, composable set of validation rules for
// common field types: strings, emails, URLs, UUIDs and US phone numbers.
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with rich,
// localization-ready error metadata. Rules are evaluated with the Apply
// helper which aggregates any failures into a ValidationErrors slice that
// satisfies the error interface, making it convenient to bubble up multiple
// field-specific problems in a single error return.
//
// Every ValidationError carries a (group, key, params) triple addressing a
// message template, so the whole result can be rendered for the user's locale
// through the errmsg formatter:
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.Email("email", email),
//	    validator.Phone("contactPhone", rawPhone, phone.E164),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    byField := verrs.Localize(formatter)
//	    // byField["email"] == ["email must be a valid email address", ...]
//	}
//
// There is no hidden global state; the package is completely stateless,
// allocation-light, and goroutine-safe.
package validator
