// Package phone provides helpers for canonicalising free-form US phone-number
// input into one of two fixed shapes: E.164 (`+1` followed by ten digits) or
// the bare ten-digit national format.
//
// The central helper is Normalize, a pure transform that accepts whatever the
// user typed ("(555) 123-4567", "555.123.4567", "+15551234567") and returns
// the canonical representation for the requested Format, or reports that the
// input is not recognisable as a US number. Normalization never fails with an
// error: unrecognisable input is signalled through the boolean return so the
// caller can decide whether that constitutes a validation failure.
//
// # Ambiguity rules
//
// Digit-stripping makes "+1..." and a literal leading "1" indistinguishable,
// so Normalize resolves ambiguous input in a fixed order:
//
//  1. Exactly ten digits is always a bare domestic number, even when the
//     first digit is 1 ("1234567890" keeps its leading 1 as an area-code
//     digit, it is not a truncated country code).
//  2. Exactly eleven digits with a leading 1 is a country-code-prefixed
//     number; the 1 is dropped for National output.
//  3. Input that already matches strict E.164 against the original,
//     unstripped string is accepted as-is.
//
// # Usage
//
//	e164, ok := phone.Normalize("(555) 123-4567", phone.E164)
//	// e164 == "+15551234567", ok == true
//
//	_, ok = phone.Normalize("555-1234", phone.National)
//	// ok == false, too short to be a US number
//
// The package also includes validation predicates (IsE164, IsNational) for
// re-checking normalized output, plus display helpers (FormatNational, Mask)
// and digit extraction. All functions are stateless and goroutine-safe.
package phone
