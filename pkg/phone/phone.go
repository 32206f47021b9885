package phone

import "strings"

// Format selects the canonical output shape produced by Normalize.
type Format int

const (
	// E164 produces "+1" followed by ten digits.
	E164 Format = iota
	// National produces the bare ten-digit form without a country code.
	National
)

// String returns the format name for logging and error messages.
func (f Format) String() string {
	switch f {
	case E164:
		return "e164"
	case National:
		return "national"
	default:
		return "unknown"
	}
}

// Normalize canonicalises free-form US phone input into the requested format.
// The boolean reports whether the input was recognisable; on false the string
// result is empty. Normalize never returns an error; the caller owns the
// decision of what unrecognisable input means.
//
// Resolution order matters: a bare ten-digit sequence is taken as domestic
// before the eleven-digit-with-country-code reading is tried, and the strict
// E.164 check runs against the original string because digit-stripping erases
// the distinction between "+1" and a literal leading 1.
func Normalize(raw string, format Format) (string, bool) {
	digits := nonDigitRegex.ReplaceAllString(raw, "")

	switch {
	case len(digits) == 10:
		if format == E164 {
			return "+1" + digits, true
		}
		return digits, true

	case len(digits) == 11 && digits[0] == '1':
		if format == E164 {
			return "+" + digits, true
		}
		return digits[1:], true

	case e164Regex.MatchString(raw):
		// Already-canonical E.164 input passes through untouched, which
		// keeps Normalize safe to apply twice.
		if format == E164 {
			return raw, true
		}
		return strings.TrimPrefix(raw, "+1"), true
	}

	return "", false
}

// IsE164 reports whether value is a canonical E.164 US number ("+1" plus ten digits).
func IsE164(value string) bool {
	return e164Regex.MatchString(value)
}

// IsNational reports whether value is a canonical national US number (exactly ten digits).
func IsNational(value string) bool {
	return nationalRegex.MatchString(value)
}

// ExtractDigits strips all non-digit characters from the input.
func ExtractDigits(raw string) string {
	return nonDigitRegex.ReplaceAllString(raw, "")
}

// FormatNational renders a number as "(555) 123-4567" for display.
// Input that does not normalize to ten digits is returned unchanged to avoid data loss.
func FormatNational(raw string) string {
	digits, ok := Normalize(raw, National)
	if !ok {
		return raw
	}
	return "(" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:10]
}

// Mask follows the PCI pattern of showing only the last 4 digits for user
// recognition. Numbers of four digits or fewer are fully masked so the
// "revealed" suffix can never be the entire number.
func Mask(raw string) string {
	digits := ExtractDigits(raw)
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
