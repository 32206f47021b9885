package phone

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Digit extraction
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Canonical output shapes
	e164Regex     = regexp.MustCompile(`^\+1\d{10}$`)
	nationalRegex = regexp.MustCompile(`^\d{10}$`)
)
