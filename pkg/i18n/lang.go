package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers while
// preventing memory exhaustion from malicious requests.
const maxAcceptLanguageLength = 4096

// MatchLocale negotiates the best supported locale for an Accept-Language
// header using BCP 47 matching from golang.org/x/text. Regional variants match
// their base language (en-US matches en) and quality values are respected.
// Returns defaultLocale when the header is empty, unparsable, or nothing matches.
func MatchLocale(header string, supported []string, defaultLocale string) string {
	if header == "" || len(supported) == 0 {
		return defaultLocale
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	// Keep the locale strings parallel to the tag list: the matcher's index
	// refers to the tags it was built from, not to the caller's slice, so
	// skipped unparsable entries must be skipped in both.
	tags := make([]language.Tag, 0, len(supported))
	locales := make([]string, 0, len(supported))
	for _, locale := range supported {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		locales = append(locales, locale)
	}
	if len(tags) == 0 {
		return defaultLocale
	}

	preferred, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return defaultLocale
	}

	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(preferred...)
	if conf == language.No {
		return defaultLocale
	}

	return locales[idx]
}
