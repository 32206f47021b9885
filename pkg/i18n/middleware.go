package i18n

import (
	"net/http"
)

// LocaleExtractor is a function type that extracts a locale code from an HTTP request.
// This is typically used to determine the user's preferred language for localization.
type LocaleExtractor func(r *http.Request) string

// HeaderExtractor returns an extractor that negotiates the locale from the
// Accept-Language header against the registry's loaded locales.
func HeaderExtractor(registry *Registry) LocaleExtractor {
	return func(r *http.Request) string {
		return MatchLocale(r.Header.Get("Accept-Language"), registry.AvailableLocales(), registry.FallbackLocale())
	}
}

// Middleware returns an HTTP middleware that determines the client's preferred
// locale and stores it in the request context.
//
// The middleware attempts to determine the locale using the provided extractor
// function. If no extractor is provided, the Accept-Language header is
// negotiated against the registry's loaded locales. If the extractor returns
// an empty string, the middleware falls back to the registry's fallback locale.
//
// The determined locale is stored in the request context using SetLocale and
// can be retrieved later with GetLocale.
func Middleware(registry *Registry, extr LocaleExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = HeaderExtractor(registry)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := extr(r)
			if locale == "" {
				locale = registry.FallbackLocale()
			}

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), locale)))
		})
	}
}
