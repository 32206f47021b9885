package i18n

import (
	"io"
	"log/slog"
)

// Option is a function that configures a Registry instance.
type Option func(*Registry)

// WithLocale sets the initial current locale.
// The locale does not need to be loaded yet; lookups fall back until it is.
func WithLocale(locale string) Option {
	return func(r *Registry) {
		if locale != "" {
			r.locale = locale
		}
	}
}

// WithFallbackLocale sets the locale used when a key is missing from the
// requested locale. It is loaded eagerly at construction when a loader is set.
func WithFallbackLocale(locale string) Option {
	return func(r *Registry) {
		if locale != "" {
			r.fallback = locale
		}
	}
}

// WithLoader configures the source additional locales are fetched from on demand.
func WithLoader(loader Loader) Option {
	return func(r *Registry) {
		r.loader = loader
	}
}

// WithLogger provides a customizable logger for the registry.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMissingKeyLogging controls whether lookups of missing keys are logged.
// Default is false to avoid excessive logging.
func WithMissingKeyLogging(log bool) Option {
	return func(r *Registry) {
		r.missingLog = log
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(r *Registry) {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		r.missingLog = false
	}
}
