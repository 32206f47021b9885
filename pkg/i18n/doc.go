// Package i18n provides locale-aware message storage and lookup for
// validation error messages. It focuses on predictable fallback behaviour,
// performance and robust degradation while remaining thread-safe for
// concurrent use in production environments.
//
// The package allows you to:
//
//   - Register whole message trees per locale, or load them on demand from the
//     local file-system, an fs.FS (including embed.FS), or any custom storage
//     by implementing the Loader interface.
//   - Resolve dotted message keys ("string.required", "phone.mustBeValidPhone")
//     with automatic fallback to a configured fallback locale and a synthetic
//     placeholder for keys that exist nowhere, so a missing message never breaks
//     the caller.
//   - Interpolate named placeholders (`{fieldName}`, `{min}`) into templates,
//     leaving unresolved placeholders as visible literal text.
//   - Negotiate the user's locale from the Accept-Language header via BCP 47
//     matching, and carry the chosen locale through a request context with the
//     bundled net/http middleware.
//
// # Architecture
//
// At its core the package revolves around the Registry type which owns every
// loaded message tree behind a read-write mutex. Storage concerns are
// delegated to a Loader implementation that fetches one locale's tree at a
// time; ready-made loaders for in-memory maps, directories and `fs.FS` are
// included. Concurrent loads of the same locale collapse into one underlying
// fetch, so warming a locale from many goroutines performs a single read.
//
// A locale entry only ever moves forward: unregistered, loading, loaded.
// Loaded locales are retained for the process lifetime. There is no eviction,
// which keeps the read path lock-free of loader machinery after warm-up and is
// a deliberate trade-off for the small, fixed locale sets this package targets.
//
// # Usage
//
// Basic set-up with a directory loader:
//
//	registry, err := i18n.NewRegistry(ctx,
//		i18n.WithLoader(i18n.NewDirLoader(i18n.NewYAMLParser(), "./locales")),
//		i18n.WithFallbackLocale("en"),
//	)
//	if err != nil {
//		log.Fatalf("failed to init registry: %v", err)
//	}
//
//	msg := registry.Message("string.tooShort", map[string]any{
//		"fieldName": "Password",
//		"min":       8,
//	})
//	// msg == "Password must be at least 8 characters"
//
// Additional locales load lazily and concurrently-safely:
//
//	if err := registry.LoadLocales(ctx, "es", "fr", "de"); err != nil {
//		// aggregate error naming each locale that failed; the rest are loaded
//	}
//
// # Error Handling
//
// Missing keys and missing locale data are soft failures that degrade to
// best-effort strings. Only loading surfaces real errors: ErrLocaleNotFound
// for locales with no backing resource, and parse/read errors joined with
// their sentinel for everything else, e.g.:
//
//	if errors.Is(err, i18n.ErrLocaleNotFound) {
//	    // fallback logic
//	}
//
// The package never logs unless given a logger; by default it stays silent and
// leaves presentation policy to the application.
package i18n
