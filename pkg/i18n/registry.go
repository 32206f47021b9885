package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultLocale is the locale used for current and fallback when nothing else is configured
const DefaultLocale = "en"

// Registry owns the loaded message trees and answers template lookups with
// deterministic fallback. It is safe for concurrent use: reads never block on
// in-flight loads, and replacing a locale is atomic with respect to readers.
//
// Registries are plain values wired explicitly into consumers; there is no
// package-level default instance, so tests can run isolated registries in parallel.
type Registry struct {
	messages   map[string]map[string]any
	locale     string
	fallback   string
	loader     Loader
	logger     *slog.Logger
	missingLog bool
	mu         sync.RWMutex
	group      singleflight.Group
}

// NewRegistry creates a Registry and, when a loader is configured, eagerly
// loads the fallback locale so lookups always have a tree to fall back to.
func NewRegistry(ctx context.Context, options ...Option) (*Registry, error) {
	r := &Registry{
		messages: make(map[string]map[string]any),
		locale:   DefaultLocale,
		fallback: DefaultLocale,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}

	for _, option := range options {
		option(r)
	}

	if r.loader != nil {
		if err := r.LoadLocale(ctx, r.fallback); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// RegisterMessages inserts or replaces the full message tree for a locale.
// There are no partial merges: replacing a locale discards any previously
// registered data for it. The swap is atomic: readers see either the old
// tree or the new one, never a half-replaced state.
func (r *Registry) RegisterMessages(locale string, tree map[string]any) error {
	if locale == "" {
		return ErrEmptyLocale
	}
	if tree == nil {
		return fmt.Errorf("%w: locale %s", ErrNilMessages, locale)
	}

	r.mu.Lock()
	r.messages[locale] = tree
	r.mu.Unlock()

	r.logger.Info("Locale registered", "locale", locale)
	return nil
}

// LoadLocale fetches a locale's message tree through the configured loader and
// registers it. Already-loaded locales are a no-op. Concurrent calls for the
// same unloaded locale collapse into one underlying fetch; every caller
// observes the same completed result.
func (r *Registry) LoadLocale(ctx context.Context, locale string) error {
	if locale == "" {
		return ErrEmptyLocale
	}
	if r.HasLocale(locale) {
		return nil
	}
	if r.loader == nil {
		return fmt.Errorf("%w: cannot load locale %s", ErrNoLoaderSet, locale)
	}

	// The fetch runs detached from the individual caller's context: the
	// flight is shared, so one caller abandoning must not fail the others,
	// and an abandoned load that completes still registers correctly.
	loadCtx := context.WithoutCancel(ctx)
	_, err, _ := r.group.Do(locale, func() (any, error) {
		// Re-check under the flight: a previous flight may have registered it.
		if r.HasLocale(locale) {
			return nil, nil
		}
		tree, err := r.loader.Load(loadCtx, locale)
		if err != nil {
			return nil, err
		}
		return nil, r.RegisterMessages(locale, tree)
	})
	return err
}

// LoadLocales loads a batch of locales with all-attempted semantics: every
// locale is tried, individual failures are collected, and a single aggregate
// error reports which locales failed.
func (r *Registry) LoadLocales(ctx context.Context, locales ...string) error {
	var failures []error
	for _, locale := range locales {
		if err := r.LoadLocale(ctx, locale); err != nil {
			failures = append(failures, fmt.Errorf("locale %s: %w", locale, err))
		}
	}

	if len(failures) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrLocalesNotFound}, failures...)...)
}

// EnsureLocaleLoaded loads the current locale if it is not loaded yet.
func (r *Registry) EnsureLocaleLoaded(ctx context.Context) error {
	return r.LoadLocale(ctx, r.Locale())
}

// SetLocale changes the current locale. The locale need not be loaded yet:
// lookups fall back to the fallback locale until it is.
func (r *Registry) SetLocale(locale string) {
	if locale == "" {
		return
	}
	r.mu.Lock()
	r.locale = locale
	r.mu.Unlock()
}

// Locale returns the current locale.
func (r *Registry) Locale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locale
}

// SetFallbackLocale changes the fallback locale used when a key is missing
// from the requested locale's tree.
func (r *Registry) SetFallbackLocale(locale string) {
	if locale == "" {
		return
	}
	r.mu.Lock()
	r.fallback = locale
	r.mu.Unlock()
}

// FallbackLocale returns the fallback locale.
func (r *Registry) FallbackLocale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// HasLocale reports whether a locale's messages are loaded.
func (r *Registry) HasLocale(locale string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.messages[locale]
	return ok
}

// AvailableLocales returns the sorted list of loaded locale codes.
func (r *Registry) AvailableLocales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locales := make([]string, 0, len(r.messages))
	for locale := range r.messages {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasMessage reports whether a dotted key resolves to a template string in the
// given locale or, failing that, in the fallback locale. When no locale is
// passed the current locale is checked.
func (r *Registry) HasMessage(key string, locale ...string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.resolve(key, r.pickLocale(locale))
	return ok
}

// Message resolves a dotted key (e.g. "string.required") against the given
// locale (or the current locale when none is passed) and interpolates
// {param} placeholders from params.
//
// Missing locale data is a soft failure: an absent key falls back to the
// fallback locale, and a key absent everywhere yields a synthetic placeholder
// naming the missing key rather than an error. A placeholder referencing a
// param absent from params is left as literal text. Error-message quality must
// never break the validation run that asked for the message.
//
// Example:
//
//	// With "string.tooShort": "{fieldName} must be at least {min} characters"
//	msg := registry.Message("string.tooShort", map[string]any{
//		"fieldName": "Password",
//		"min":       8,
//	})
//	// Returns: "Password must be at least 8 characters"
func (r *Registry) Message(key string, params map[string]any, locale ...string) string {
	r.mu.RLock()
	loc := r.pickLocale(locale)
	template, ok := r.resolve(key, loc)
	r.mu.RUnlock()

	if !ok {
		if r.missingLog {
			r.logger.Warn("Message not found", "key", key, "locale", loc)
		}
		return missingKeyPlaceholder(key)
	}

	return Interpolate(template, params)
}

// pickLocale returns the explicit locale override or the current locale.
// Callers must hold at least a read lock when the override is empty.
func (r *Registry) pickLocale(locale []string) string {
	if len(locale) > 0 && locale[0] != "" {
		return locale[0]
	}
	return r.locale
}

// resolve looks a key up in the given locale's tree, then in the fallback
// locale's tree. Callers must hold at least a read lock.
func (r *Registry) resolve(key, locale string) (string, bool) {
	if tree, ok := r.messages[locale]; ok {
		if template, ok := lookup(tree, key); ok {
			return template, true
		}
	}
	if locale != r.fallback {
		if tree, ok := r.messages[r.fallback]; ok {
			if template, ok := lookup(tree, key); ok {
				return template, true
			}
		}
	}
	return "", false
}

// lookup traverses a nested map using dot-separated keys.
// For example, key "phone.examples.e164" traverses m["phone"] then
// ["examples"] then ["e164"]. Only string leaves count as hits; landing on a
// nested group is a miss.
func lookup(m map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			if !ok {
				return "", false
			}
			s, ok := val.(string)
			return s, ok
		}

		next, ok := current[part]
		if !ok {
			return "", false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			// YAML decoders may produce map[any]any for nested groups
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return "", false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return "", false
}

// missingKeyPlaceholder builds the synthetic string returned for keys absent
// from every loaded locale. It is deliberately ugly so it gets noticed in QA
// while staying harmless in production output.
func missingKeyPlaceholder(key string) string {
	return "!(missing: " + key + ")"
}

// Regex to find named parameters in the form {name}
var paramRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// Interpolate substitutes {name} placeholders in a template using the provided
// params. Values are rendered with fmt.Sprint. Placeholders without a matching
// param are kept as literal text.
func Interpolate(template string, params map[string]any) string {
	if len(params) == 0 {
		return template
	}
	return paramRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
