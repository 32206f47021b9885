package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
// Loading errors are separated from parsing errors to allow callers to distinguish
// a missing locale (often recoverable) from a broken locale file (operational bug).
var (
	// Registry operations
	ErrLocaleNotFound  = errors.New("locale not found")
	ErrEmptyLocale     = errors.New("empty locale code")
	ErrNilMessages     = errors.New("nil messages tree")
	ErrNoLoaderSet     = errors.New("no loader configured")
	ErrLocalesNotFound = errors.New("one or more locales could not be loaded")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading locale file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read locale file")
	ErrFailedToParseFile    = errors.New("failed to parse locale file")
)
