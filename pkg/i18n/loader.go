package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Loader fetches the message tree for a single locale on demand.
// Implementations must return ErrLocaleNotFound (possibly wrapped) when the
// locale has no backing resource, so the registry can distinguish a missing
// locale from an operational failure.
type Loader interface {
	Load(ctx context.Context, locale string) (map[string]any, error)
}

// MapLoader is a simple loader that serves locales from an in-memory map.
// Useful for tests and for applications that compile their messages in.
type MapLoader struct {
	Data map[string]map[string]any
}

// Load implements the Loader interface
func (l *MapLoader) Load(_ context.Context, locale string) (map[string]any, error) {
	tree, ok := l.Data[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocaleNotFound, locale)
	}
	return tree, nil
}

// FileLoader serves locales from a single file whose top-level keys are
// locale codes, each holding that locale's message tree:
//
//	{"en": {"string": {"required": "..."}}, "es": {...}}
type FileLoader struct {
	parser Parser
	path   string
}

// NewFileLoader creates a new FileLoader instance.
// Returns nil if parser is nil or path is empty.
func NewFileLoader(parser Parser, path string) *FileLoader {
	if parser == nil {
		return nil
	}
	if path == "" {
		return nil
	}
	return &FileLoader{parser: parser, path: path}
}

// Load implements the Loader interface
func (l *FileLoader) Load(ctx context.Context, locale string) (map[string]any, error) {
	if locale == "" {
		return nil, ErrEmptyLocale
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	// Read in a goroutine so the caller's context can cancel the wait.
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(l.path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("locale file '%s' is empty", l.path)
	}

	all, err := l.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}

	tree, ok := all[locale].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s (no entry in '%s')", ErrLocaleNotFound, locale, l.path)
	}

	return tree, nil
}

// DirLoader serves locales from a directory on the local filesystem.
// Each locale lives in its own file named "<locale>.<ext>" where the
// extension is one the parser supports (e.g. "en.json", "es-MX.yaml").
type DirLoader struct {
	parser Parser
	dir    string
}

// NewDirLoader creates a new DirLoader instance.
// Returns nil if parser is nil or dir is empty.
func NewDirLoader(parser Parser, dir string) *DirLoader {
	if parser == nil {
		return nil
	}
	if dir == "" {
		return nil
	}
	return &DirLoader{parser: parser, dir: dir}
}

// Load implements the Loader interface
func (l *DirLoader) Load(ctx context.Context, locale string) (map[string]any, error) {
	if locale == "" {
		return nil, ErrEmptyLocale
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	path, err := l.localeFile(locale)
	if err != nil {
		return nil, err
	}

	// Read in a goroutine so the caller's context can cancel the wait.
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("locale file '%s' is empty", path)
	}

	tree, err := l.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("parser returned nil messages for file '%s'", path)
	}

	return tree, nil
}

// localeFile finds the file for a locale, trying each extension the parser supports.
func (l *DirLoader) localeFile(locale string) (string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return "", errors.Join(ErrFailedToReadFile, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext == "" || !l.parser.SupportsFileExtension(ext[1:]) {
			continue
		}
		if name[:len(name)-len(ext)] == locale {
			return filepath.Join(l.dir, name), nil
		}
	}

	return "", fmt.Errorf("%w: %s (no file in '%s')", ErrLocaleNotFound, locale, l.dir)
}

// FSLoader serves locales from any fs.FS, typically an embed.FS bundled into
// the binary. File naming follows the DirLoader convention.
type FSLoader struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSLoader creates a new FSLoader instance.
// Returns nil if parser is nil, fsys is nil, or dir is empty.
func NewFSLoader(parser Parser, fsys fs.FS, dir string) *FSLoader {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		return nil
	}
	return &FSLoader{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the Loader interface
func (l *FSLoader) Load(ctx context.Context, locale string) (map[string]any, error) {
	if locale == "" {
		return nil, ErrEmptyLocale
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext == "" || !l.parser.SupportsFileExtension(ext[1:]) {
			continue
		}
		if name[:len(name)-len(ext)] != locale {
			continue
		}

		content, err := fs.ReadFile(l.fsys, filepath.Join(l.dir, name))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("locale file '%s' is empty", name)
		}

		tree, err := l.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, err)
		}
		return tree, nil
	}

	return nil, fmt.Errorf("%w: %s (no file in '%s')", ErrLocaleNotFound, locale, l.dir)
}
