package i18n

import (
	"context"
	"strings"
)

// Parser is an interface for parsing a single locale's message tree from various file formats.
type Parser interface {
	// Parse processes the given content string and returns a nested message tree.
	// Keys are message groups (e.g. "string", "phone") whose values are either
	// template strings or further nested maps.
	Parse(ctx context.Context, content string) (map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot (e.g. both "json" and ".json" are valid).
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension
func NewParserForFile(filename string) Parser {
	ext := getFileExtension(filename)

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// getFileExtension extracts the extension from a filename
func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
