package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML locale files
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns a single locale's message tree
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]any, error) {
	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal([]byte(content), &tree); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	if len(tree) == 0 {
		return nil, fmt.Errorf("no messages found in YAML content")
	}

	return tree, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
