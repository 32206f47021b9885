package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/i18n"
)

func TestMatchLocale(t *testing.T) {
	supported := []string{"en", "es", "fr"}

	t.Run("matches exact language", func(t *testing.T) {
		assert.Equal(t, "es", i18n.MatchLocale("es", supported, "en"))
	})

	t.Run("matches regional variant to base language", func(t *testing.T) {
		assert.Equal(t, "es", i18n.MatchLocale("es-MX", supported, "en"))
	})

	t.Run("respects quality ordering", func(t *testing.T) {
		assert.Equal(t, "fr", i18n.MatchLocale("fr;q=0.9, de;q=0.8", supported, "en"))
	})

	t.Run("prefers higher quality match", func(t *testing.T) {
		assert.Equal(t, "es", i18n.MatchLocale("es;q=1.0, fr;q=0.5", supported, "en"))
	})

	t.Run("falls back to default for empty header", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLocale("", supported, "en"))
	})

	t.Run("falls back to default for unsupported language", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLocale("zh", supported, "en"))
	})

	t.Run("falls back to default with no supported locales", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLocale("es", nil, "en"))
	})

	t.Run("falls back to default for malformed header", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLocale(";;;===", supported, "en"))
	})

	t.Run("skips unparsable supported entries without shifting the result", func(t *testing.T) {
		assert.Equal(t, "es", i18n.MatchLocale("es", []string{"!!", "en", "es"}, "fallback"))
		assert.Equal(t, "en", i18n.MatchLocale("en", []string{"!!", "en", "es"}, "fallback"))
	})

	t.Run("falls back when no supported entry parses", func(t *testing.T) {
		assert.Equal(t, "en", i18n.MatchLocale("es", []string{"!!", "??"}, "en"))
	})

	t.Run("degrades gracefully on oversized headers", func(t *testing.T) {
		header := "es," + strings.Repeat("x", 10000)
		got := i18n.MatchLocale(header, supported, "en")
		assert.Contains(t, append(supported, "en"), got)
	})
}
