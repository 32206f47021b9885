package i18n_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/schemakit/pkg/i18n"
)

func newBenchRegistry(b *testing.B) *i18n.Registry {
	b.Helper()
	registry, err := i18n.NewRegistry(context.Background())
	if err != nil {
		b.Fatal(err)
	}
	if err := registry.RegisterMessages("en", enMessages()); err != nil {
		b.Fatal(err)
	}
	return registry
}

func BenchmarkMessage(b *testing.B) {
	registry := newBenchRegistry(b)
	params := map[string]any{"fieldName": "Password", "min": 8}

	b.Run("flat_key", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = registry.Message("string.required", params)
		}
	})

	b.Run("nested_key", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = registry.Message("phone.examples.e164", nil)
		}
	})

	b.Run("missing_key_fallback", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = registry.Message("string.nonexistent", params)
		}
	})
}

func BenchmarkMessageParallel(b *testing.B) {
	registry := newBenchRegistry(b)
	params := map[string]any{"fieldName": "Password", "min": 8}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = registry.Message("string.tooShort", params)
		}
	})
}

func BenchmarkInterpolate(b *testing.B) {
	params := map[string]any{"fieldName": "Password", "min": 8}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = i18n.Interpolate("{fieldName} must be at least {min} characters", params)
	}
}
