package i18n

import (
	"context"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config carries the environment-driven settings for wiring a Registry at the
// application boundary.
type Config struct {
	DefaultLocale  string `env:"I18N_DEFAULT_LOCALE" envDefault:"en"`  // Current locale at start-up
	FallbackLocale string `env:"I18N_FALLBACK_LOCALE" envDefault:"en"` // Locale used when a key is missing
	LocalesDir     string `env:"I18N_LOCALES_DIR"`                     // Directory with per-locale message files; empty disables file loading
}

// LoadConfig reads the registry configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewRegistryFromConfig builds a Registry from environment-driven config.
// When LocalesDir is set, a JSON DirLoader is attached and the fallback
// locale is loaded eagerly; pass WithLoader in options to use another format.
func NewRegistryFromConfig(ctx context.Context, cfg Config, options ...Option) (*Registry, error) {
	opts := []Option{
		WithLocale(cfg.DefaultLocale),
		WithFallbackLocale(cfg.FallbackLocale),
	}
	if cfg.LocalesDir != "" {
		opts = append(opts, WithLoader(NewDirLoader(NewJSONParser(), cfg.LocalesDir)))
	}
	opts = append(opts, options...)

	return NewRegistry(ctx, opts...)
}
