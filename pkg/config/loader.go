package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	prefix   string
	envFiles []string
}

// Option configures Load.
type Option func(*options)

// WithPrefix restricts parsing to variables starting with prefix.
// The prefix is prepended to every `env` tag.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing instead of the
// default ".env". Variables already present in the environment win.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.envFiles = paths }
}

// Load populates v from environment variables based on its struct tags.
//
// A dotenv file is read first when it exists (".env" unless WithEnvFiles is
// given); a missing file is not an error.
//
// Example:
//
//	type Config struct {
//		Env      string     `env:"ENV" envDefault:"development"`
//		LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("CHECKLIST_")); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	for _, path := range o.envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
