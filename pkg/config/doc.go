// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Loads one or more dotenv files first (the default `.env` in the working
//     directory unless WithEnvFiles is given). Missing files are ignored and
//     variables already set in the process environment are never overridden.
//   - Parses the environment into any struct using `env` and `envDefault`
//     tags, optionally scoped by a variable name prefix (WithPrefix).
//   - Exposes MustLoad for binaries that cannot start without configuration.
//
// # Usage
//
//	type Config struct {
//	    Env       string        `env:"ENV" envDefault:"development"`
//	    LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat logger.Format `env:"LOG_FORMAT"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("CHECKLIST_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an existing dotenv file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
