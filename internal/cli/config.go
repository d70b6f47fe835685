package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/checklist/pkg/config"
	"github.com/dmitrymomot/checklist/pkg/logger"
)

const envPrefix = "CHECKLIST_"

var ErrUnknownLogFormat = errors.New("unknown log format")

// Config is read from CHECKLIST_* environment variables and an optional .env file.
type Config struct {
	Env       string        `env:"ENV" envDefault:"development"`
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat logger.Format `env:"LOG_FORMAT"`
	Output    string        `env:"OUTPUT" envDefault:"text"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type commandKey struct{}

func newLogger(cfg Config, stderr io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "checklist"),
		logger.WithLevel(cfg.LogLevel),
		logger.WithOutput(stderr),
		logger.WithContextValue("command", commandKey{}),
	}
	switch cfg.LogFormat {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(cfg.LogFormat))
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownLogFormat, cfg.LogFormat)
	}
	return logger.New(opts...), nil
}
