package checklist

import (
	"log/slog"

	"github.com/dmitrymomot/checklist/pkg/check"
	"github.com/dmitrymomot/checklist/pkg/logger"
	"github.com/dmitrymomot/checklist/pkg/value"
)

// Observer is notified after every evaluation of a registered field.
// err is non-nil when the value kind did not fit the field's rules.
type Observer interface {
	Observe(field string, v value.Value, verdict check.Verdict, err error)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(field string, v value.Value, verdict check.Verdict, err error)

func (f ObserverFunc) Observe(field string, v value.Value, verdict check.Verdict, err error) {
	f(field, v, verdict, err)
}

type config struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures a CheckList.
type Option func(*config)

// WithLogger sets the logger used for build and evaluation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an observer called after each evaluation.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

func defaultConfig() *config {
	return &config{
		logger: logger.Discard(),
	}
}
