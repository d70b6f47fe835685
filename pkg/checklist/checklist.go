package checklist

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/checklist/pkg/check"
	"github.com/dmitrymomot/checklist/pkg/logger"
	"github.com/dmitrymomot/checklist/pkg/value"
)

// Entry pairs a field name with one rule for that field.
type Entry struct {
	Field string
	Rule  check.Rule
}

// On is shorthand for Entry{Field: field, Rule: rule}.
func On(field string, rule check.Rule) Entry {
	return Entry{Field: field, Rule: rule}
}

// CheckList holds one composed rule per field.
type CheckList struct {
	rules    map[string]*check.Flat
	fields   []string
	logger   *slog.Logger
	observer Observer
}

// New groups entries by field and flattens every group.
// Fields keep the order of their first appearance and rules keep their
// relative order within a field, even when entries for one field are not adjacent.
func New(entries []Entry, opts ...Option) (*CheckList, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	groups := make(map[string][]check.Rule)
	var fields []string
	for i, e := range entries {
		if e.Field == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyField, i)
		}
		if _, seen := groups[e.Field]; !seen {
			fields = append(fields, e.Field)
		}
		groups[e.Field] = append(groups[e.Field], e.Rule)
	}

	rules := make(map[string]*check.Flat, len(fields))
	for _, field := range fields {
		flat, err := check.Flatten(groups[field]...)
		if err != nil {
			cfg.logger.Warn("checklist build failed", logger.Field(field), logger.Error(err))
			return nil, &BuildError{Field: field, Err: err}
		}
		rules[field] = flat
		cfg.logger.Debug("field registered",
			logger.Field(field),
			logger.Rules(flat.Len()),
			logger.Signature(flat.Expecting()),
		)
	}

	return &CheckList{
		rules:    rules,
		fields:   fields,
		logger:   cfg.logger,
		observer: cfg.observer,
	}, nil
}

// Commit evaluates v against the rules of field.
// ok is false when the field is not registered; that is not an error.
// A value whose kind does not fit the rules yields an error wrapping
// check.ErrInvalidKind.
func (c *CheckList) Commit(field string, v value.Value) (commit Commit, ok bool, err error) {
	flat, found := c.rules[field]
	if !found {
		c.logger.Debug("unknown field", logger.Field(field))
		return Commit{}, false, nil
	}

	verdict, err := flat.Check(v)
	if c.observer != nil {
		c.observer.Observe(field, v, verdict, err)
	}
	if err != nil {
		c.logger.Warn("value rejected",
			logger.Field(field),
			logger.Kind(v.Kind()),
			logger.Signature(flat.Expecting()),
			logger.Error(err),
		)
		return Commit{}, false, fmt.Errorf("%s: %w", field, err)
	}

	c.logger.Debug("commit evaluated",
		logger.Field(field),
		logger.Value(v),
		logger.Verdict(verdict),
	)
	return Commit{field: field, value: v, verdict: verdict}, true, nil
}

// Items returns the accepted value kinds of every registered field.
func (c *CheckList) Items() map[string]check.Signature {
	items := make(map[string]check.Signature, len(c.rules))
	for field, flat := range c.rules {
		items[field] = flat.Expecting()
	}
	return items
}

// Fields returns registered field names in registration order.
func (c *CheckList) Fields() []string {
	return slices.Clone(c.fields)
}

// Lookup returns the composed rule of field.
func (c *CheckList) Lookup(field string) (*check.Flat, bool) {
	flat, ok := c.rules[field]
	return flat, ok
}

// Len returns the number of registered fields.
func (c *CheckList) Len() int {
	return len(c.rules)
}

// Has reports whether field is registered.
func (c *CheckList) Has(field string) bool {
	_, ok := c.rules[field]
	return ok
}
