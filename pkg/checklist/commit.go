package checklist

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/checklist/pkg/check"
	"github.com/dmitrymomot/checklist/pkg/value"
)

// Commit is the immutable record of one evaluation.
// Commits compare equal when field, value and verdict are equal.
type Commit struct {
	field   string
	value   value.Value
	verdict check.Verdict
}

func (c Commit) Field() string {
	return c.field
}

// Value returns the evaluated value.
func (c Commit) Value() value.Value {
	return c.value
}

func (c Commit) Verdict() check.Verdict {
	return c.verdict
}

// Err returns an error naming the field when the verdict is Error, nil otherwise.
func (c Commit) Err() error {
	if err := c.verdict.Err(); err != nil {
		return fmt.Errorf("%s: %w", c.field, err)
	}
	return nil
}

func (c Commit) String() string {
	return fmt.Sprintf("%s=%s (%s)", c.field, c.value, c.verdict)
}

type wireCommit struct {
	Field    string         `json:"field" yaml:"field"`
	Value    string         `json:"value" yaml:"value"`
	Kind     value.Kind     `json:"kind" yaml:"kind"`
	Severity check.Severity `json:"severity" yaml:"severity"`
	Message  string         `json:"message,omitempty" yaml:"message,omitempty"`
}

func (c Commit) wire() wireCommit {
	return wireCommit{
		Field:    c.field,
		Value:    c.value.String(),
		Kind:     c.value.Kind(),
		Severity: c.verdict.Severity(),
		Message:  c.verdict.Message(),
	}
}

func (c Commit) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wire())
}

func (c Commit) MarshalYAML() (any, error) {
	return c.wire(), nil
}
