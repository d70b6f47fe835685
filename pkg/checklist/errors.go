package checklist

import (
	"errors"
	"fmt"
)

// ErrEmptyField is returned when an entry has no field name.
var ErrEmptyField = errors.New("empty field name")

// BuildError reports the field whose rules could not be composed.
type BuildError struct {
	Field string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("checklist: field %q: %v", e.Field, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
