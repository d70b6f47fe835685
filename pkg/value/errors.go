package value

import "errors"

var (
	// ErrNotNumeric is returned when the textual form of a value is not a number.
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrUnknownKind is returned when a kind name cannot be parsed.
	ErrUnknownKind = errors.New("unknown value kind")
)
