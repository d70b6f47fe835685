package value

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Numeric is the set of Go types that convert into a Number value.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Value is an immutable tagged scalar.
type Value struct {
	raw  string
	kind Kind
}

// New creates a value from its textual form and an explicit tag.
// The text is not validated against the tag.
func New(raw string, kind Kind) Value {
	return Value{raw: raw, kind: kind}
}

// FromNumber creates a Number value. Integers are rendered in base 10 and
// floats in their shortest decimal form.
func FromNumber[T Numeric](n T) Value {
	var raw string
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		raw = strconv.FormatFloat(float64(n), 'f', -1, 32)
	case reflect.Float64:
		raw = strconv.FormatFloat(float64(n), 'f', -1, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		raw = strconv.FormatUint(uint64(n), 10)
	default:
		raw = strconv.FormatInt(int64(n), 10)
	}
	return Value{raw: raw, kind: Number}
}

// FromString creates a Literal value.
func FromString(s string) Value {
	return Value{raw: s, kind: Literal}
}

// Parse creates a Number value when s parses as a float and a Literal otherwise.
func Parse(s string) Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Value{raw: s, kind: Number}
	}
	return Value{raw: s, kind: Literal}
}

// Is reports whether the value carries the given tag.
func (v Value) Is(kind Kind) bool {
	return v.kind == kind
}

func (v Value) Kind() Kind {
	return v.kind
}

// String returns the textual form the value was built from.
func (v Value) String() string {
	return v.raw
}

// Float64 parses the textual form as a 64-bit float regardless of the tag.
func (v Value) Float64() (float64, error) {
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotNumeric, err)
	}
	return f, nil
}
