package check

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/checklist/pkg/value"
)

// Any accepts every value of any kind.
func Any() Rule {
	return anyRule{}
}

type anyRule struct{}

func (anyRule) Check(value.Value) (Verdict, error) {
	return Clear(), nil
}

func (anyRule) Expecting() Signature {
	return Accepting(value.Number, value.Literal)
}

// Exact reports Attention(message) unless the value's text equals expected.
func Exact(expected, message string) Rule {
	return &exactRule{expected: expected, message: message}
}

type exactRule struct {
	expected string
	message  string
}

func (r *exactRule) Check(v value.Value) (Verdict, error) {
	if v.String() == r.expected {
		return Clear(), nil
	}
	return Attention(r.message), nil
}

func (r *exactRule) Expecting() Signature {
	return Accepting(value.Number, value.Literal)
}

// Regex reports Attention(message) unless the value's text matches re.
func Regex(re *regexp.Regexp, message string) Rule {
	return &regexRule{re: re, message: message}
}

// Pattern compiles pattern and returns a Regex rule.
// Compiled patterns are cached for the lifetime of the process.
func Pattern(pattern, message string) (Rule, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return Regex(re, message), nil
}

// MustRegex is like Pattern but panics when the pattern does not compile.
func MustRegex(pattern, message string) Rule {
	rule, err := Pattern(pattern, message)
	if err != nil {
		panic(err)
	}
	return rule
}

type regexRule struct {
	re      *regexp.Regexp
	message string
}

func (r *regexRule) Check(v value.Value) (Verdict, error) {
	if r.re.MatchString(v.String()) {
		return Clear(), nil
	}
	return Attention(r.message), nil
}

func (r *regexRule) Expecting() Signature {
	return Accepting(value.Number, value.Literal)
}

// Between reports Attention(message) unless a Number value lies within
// [lower, upper]. Both bounds are inclusive. Values of any other kind fail
// with ErrInvalidKind.
func Between(lower, upper float64, message string) Rule {
	return &betweenRule{lower: lower, upper: upper, message: message}
}

type betweenRule struct {
	lower   float64
	upper   float64
	message string
}

func (r *betweenRule) Check(v value.Value) (Verdict, error) {
	if !v.Is(value.Number) {
		return Verdict{}, fmt.Errorf("%w: expected %s, got %s", ErrInvalidKind, value.Number, v.Kind())
	}
	f, err := v.Float64()
	if err != nil {
		return Verdict{}, fmt.Errorf("%w: %w", ErrInvalidKind, err)
	}
	if r.lower <= f && f <= r.upper {
		return Clear(), nil
	}
	return Attention(r.message), nil
}

func (r *betweenRule) Expecting() Signature {
	return Accepting(value.Number)
}
