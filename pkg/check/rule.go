package check

import "github.com/dmitrymomot/checklist/pkg/value"

// Rule is the capability every validation rule implements.
//
// Check returns an error wrapping ErrInvalidKind when the value's kind is
// incompatible with the rule. Every other outcome is a Verdict.
// Expecting returns the value kinds the rule accepts.
type Rule interface {
	Check(v value.Value) (Verdict, error)
	Expecting() Signature
}

// Func adapts a plain function into a Rule that accepts the given signature.
func Func(sig Signature, fn func(v value.Value) (Verdict, error)) Rule {
	return &funcRule{sig: Accepting(sig...), fn: fn}
}

type funcRule struct {
	sig Signature
	fn  func(v value.Value) (Verdict, error)
}

func (r *funcRule) Check(v value.Value) (Verdict, error) {
	return r.fn(v)
}

func (r *funcRule) Expecting() Signature {
	return Accepting(r.sig...)
}

// Custom registers an arbitrary rule as-is. Check and Expecting are delegated
// to the wrapped rule unchanged.
func Custom(rule Rule) Rule {
	return &customRule{inner: rule}
}

type customRule struct {
	inner Rule
}

func (r *customRule) Check(v value.Value) (Verdict, error) {
	return r.inner.Check(v)
}

func (r *customRule) Expecting() Signature {
	return r.inner.Expecting()
}
