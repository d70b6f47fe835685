package check

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/checklist/pkg/value"
)

// Flat is a Rule composed of an ordered, non-empty set of rules that share
// one signature. It resolves to the most severe verdict of its members.
type Flat struct {
	rules []Rule
	sig   Signature
}

// Flatten composes rules into a single Rule.
// It fails with ErrNoRules for an empty set, ErrNilRule for a nil member and
// ErrSignatureMismatch when members expect different value kinds.
func Flatten(rules ...Rule) (*Flat, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilRule, i)
		}
	}

	sig := rules[0].Expecting()
	for i, r := range rules[1:] {
		if got := r.Expecting(); !got.Equal(sig) {
			return nil, fmt.Errorf("%w: rule %d expects %s, rule 0 expects %s",
				ErrSignatureMismatch, i+1, got, sig)
		}
	}

	return &Flat{rules: slices.Clone(rules), sig: sig}, nil
}

// Check evaluates every member in order. The first error is returned
// immediately. Otherwise the most severe verdict wins; among members with the
// same severity the earliest one is reported.
func (f *Flat) Check(v value.Value) (Verdict, error) {
	worst := Clear()
	for _, r := range f.rules {
		verdict, err := r.Check(v)
		if err != nil {
			return Verdict{}, err
		}
		if verdict.Compare(worst) > 0 {
			worst = verdict
		}
	}
	return worst, nil
}

func (f *Flat) Expecting() Signature {
	return Accepting(f.sig...)
}

// Len returns the number of composed rules.
func (f *Flat) Len() int {
	return len(f.rules)
}

// Rules returns a copy of the composed rules in evaluation order.
func (f *Flat) Rules() []Rule {
	return slices.Clone(f.rules)
}
