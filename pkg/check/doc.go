// Package check implements the rule-evaluation core of the checklist engine:
// the Rule contract, the Verdict severity model, the severity wrapper and the
// Flatten combinator that merges several rules into one.
//
// A Rule evaluates a value.Value into a Verdict and declares, through its
// Signature, which value kinds it accepts. Verdicts are totally ordered
// (Clear < Attention < Error) and the message they carry never takes part in
// the ordering. A Rule returns an error only when the value kind itself is
// incompatible with the rule (ErrInvalidKind); everything else, including an
// out-of-range value, is reported as a Verdict.
//
// # Architecture
//
// Rules are small immutable values behind the Rule interface:
//
//   - Any, Exact, Regex/Pattern/MustRegex and Between are the built-in kinds
//   - Custom and Func plug arbitrary logic into the same contract
//   - Moded (AsAttention/AsError) remaps a rule's Attention outcome
//   - Flat (Flatten) runs several same-signature rules and keeps the worst verdict
//
// There is no global mutable state apart from a process-wide cache of compiled
// patterns, so rules are safe to share between goroutines once built.
//
// # Usage
//
//	tight := check.AsAttention(check.Between(-2, 2, "caution"))
//	wide := check.AsError(check.Between(-5, 5, "error"))
//
//	rule, err := check.Flatten(tight, wide)
//	if err != nil {
//	    // rules expect different value kinds
//	}
//
//	verdict, err := rule.Check(value.FromNumber(3))
//	// verdict == check.Attention("caution")
//
// # Error Handling
//
// Construction errors (ErrNoRules, ErrNilRule, ErrSignatureMismatch) are
// returned by Flatten and never during evaluation. Evaluation errors wrap
// ErrInvalidKind. Use errors.Is to tell them apart.
package check
