// Package value provides Value, the immutable tagged scalar that every rule in
// the checklist engine evaluates.
//
// A Value keeps the textual form of the input together with a Kind tag
// (Number or Literal). The tag is fixed at construction and acts as a
// conformance hint for rules that only accept some kinds of input; it is not a
// parse guarantee. Float64 always parses the text and fails with ErrNotNumeric
// when the text is not a number, whatever the tag says.
//
// # Usage
//
//	age := value.FromNumber(42)        // Number "42"
//	name := value.FromString("alice")  // Literal "alice"
//	raw := value.Parse("3.5")          // Number "3.5", tag inferred
//
//	if age.Is(value.Number) {
//	    f, err := age.Float64()
//	    // ...
//	}
//
// Value is a small comparable struct, so two values are equal when both the
// text and the tag are equal.
package value
