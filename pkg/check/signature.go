package check

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/checklist/pkg/value"
)

// Signature lists the value kinds a rule is willing to evaluate.
// Two signatures are equal only when they list the same kinds in the same order.
type Signature []value.Kind

// Accepting builds a signature from the given kinds.
func Accepting(kinds ...value.Kind) Signature {
	return Signature(slices.Clone(kinds))
}

func (s Signature) Equal(other Signature) bool {
	return slices.Equal(s, other)
}

func (s Signature) Accepts(kind value.Kind) bool {
	return slices.Contains(s, kind)
}

func (s Signature) String() string {
	names := make([]string, len(s))
	for i, k := range s {
		names[i] = k.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
