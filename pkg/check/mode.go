package check

import "github.com/dmitrymomot/checklist/pkg/value"

// Mode selects how Moded reports an Attention outcome of the wrapped rule.
type Mode uint8

const (
	// ModeAttention keeps every outcome as is.
	ModeAttention Mode = iota
	// ModeError escalates Attention to Error, keeping the message.
	ModeError
)

func (m Mode) String() string {
	if m == ModeError {
		return "error"
	}
	return "attention"
}

// Moded wraps a rule and remaps its verdict according to a Mode.
// The wrapped rule's logic and signature are left untouched.
type Moded struct {
	rule Rule
	mode Mode
}

func WithMode(rule Rule, mode Mode) *Moded {
	return &Moded{rule: rule, mode: mode}
}

// AsAttention wraps rule without changing its outcomes.
func AsAttention(rule Rule) *Moded {
	return WithMode(rule, ModeAttention)
}

// AsError wraps rule so that its Attention outcomes become Error.
func AsError(rule Rule) *Moded {
	return WithMode(rule, ModeError)
}

func (m *Moded) Mode() Mode {
	return m.mode
}

func (m *Moded) Check(v value.Value) (Verdict, error) {
	verdict, err := m.rule.Check(v)
	if err != nil {
		return Verdict{}, err
	}
	if m.mode == ModeError && verdict.severity == SeverityAttention {
		return Error(verdict.message), nil
	}
	return verdict, nil
}

func (m *Moded) Expecting() Signature {
	return m.rule.Expecting()
}
