package check

import (
	"cmp"
	"encoding/json"
	"fmt"
)

// Severity orders verdicts from harmless to unacceptable.
type Severity uint8

const (
	SeverityClear Severity = iota
	SeverityAttention
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityClear:
		return "clear"
	case SeverityAttention:
		return "attention"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", uint8(s))
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Verdict is the outcome of a successful rule evaluation.
// The zero value is Clear.
type Verdict struct {
	severity Severity
	message  string
}

func Clear() Verdict {
	return Verdict{severity: SeverityClear}
}

// Attention reports a mildly concerning value.
func Attention(message string) Verdict {
	return Verdict{severity: SeverityAttention, message: message}
}

// Error reports an unacceptable value.
func Error(message string) Verdict {
	return Verdict{severity: SeverityError, message: message}
}

func (v Verdict) Severity() Severity {
	return v.severity
}

// Message returns the payload of an Attention or Error verdict, empty for Clear.
func (v Verdict) Message() string {
	return v.message
}

func (v Verdict) IsClear() bool {
	return v.severity == SeverityClear
}

// Compare orders verdicts by severity only. Messages never affect the result.
func (v Verdict) Compare(other Verdict) int {
	return cmp.Compare(v.severity, other.severity)
}

// CompareVerdicts is Compare in a form usable with slices.SortFunc and slices.MaxFunc.
func CompareVerdicts(a, b Verdict) int {
	return a.Compare(b)
}

// Max returns the most severe verdict, preferring the earliest one among equals.
// It returns Clear when called without arguments.
func Max(verdicts ...Verdict) Verdict {
	worst := Clear()
	for _, v := range verdicts {
		if v.Compare(worst) > 0 {
			worst = v
		}
	}
	return worst
}

// Err converts an Error verdict into an error. Clear and Attention yield nil.
func (v Verdict) Err() error {
	if v.severity != SeverityError {
		return nil
	}
	return &VerdictError{Message: v.message}
}

func (v Verdict) String() string {
	if v.severity == SeverityClear || v.message == "" {
		return v.severity.String()
	}
	return v.severity.String() + ": " + v.message
}

type wireVerdict struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message,omitempty" yaml:"message,omitempty"`
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireVerdict{Severity: v.severity, Message: v.message})
}

func (v Verdict) MarshalYAML() (any, error) {
	return wireVerdict{Severity: v.severity, Message: v.message}, nil
}
