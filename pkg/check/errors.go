package check

import "errors"

var (
	// ErrInvalidKind is returned when a value's kind is incompatible with a rule.
	ErrInvalidKind = errors.New("invalid kind")

	// ErrSignatureMismatch is returned when flattened rules expect different value kinds.
	ErrSignatureMismatch = errors.New("rules expect different value kinds")

	// ErrNoRules is returned when flattening an empty rule set.
	ErrNoRules = errors.New("no rules to flatten")

	// ErrNilRule is returned when a nil rule is passed to Flatten.
	ErrNilRule = errors.New("nil rule")

	// ErrInvalidPattern is returned when a pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrRejected is matched by the error returned from Verdict.Err for Error verdicts.
	ErrRejected = errors.New("value rejected")
)

// VerdictError carries the message of an Error verdict.
type VerdictError struct {
	Message string
}

func (e *VerdictError) Error() string {
	if e.Message == "" {
		return ErrRejected.Error()
	}
	return e.Message
}

func (e *VerdictError) Is(target error) bool {
	return target == ErrRejected
}
