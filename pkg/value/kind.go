package value

import (
	"fmt"
	"strings"
)

// Kind tags a Value as numeric or literal.
type Kind uint8

const (
	Number Kind = iota + 1
	Literal
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Literal:
		return "literal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind converts a kind name ("number" or "literal", case-insensitive) into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "number":
		return Number, nil
	case "literal":
		return Literal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case 0:
		return []byte{}, nil
	case Number, Literal:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
}

func (k *Kind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = 0
		return nil
	}
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
