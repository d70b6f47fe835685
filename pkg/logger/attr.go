package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a checklist field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Value records the textual form of an evaluated value under the key "value".
func Value(v fmt.Stringer) slog.Attr {
	return slog.String("value", v.String())
}

// Kind records a value kind under the key "kind".
func Kind(k fmt.Stringer) slog.Attr {
	return slog.String("kind", k.String())
}

// Verdict records an evaluation outcome under the key "verdict".
func Verdict(v fmt.Stringer) slog.Attr {
	return slog.String("verdict", v.String())
}

// Signature records accepted value kinds under the key "expecting".
func Signature(s fmt.Stringer) slog.Attr {
	return slog.String("expecting", s.String())
}

// Rules records the number of rules composed for a field.
func Rules(n int) slog.Attr {
	return slog.Int("rules", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
