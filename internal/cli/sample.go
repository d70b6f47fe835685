package cli

import (
	"log/slog"

	"github.com/dmitrymomot/checklist/pkg/check"
	"github.com/dmitrymomot/checklist/pkg/checklist"
	"github.com/dmitrymomot/checklist/pkg/value"
)

// reservedCode is a well-formed code that must never be accepted.
const reservedCode = "AAA-000"

func sampleEntries() []checklist.Entry {
	reserved := check.Func(check.Accepting(value.Number, value.Literal), func(v value.Value) (check.Verdict, error) {
		if v.String() == reservedCode {
			return check.Attention("reserved"), nil
		}
		return check.Clear(), nil
	})

	return []checklist.Entry{
		checklist.On("A", check.Exact("abc", "caution")),
		checklist.On("B", check.AsAttention(check.Between(-2, 2, "caution"))),
		checklist.On("B", check.AsError(check.Between(-5, 5, "error"))),
		checklist.On("code", check.MustRegex(`^[A-Z]{3}-\d{3}$`, "format")),
		checklist.On("code", check.Custom(check.AsError(reserved))),
	}
}

func sampleCheckList(log *slog.Logger) (*checklist.CheckList, error) {
	return checklist.New(sampleEntries(), checklist.WithLogger(log))
}
