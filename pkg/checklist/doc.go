// Package checklist maps field names to composed rule sets and evaluates
// incoming (field, value) pairs into Commit records.
//
// A CheckList is built once from an ordered list of entries. Entries that
// share a field name are grouped, keeping their relative order, and flattened
// into a single check.Flat per field. Building fails with a *BuildError when
// the rules of one field expect different value kinds.
//
// # Usage
//
//	list, err := checklist.New([]checklist.Entry{
//	    checklist.On("A", check.Exact("abc", "caution")),
//	    checklist.On("B", check.AsAttention(check.Between(-2, 2, "caution"))),
//	    checklist.On("B", check.AsError(check.Between(-5, 5, "error"))),
//	})
//	if err != nil {
//	    // a field mixes rules with different signatures
//	}
//
//	commit, ok, err := list.Commit("B", value.FromNumber(3))
//	switch {
//	case err != nil:
//	    // value kind is incompatible with the field's rules
//	case !ok:
//	    // field is not registered
//	default:
//	    fmt.Println(commit.Verdict()) // attention: caution
//	}
//
// A built CheckList is read-only. Commit may be called from many goroutines
// at once as long as the configured Observer is safe for concurrent use.
package checklist
