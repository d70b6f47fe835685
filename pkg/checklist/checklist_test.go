package checklist_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/checklist/pkg/check"
	"github.com/dmitrymomot/checklist/pkg/checklist"
	"github.com/dmitrymomot/checklist/pkg/logger"
	"github.com/dmitrymomot/checklist/pkg/value"
)

func sampleEntries() []checklist.Entry {
	return []checklist.Entry{
		checklist.On("A", check.Exact("abc", "caution")),
		checklist.On("B", check.AsAttention(check.Between(-2, 2, "caution"))),
		checklist.On("B", check.AsError(check.Between(-5, 5, "error"))),
	}
}

func mustNew(t *testing.T, entries []checklist.Entry, opts ...checklist.Option) *checklist.CheckList {
	t.Helper()
	list, err := checklist.New(entries, opts...)
	require.NoError(t, err)
	return list
}

func commitVerdict(t *testing.T, list *checklist.CheckList, field string, v value.Value) check.Verdict {
	t.Helper()
	commit, ok, err := list.Commit(field, v)
	require.NoError(t, err)
	require.True(t, ok)
	return commit.Verdict()
}

func TestCheckList_Scenarios(t *testing.T) {
	t.Parallel()

	list := mustNew(t, sampleEntries())

	t.Run("exact match field", func(t *testing.T) {
		assert.Equal(t, check.Clear(), commitVerdict(t, list, "A", value.FromString("abc")))
		assert.Equal(t, check.Attention("caution"), commitVerdict(t, list, "A", value.FromString("abcd")))
	})

	t.Run("two range rules with different severities", func(t *testing.T) {
		assert.Equal(t, check.Clear(), commitVerdict(t, list, "B", value.FromNumber(0)))
		assert.Equal(t, check.Attention("caution"), commitVerdict(t, list, "B", value.FromNumber(3)))
		assert.Equal(t, check.Error("error"), commitVerdict(t, list, "B", value.FromNumber(6)))
	})

	t.Run("unknown field yields no commit and no error", func(t *testing.T) {
		commit, ok, err := list.Commit("Z", value.FromNumber(1))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, checklist.Commit{}, commit)
	})

	t.Run("field lookup is exact", func(t *testing.T) {
		for _, field := range []string{"a", "A ", " A", "AA", ""} {
			_, ok, err := list.Commit(field, value.FromString("abc"))
			require.NoError(t, err)
			assert.False(t, ok, "field %q", field)
		}
	})

	t.Run("mismatched signatures fail the build", func(t *testing.T) {
		number := check.Func(check.Accepting(value.Number), func(value.Value) (check.Verdict, error) {
			t.Fatal("rule must not be evaluated")
			return check.Clear(), nil
		})
		literal := check.Func(check.Accepting(value.Literal), func(value.Value) (check.Verdict, error) {
			t.Fatal("rule must not be evaluated")
			return check.Clear(), nil
		})

		list, err := checklist.New([]checklist.Entry{
			checklist.On("A", check.Any()),
			checklist.On("C", number),
			checklist.On("C", literal),
		})
		require.Error(t, err)
		assert.Nil(t, list)
		assert.ErrorIs(t, err, check.ErrSignatureMismatch)

		var buildErr *checklist.BuildError
		require.True(t, errors.As(err, &buildErr))
		assert.Equal(t, "C", buildErr.Field)
		assert.Contains(t, err.Error(), `field "C"`)
	})
}

func TestCheckList_Commit(t *testing.T) {
	t.Parallel()

	list := mustNew(t, sampleEntries())

	t.Run("carries field value and verdict", func(t *testing.T) {
		v := value.FromNumber(3)
		commit, ok, err := list.Commit("B", v)
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, "B", commit.Field())
		assert.Equal(t, v, commit.Value())
		assert.Equal(t, check.Attention("caution"), commit.Verdict())
		assert.NoError(t, commit.Err())
		assert.Equal(t, "B=3 (attention: caution)", commit.String())
	})

	t.Run("commits are structurally equal", func(t *testing.T) {
		first, _, err := list.Commit("A", value.FromString("abc"))
		require.NoError(t, err)
		second, _, err := list.Commit("A", value.FromString("abc"))
		require.NoError(t, err)
		assert.True(t, first == second)

		other, _, err := list.Commit("A", value.FromString("abcd"))
		require.NoError(t, err)
		assert.False(t, first == other)
	})

	t.Run("error verdict converts to error", func(t *testing.T) {
		commit, _, err := list.Commit("B", value.FromNumber(-6))
		require.NoError(t, err)

		cerr := commit.Err()
		require.Error(t, cerr)
		assert.ErrorIs(t, cerr, check.ErrRejected)
		assert.Equal(t, "B: error", cerr.Error())
	})

	t.Run("literal on numeric field is a kind error", func(t *testing.T) {
		for _, s := range []string{"0", "abc"} {
			commit, ok, err := list.Commit("B", value.FromString(s))
			require.Error(t, err)
			assert.ErrorIs(t, err, check.ErrInvalidKind)
			assert.False(t, ok)
			assert.Equal(t, checklist.Commit{}, commit)
		}
	})

	t.Run("number on exact field compares text", func(t *testing.T) {
		assert.Equal(t, check.Attention("caution"), commitVerdict(t, list, "A", value.FromNumber(1)))
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("groups non adjacent entries in order", func(t *testing.T) {
		first := check.Exact("x", "first")
		second := check.Exact("y", "second")

		list := mustNew(t, []checklist.Entry{
			checklist.On("code", first),
			checklist.On("other", check.Any()),
			checklist.On("code", second),
		})

		assert.Equal(t, []string{"code", "other"}, list.Fields())
		assert.Equal(t, 2, list.Len())

		flat, ok := list.Lookup("code")
		require.True(t, ok)
		assert.Equal(t, []check.Rule{first, second}, flat.Rules())

		// Both rules fail with equal severity, the first registered one is reported.
		assert.Equal(t, check.Attention("first"), commitVerdict(t, list, "code", value.FromString("z")))
	})

	t.Run("empty entries build an empty checklist", func(t *testing.T) {
		list := mustNew(t, nil)
		assert.Zero(t, list.Len())
		assert.Empty(t, list.Items())
		assert.Empty(t, list.Fields())

		_, ok, err := list.Commit("A", value.FromString("abc"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects empty field names", func(t *testing.T) {
		_, err := checklist.New([]checklist.Entry{checklist.On("", check.Any())})
		assert.ErrorIs(t, err, checklist.ErrEmptyField)
	})

	t.Run("rejects nil rules", func(t *testing.T) {
		_, err := checklist.New([]checklist.Entry{checklist.On("A", nil)})
		assert.ErrorIs(t, err, check.ErrNilRule)

		var buildErr *checklist.BuildError
		require.True(t, errors.As(err, &buildErr))
		assert.Equal(t, "A", buildErr.Field)
	})

	t.Run("mismatch fails regardless of order", func(t *testing.T) {
		orders := [][]checklist.Entry{
			{checklist.On("F", check.Any()), checklist.On("F", check.Between(0, 1, ""))},
			{checklist.On("F", check.Between(0, 1, "")), checklist.On("F", check.Any())},
			{checklist.On("F", check.Exact("a", "")), checklist.On("F", check.Exact("b", "")), checklist.On("F", check.Between(0, 1, ""))},
		}
		for _, entries := range orders {
			_, err := checklist.New(entries)
			assert.ErrorIs(t, err, check.ErrSignatureMismatch)
		}
	})
}

func TestCheckList_Introspection(t *testing.T) {
	t.Parallel()

	list := mustNew(t, sampleEntries())

	t.Run("items list accepted kinds per field", func(t *testing.T) {
		assert.Equal(t, map[string]check.Signature{
			"A": check.Accepting(value.Number, value.Literal),
			"B": check.Accepting(value.Number),
		}, list.Items())
	})

	t.Run("items can pre validate input", func(t *testing.T) {
		items := list.Items()
		assert.True(t, items["A"].Accepts(value.Literal))
		assert.False(t, items["B"].Accepts(value.Literal))
	})

	t.Run("items are copies", func(t *testing.T) {
		items := list.Items()
		items["B"][0] = value.Literal
		assert.Equal(t, check.Accepting(value.Number), list.Items()["B"])
	})

	t.Run("has and lookup", func(t *testing.T) {
		assert.True(t, list.Has("A"))
		assert.False(t, list.Has("Z"))

		flat, ok := list.Lookup("B")
		require.True(t, ok)
		assert.Equal(t, 2, flat.Len())

		_, ok = list.Lookup("Z")
		assert.False(t, ok)
	})
}

func TestWithObserver(t *testing.T) {
	t.Parallel()

	type observed struct {
		field   string
		value   value.Value
		verdict check.Verdict
		err     error
	}
	var got []observed
	obs := checklist.ObserverFunc(func(field string, v value.Value, verdict check.Verdict, err error) {
		got = append(got, observed{field, v, verdict, err})
	})

	list := mustNew(t, sampleEntries(), checklist.WithObserver(obs))

	_, _, _ = list.Commit("B", value.FromNumber(6))
	_, _, _ = list.Commit("B", value.FromString("x"))
	_, _, _ = list.Commit("Z", value.FromNumber(1))

	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].field)
	assert.Equal(t, check.Error("error"), got[0].verdict)
	assert.NoError(t, got[0].err)
	assert.Equal(t, value.FromString("x"), got[1].value)
	assert.ErrorIs(t, got[1].err, check.ErrInvalidKind)
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))

	list := mustNew(t, sampleEntries(), checklist.WithLogger(log), checklist.WithLogger(nil))
	assert.Contains(t, buf.String(), "field registered")
	assert.Contains(t, buf.String(), "field=B")
	assert.Contains(t, buf.String(), "rules=2")

	buf.Reset()
	_, _, _ = list.Commit("B", value.FromString("x"))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "value rejected")
	assert.Contains(t, buf.String(), "kind=literal")

	buf.Reset()
	_, _, _ = list.Commit("B", value.FromNumber(3))
	assert.Contains(t, buf.String(), "commit evaluated")
	assert.Contains(t, buf.String(), `verdict="attention: caution"`)
}

func TestCheckList_ConcurrentCommit(t *testing.T) {
	t.Parallel()

	list := mustNew(t, sampleEntries())

	var wg sync.WaitGroup
	results := make([]check.Verdict, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			commit, _, err := list.Commit("B", value.FromNumber(i%8))
			if err == nil {
				results[i] = commit.Verdict()
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		want := check.Clear()
		switch n := i % 8; {
		case n > 5:
			want = check.Error("error")
		case n > 2:
			want = check.Attention("caution")
		}
		assert.Equal(t, want, got, "value %d", i%8)
	}
}

func TestCommit_Encoding(t *testing.T) {
	t.Parallel()

	list := mustNew(t, sampleEntries())
	commit, _, err := list.Commit("B", value.FromNumber(6))
	require.NoError(t, err)

	data, err := json.Marshal(commit)
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"B","value":"6","kind":"number","severity":"error","message":"error"}`, string(data))

	clearCommit, _, err := list.Commit("A", value.FromString("abc"))
	require.NoError(t, err)
	data, err = yaml.Marshal(clearCommit)
	require.NoError(t, err)
	assert.Equal(t, "field: A\nvalue: abc\nkind: literal\nseverity: clear\n", string(data))
}
