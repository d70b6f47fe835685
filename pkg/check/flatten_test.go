package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checklist/pkg/check"
	"github.com/dmitrymomot/checklist/pkg/value"
)

func TestFlatten_Construction(t *testing.T) {
	t.Parallel()

	t.Run("fails for empty set", func(t *testing.T) {
		f, err := check.Flatten()
		assert.ErrorIs(t, err, check.ErrNoRules)
		assert.Nil(t, f)
	})

	t.Run("fails for nil rule", func(t *testing.T) {
		_, err := check.Flatten(check.Any(), nil)
		assert.ErrorIs(t, err, check.ErrNilRule)
	})

	t.Run("fails for mismatched signatures in any order", func(t *testing.T) {
		number := check.Func(check.Accepting(value.Number), nil)
		literal := check.Func(check.Accepting(value.Literal), nil)

		sets := [][]check.Rule{
			{number, literal},
			{literal, number},
			{number, number, literal},
			{literal, literal, literal, number},
			{check.Any(), check.Between(0, 1, "")},
			{check.Between(0, 1, ""), check.Exact("a", ""), check.Between(2, 3, "")},
		}
		for _, rules := range sets {
			_, err := check.Flatten(rules...)
			assert.ErrorIs(t, err, check.ErrSignatureMismatch)
		}
	})

	t.Run("treats kind order as significant", func(t *testing.T) {
		a := check.Func(check.Accepting(value.Number, value.Literal), nil)
		b := check.Func(check.Accepting(value.Literal, value.Number), nil)
		_, err := check.Flatten(a, b)
		assert.ErrorIs(t, err, check.ErrSignatureMismatch)
	})

	t.Run("keeps rules in order", func(t *testing.T) {
		first := check.Exact("a", "first")
		second := check.Exact("b", "second")

		f, err := check.Flatten(first, second)
		require.NoError(t, err)
		assert.Equal(t, 2, f.Len())
		assert.Equal(t, []check.Rule{first, second}, f.Rules())
		assert.Equal(t, check.Accepting(value.Number, value.Literal), f.Expecting())
	})

	t.Run("accepts a single rule", func(t *testing.T) {
		f, err := check.Flatten(check.Between(0, 1, ""))
		require.NoError(t, err)
		assert.Equal(t, check.Accepting(value.Number), f.Expecting())
	})
}

func TestFlatten_Check(t *testing.T) {
	t.Parallel()

	t.Run("resolves to the most severe verdict", func(t *testing.T) {
		vs := sampleVerdicts()
		for _, a := range vs {
			for _, b := range vs {
				for _, c := range vs {
					f, err := check.Flatten(fixed(a), fixed(b), fixed(c))
					require.NoError(t, err)

					got, err := f.Check(value.FromString("x"))
					require.NoError(t, err)
					assert.Equal(t, check.Max(a, b, c).Severity(), got.Severity())
				}
			}
		}
	})

	t.Run("is clear when all members are clear", func(t *testing.T) {
		f, err := check.Flatten(check.Any(), check.Exact("x", "m"), check.MustRegex("^x$", "m"))
		require.NoError(t, err)

		got, err := f.Check(value.FromString("x"))
		require.NoError(t, err)
		assert.Equal(t, check.Clear(), got)
	})

	t.Run("reports the first member among ties", func(t *testing.T) {
		f, err := check.Flatten(fixed(check.Attention("first")), fixed(check.Attention("second")))
		require.NoError(t, err)

		got, err := f.Check(value.FromString("x"))
		require.NoError(t, err)
		assert.Equal(t, check.Attention("first"), got)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		calls := 0
		counting := check.Func(check.Accepting(value.Number), func(value.Value) (check.Verdict, error) {
			calls++
			return check.Clear(), nil
		})

		f, err := check.Flatten(counting, check.Between(0, 1, ""), counting)
		require.NoError(t, err)

		_, err = f.Check(value.FromString("x"))
		assert.ErrorIs(t, err, check.ErrInvalidKind)
		assert.Equal(t, 1, calls)
	})

	t.Run("combines two range rules at different severities", func(t *testing.T) {
		f, err := check.Flatten(
			check.AsAttention(check.Between(-2, 2, "caution")),
			check.AsError(check.Between(-5, 5, "error")),
		)
		require.NoError(t, err)

		tests := []struct {
			in   int
			want check.Verdict
		}{
			{0, check.Clear()},
			{2, check.Clear()},
			{-3, check.Attention("caution")},
			{3, check.Attention("caution")},
			{5, check.Attention("caution")},
			{6, check.Error("error")},
			{-6, check.Error("error")},
		}
		for _, tt := range tests {
			got, err := f.Check(value.FromNumber(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "value %d", tt.in)
		}
	})

	t.Run("nests as a rule", func(t *testing.T) {
		inner, err := check.Flatten(check.Exact("a", "not a"))
		require.NoError(t, err)
		outer, err := check.Flatten(inner, check.AsError(check.Exact("b", "not b")))
		require.NoError(t, err)

		got, err := outer.Check(value.FromString("c"))
		require.NoError(t, err)
		assert.Equal(t, check.Error("not b"), got)
	})
}
