package validator_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/lookup"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestParseName(t *testing.T) {
	n, err := validator.ParseName("min")
	require.NoError(t, err)
	assert.Equal(t, validator.RuleMin, n)

	n, err = validator.ParseName("digits_between")
	require.NoError(t, err)
	assert.Equal(t, validator.RuleDigitsBetween, n)

	n, err = validator.ParseName("alpha_num")
	require.NoError(t, err)
	assert.Equal(t, validator.RuleAlphaNum, n)

	_, err = validator.ParseName("uuid")
	assert.ErrorIs(t, err, validator.ErrUnknownRule)

	var unknown *validator.UnknownRuleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "uuid", unknown.Name)
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	r := validator.New()

	t.Run("names", func(t *testing.T) {
		names := r.Names()
		assert.Len(t, names, 18)
		assert.True(t, r.Has(validator.RuleExists))
		assert.False(t, r.Has("uuid"))
		assert.True(t, slices.IsSorted(names))
	})

	t.Run("synchronous rule is already resolved", func(t *testing.T) {
		f, err := r.Evaluate(ctx, validator.RuleMin, validator.Invocation{
			Attribute: "name",
			Value:     "abcde",
			Params:    []any{5},
		})
		require.NoError(t, err)
		assert.True(t, f.IsComplete())

		ok, err := f.Await()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("usage error returns no future", func(t *testing.T) {
		f, err := r.Evaluate(ctx, validator.RuleMax, validator.Invocation{Attribute: "name", Value: "abc"})
		assert.ErrorIs(t, err, validator.ErrArity)
		assert.Nil(t, f)
	})

	t.Run("unknown rule", func(t *testing.T) {
		f, err := r.Evaluate(ctx, "uuid", validator.Invocation{Attribute: "id"})
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
		assert.Nil(t, f)
	})

	t.Run("lookup rule receives the connection", func(t *testing.T) {
		store := lookup.NewMemory()
		store.Insert("users", lookup.Record{"name": "alice"})

		f, err := r.Evaluate(ctx, validator.RuleExists, validator.Invocation{
			Attribute: "name",
			Value:     "alice",
			Params:    []any{"users", "name"},
			Conn:      store,
		})
		require.NoError(t, err)

		ok, err := f.Await()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("lookup rule without connection", func(t *testing.T) {
		_, err := r.Evaluate(ctx, validator.RuleExists, validator.Invocation{
			Attribute: "name",
			Value:     "alice",
			Params:    []any{"users", "name"},
		})
		assert.ErrorIs(t, err, validator.ErrEnvironment)
	})
}
