package lookup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/lookup"
)

func TestCategoryFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lookup.Users, lookup.CategoryFor("users"))
	assert.Equal(t, lookup.Data, lookup.CategoryFor("posts"))
	assert.Equal(t, lookup.Data, lookup.CategoryFor("Users"))
	assert.Equal(t, lookup.Data, lookup.CategoryFor(""))
}

func TestWhere(t *testing.T) {
	t.Parallel()

	q := lookup.Where("users", "email", "a@b.com")
	assert.Equal(t, lookup.Users, q.Category)
	assert.Equal(t, "users", q.Collection)
	assert.Equal(t, "email", q.Column)
	assert.Equal(t, "a@b.com", q.Value)
	assert.Zero(t, q.Limit)

	assert.ErrorIs(t, lookup.Where("", "email", 1).Validate(), lookup.ErrEmptyCollection)
	assert.ErrorIs(t, lookup.Where("posts", "", 1).Validate(), lookup.ErrEmptyColumn)
}

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := lookup.NewMemory()
	m.Insert("users", lookup.Record{"email": "a@b.com"}, lookup.Record{"email": "c@d.com"})
	m.Insert("posts", lookup.Record{"id": 42, "slug": "hello"}, lookup.Record{"id": 43, "slug": "hello"})

	t.Run("matches by column", func(t *testing.T) {
		recs, err := m.List(ctx, lookup.Where("users", "email", "c@d.com"))
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "c@d.com", recs[0]["email"])
	})

	t.Run("compares formatted values", func(t *testing.T) {
		recs, err := m.List(ctx, lookup.Where("posts", "id", "42"))
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	})

	t.Run("honours limit", func(t *testing.T) {
		q := lookup.Where("posts", "slug", "hello")
		q.Limit = 1
		recs, err := m.List(ctx, q)
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	})

	t.Run("no match", func(t *testing.T) {
		recs, err := m.List(ctx, lookup.Where("posts", "slug", "missing"))
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("categories are separate", func(t *testing.T) {
		recs, err := m.List(ctx, lookup.Query{Category: lookup.Data, Collection: "users", Column: "email", Value: "a@b.com"})
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := m.List(cctx, lookup.Where("users", "email", "a@b.com"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnectionFunc(t *testing.T) {
	t.Parallel()

	var got lookup.Query
	conn := lookup.ConnectionFunc(func(_ context.Context, q lookup.Query) ([]lookup.Record, error) {
		got = q
		return []lookup.Record{{"id": 1}}, nil
	})

	recs, err := conn.List(context.Background(), lookup.Where("orders", "id", 1))
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, "orders", got.Collection)
}
