package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/lookup"
)

type recordingQuerier struct {
	sql  string
	args []any
	err  error
}

func (r *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r.sql = sql
	r.args = args
	return nil, r.err
}

func TestBuildQuery(t *testing.T) {
	s, err := NewStore(&recordingQuerier{}, Config{UsersSchema: "auth", DataSchema: "app"})
	require.NoError(t, err)

	t.Run("users category", func(t *testing.T) {
		sql := s.buildQuery(lookup.Where("users", "email", "a@b.com"))
		assert.Equal(t, `SELECT * FROM "auth"."users" WHERE "email" = $1`, sql)
	})

	t.Run("data category with limit", func(t *testing.T) {
		q := lookup.Where("posts", "slug", "hello")
		q.Limit = 1
		sql := s.buildQuery(q)
		assert.Equal(t, `SELECT * FROM "app"."posts" WHERE "slug" = $1 LIMIT 1`, sql)
	})

	t.Run("identifiers are quoted", func(t *testing.T) {
		sql := s.buildQuery(lookup.Where(`po"sts`, "id; drop", 1))
		assert.Equal(t, `SELECT * FROM "app"."po""sts" WHERE "id; drop" = $1`, sql)
	})
}

func TestNewStore(t *testing.T) {
	_, err := NewStore(nil, Config{})
	assert.ErrorIs(t, err, ErrNilPool)

	s, err := NewStore(&recordingQuerier{}, Config{})
	require.NoError(t, err)
	assert.Equal(t, "public", s.usersSchema)
	assert.Equal(t, "public", s.dataSchema)
}

func TestStoreList(t *testing.T) {
	t.Run("binds value as parameter", func(t *testing.T) {
		boom := errors.New("relation does not exist")
		q := &recordingQuerier{err: boom}
		s, err := NewStore(q, Config{})
		require.NoError(t, err)

		_, err = s.List(context.Background(), lookup.Where("users", "email", "a@b.com"))
		assert.Same(t, boom, err)
		assert.Equal(t, []any{"a@b.com"}, q.args)
	})

	t.Run("rejects malformed query", func(t *testing.T) {
		q := &recordingQuerier{}
		s, err := NewStore(q, Config{})
		require.NoError(t, err)

		_, err = s.List(context.Background(), lookup.Where("users", "", 1))
		assert.ErrorIs(t, err, lookup.ErrEmptyColumn)
		assert.Empty(t, q.sql)
	})
}

func TestConnectEmptyConnectionString(t *testing.T) {
	_, err := Connect(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrEmptyConnectionString)
}

func TestHealthcheckNilPool(t *testing.T) {
	err := Healthcheck(nil)(context.Background())
	assert.ErrorIs(t, err, ErrHealthcheckFailed)
	assert.ErrorIs(t, err, ErrNilPool)
}
