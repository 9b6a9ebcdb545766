package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/rulekit/pkg/lookup"
)

// Querier is the subset of pgxpool.Pool, pgx.Conn and pgx.Tx used by Store.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Store answers lookup queries with plain SELECTs. Each collection is a
// table; the users category lives in UsersSchema and the data category in
// DataSchema.
type Store struct {
	db          Querier
	usersSchema string
	dataSchema  string
}

var _ lookup.Connection = (*Store)(nil)

// NewStore wraps a pool (or any Querier) as a lookup.Connection.
func NewStore(db Querier, cfg Config) (*Store, error) {
	if db == nil {
		return nil, ErrNilPool
	}
	s := &Store{db: db, usersSchema: cfg.UsersSchema, dataSchema: cfg.DataSchema}
	if s.usersSchema == "" {
		s.usersSchema = "public"
	}
	if s.dataSchema == "" {
		s.dataSchema = "public"
	}
	return s, nil
}

func (s *Store) List(ctx context.Context, q lookup.Query) ([]lookup.Record, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, s.buildQuery(q), q.Value)
	if err != nil {
		return nil, err
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	out := make([]lookup.Record, len(maps))
	for i, m := range maps {
		out[i] = lookup.Record(m)
	}
	return out, nil
}

func (s *Store) buildQuery(q lookup.Query) string {
	schema := s.dataSchema
	if q.Category == lookup.Users {
		schema = s.usersSchema
	}

	table := pgx.Identifier{schema, q.Collection}.Sanitize()
	column := pgx.Identifier{q.Column}.Sanitize()

	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", table, column)
	if q.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", q.Limit)
	}
	return sql
}
