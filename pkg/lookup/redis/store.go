package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/rulekit/pkg/lookup"
)

// idField is added to every record returned by List.
const idField = "id"

// Store keeps each record as a hash and maintains one set per
// (collection, column, value) holding the ids of matching records.
//
//	<prefix>:<category>:<collection>:<id>                 hash
//	<prefix>:<category>:<collection>:idx:<column>:<value> set of ids
type Store struct {
	db     redis.UniversalClient
	prefix string
}

var _ lookup.Connection = (*Store)(nil)

func NewStore(client redis.UniversalClient, cfg Config) (*Store, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "lookup"
	}
	return &Store{db: client, prefix: prefix}, nil
}

// Index stores rec under id and indexes every field. An empty id is
// replaced with a random UUID; the id actually used is returned.
func (s *Store) Index(ctx context.Context, collection, id string, rec lookup.Record) (string, error) {
	if collection == "" {
		return "", lookup.ErrEmptyCollection
	}
	if id == "" {
		id = uuid.NewString()
	}

	cat := lookup.CategoryFor(collection)
	fields := make(map[string]any, len(rec))
	for k, v := range rec {
		fields[k] = fmt.Sprint(v)
	}

	_, err := s.db.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(fields) > 0 {
			pipe.HSet(ctx, s.recordKey(cat, collection, id), fields)
		}
		for k, v := range fields {
			pipe.SAdd(ctx, s.indexKey(cat, collection, k, v), id)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) List(ctx context.Context, q lookup.Query) ([]lookup.Record, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	ids, err := s.db.SMembers(ctx, s.indexKey(q.Category, q.Collection, q.Column, q.Value)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = s.db.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, s.recordKey(q.Category, q.Collection, id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Limit applies to live records: an index entry can outlive its record.
	out := make([]lookup.Record, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		rec := make(lookup.Record, len(fields)+1)
		for k, v := range fields {
			rec[k] = v
		}
		rec[idField] = ids[i]
		out = append(out, rec)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) recordKey(cat lookup.Category, collection, id string) string {
	return strings.Join([]string{s.prefix, string(cat), collection, id}, ":")
}

func (s *Store) indexKey(cat lookup.Category, collection, column string, value any) string {
	return strings.Join([]string{s.prefix, string(cat), collection, "idx", column, fmt.Sprint(value)}, ":")
}
