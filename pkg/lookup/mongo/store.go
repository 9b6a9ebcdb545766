package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/rulekit/pkg/lookup"
)

// Store resolves lookup queries with Find on a collection. The users
// category and the data category live in separate databases.
type Store struct {
	client  *mongo.Client
	usersDB string
	dataDB  string
}

var _ lookup.Connection = (*Store)(nil)

func NewStore(client *mongo.Client, cfg Config) (*Store, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Store{
		client:  client,
		usersDB: databaseFor(cfg, lookup.Users),
		dataDB:  databaseFor(cfg, lookup.Data),
	}, nil
}

func (s *Store) List(ctx context.Context, q lookup.Query) ([]lookup.Record, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	db := s.dataDB
	if q.Category == lookup.Users {
		db = s.usersDB
	}

	opts := options.Find()
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := s.client.Database(db).Collection(q.Collection).Find(ctx, filter(q), opts)
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]lookup.Record, len(docs))
	for i, d := range docs {
		out[i] = lookup.Record(d)
	}
	return out, nil
}

func filter(q lookup.Query) bson.D {
	return bson.D{{Key: q.Column, Value: q.Value}}
}

func databaseFor(cfg Config, cat lookup.Category) string {
	if cat == lookup.Users {
		if cfg.UsersDatabase != "" {
			return cfg.UsersDatabase
		}
		return "users"
	}
	if cfg.DataDatabase != "" {
		return cfg.DataDatabase
	}
	return "data"
}
