package lookup

import (
	"context"
	"errors"
)

// Category selects which family of collections a query targets.
type Category string

const (
	// Users is the distinguished category for account records.
	Users Category = "users"
	// Data holds every other named collection.
	Data Category = "data"
)

// CategoryFor routes the reserved collection name "users" to the Users
// category and every other name to Data.
func CategoryFor(collection string) Category {
	if collection == string(Users) {
		return Users
	}
	return Data
}

// Record is a single row, document or hash returned by a store.
type Record map[string]any

// Query filters a collection by a single column equality.
// Limit of zero means no limit.
type Query struct {
	Category   Category
	Collection string
	Column     string
	Value      any
	Limit      int
}

// Where builds an equality query on collection, routing the category by name.
func Where(collection, column string, value any) Query {
	return Query{
		Category:   CategoryFor(collection),
		Collection: collection,
		Column:     column,
		Value:      value,
	}
}

// Connection is the capability a lookup rule needs from its execution context.
type Connection interface {
	List(ctx context.Context, q Query) ([]Record, error)
}

// ConnectionFunc adapts a plain function to Connection.
type ConnectionFunc func(ctx context.Context, q Query) ([]Record, error)

func (f ConnectionFunc) List(ctx context.Context, q Query) ([]Record, error) {
	return f(ctx, q)
}

var (
	ErrEmptyCollection = errors.New("lookup: collection name is empty")
	ErrEmptyColumn     = errors.New("lookup: column name is empty")
)

// Validate reports malformed queries before they reach a store.
func (q Query) Validate() error {
	if q.Collection == "" {
		return ErrEmptyCollection
	}
	if q.Column == "" {
		return ErrEmptyColumn
	}
	return nil
}
