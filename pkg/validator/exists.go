package validator

import (
	"context"

	"github.com/dmitrymomot/rulekit/pkg/async"
	"github.com/dmitrymomot/rulekit/pkg/lookup"
)

// Exists resolves to true when at least one record in the collection named
// by params[0] has params[1] equal to value. The collection "users" is
// looked up in the users category, everything else in the data category.
//
// Usage errors are returned before any lookup starts. A failed lookup
// rejects the future with the store's error unchanged.
func Exists(ctx context.Context, conn lookup.Connection, attribute string, value any, params []any) (*async.Future[bool], error) {
	if err := requireConnection(RuleExists, attribute, conn); err != nil {
		return nil, err
	}
	if err := requireParameterCount(2, params, RuleExists); err != nil {
		return nil, err
	}

	collection, ok := params[0].(string)
	if !ok {
		return nil, &TypeContractError{Rule: RuleExists, Index: 0, Want: "collection name", Got: params[0]}
	}
	column, ok := params[1].(string)
	if !ok {
		return nil, &TypeContractError{Rule: RuleExists, Index: 1, Want: "column name", Got: params[1]}
	}

	q := lookup.Where(collection, column, value)
	q.Limit = 1

	return async.Async(ctx, q, func(ctx context.Context, q lookup.Query) (bool, error) {
		records, err := conn.List(ctx, q)
		if err != nil {
			return false, err
		}
		return len(records) > 0, nil
	}), nil
}
