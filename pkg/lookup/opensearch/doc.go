// Package opensearch implements lookup.Connection on OpenSearch.
//
// Each collection is an index named from Config.IndexPrefix: the reserved
// "users" collection maps to "<prefix>-users", every other collection to
// "<prefix>-data-<collection>" (lower-cased). A lookup is a term query on
// the requested column, so the column should be a keyword field.
//
// # Usage
//
//	client, err := opensearch.New(ctx, cfg)
//	if err != nil {
//		// errors.Is(err, opensearch.ErrConnectionFailed) or ErrHealthcheckFailed
//	}
//	store, err := opensearch.NewStore(client, cfg)
//
// Non-2xx search responses are returned as ErrSearchFailed joined with the
// status line.
package opensearch
