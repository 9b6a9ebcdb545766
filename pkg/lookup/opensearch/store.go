package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/rulekit/pkg/lookup"
)

// defaultSize caps unbounded lookups; OpenSearch itself defaults to 10.
const defaultSize = 100

// Store resolves lookups with a term query. The users category is the
// index "<prefix>-users"; any other collection is "<prefix>-data-<collection>".
// Columns are expected to be mapped as keyword fields.
type Store struct {
	client *opensearch.Client
	prefix string
}

var _ lookup.Connection = (*Store)(nil)

func NewStore(client *opensearch.Client, cfg Config) (*Store, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	prefix := cfg.IndexPrefix
	if prefix == "" {
		prefix = "lookup"
	}
	return &Store{client: client, prefix: prefix}, nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string         `json:"_id"`
			Source map[string]any `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (s *Store) List(ctx context.Context, q lookup.Query) ([]lookup.Record, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	body, err := termQuery(q)
	if err != nil {
		return nil, err
	}

	size := defaultSize
	if q.Limit > 0 {
		size = q.Limit
	}

	req := opensearchapi.SearchRequest{
		Index: []string{s.indexName(q)},
		Body:  bytes.NewReader(body),
		Size:  &size,
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.Join(ErrSearchFailed, fmt.Errorf("index %s: %s", s.indexName(q), res.Status()))
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, err
	}

	out := make([]lookup.Record, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		rec := lookup.Record(h.Source)
		if rec == nil {
			rec = lookup.Record{}
		}
		if _, ok := rec["_id"]; !ok {
			rec["_id"] = h.ID
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store) indexName(q lookup.Query) string {
	if q.Category == lookup.Users {
		return s.prefix + "-users"
	}
	return strings.ToLower(s.prefix + "-data-" + q.Collection)
}

func termQuery(q lookup.Query) ([]byte, error) {
	return json.Marshal(map[string]any{
		"query": map[string]any{
			"term": map[string]any{
				q.Column: map[string]any{"value": q.Value},
			},
		},
	})
}
