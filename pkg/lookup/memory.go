package lookup

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Connection. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[Category]map[string][]Record
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[Category]map[string][]Record)}
}

// Insert appends records to a collection. The category is derived from the
// collection name, the same way queries are routed.
func (m *Memory) Insert(collection string, records ...Record) {
	cat := CategoryFor(collection)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[cat] == nil {
		m.data[cat] = make(map[string][]Record)
	}
	m.data[cat][collection] = append(m.data[cat][collection], records...)
}

// List returns the records whose column equals q.Value.
// Values are compared by their formatted representation, so 42 matches "42".
func (m *Memory) List(ctx context.Context, q Query) ([]Record, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	want := fmt.Sprint(q.Value)
	var out []Record
	for _, rec := range m.data[q.Category][q.Collection] {
		v, ok := rec[q.Column]
		if !ok || fmt.Sprint(v) != want {
			continue
		}
		out = append(out, rec)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}
