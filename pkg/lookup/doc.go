// Package lookup defines the data-store capability used by rules that need
// to consult external records, such as the "exists" rule.
//
// A Connection answers a single kind of Query: list the records of a named
// collection whose column equals a value. The reserved collection name
// "users" is routed to the Users category; every other name belongs to the
// Data category. Store implementations decide how categories map onto their
// storage (schemas, databases, key prefixes or indices).
//
// Implementations live in sub-packages:
//
//   - lookup/pg: PostgreSQL through pgx
//   - lookup/mongo: MongoDB
//   - lookup/redis: Redis hashes with set indexes
//   - lookup/opensearch: OpenSearch term queries
//
// Memory is an in-process store for tests and local tooling.
package lookup
