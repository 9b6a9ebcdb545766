// Package redis implements lookup.Connection on Redis.
//
// Records are stored as hashes and every field is indexed by a set keyed
// on (collection, column, value). List reads the index set and loads the
// referenced hashes in a single pipeline. Values are compared by their
// formatted representation, as Redis stores only strings.
//
// # Usage
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store, err := redis.NewStore(client, cfg)
//	if err != nil {
//		return err
//	}
//
//	id, err := store.Index(ctx, "users", "", lookup.Record{"email": "a@b.com"})
//
// Connect retries a ping RetryAttempts times within ConnectTimeout.
package redis
