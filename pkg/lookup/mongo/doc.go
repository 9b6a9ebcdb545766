// Package mongo implements lookup.Connection on MongoDB.
//
// The reserved "users" collection is read from Config.UsersDatabase and all
// other collections from Config.DataDatabase. A lookup is a Find with a
// single equality filter on the requested column.
//
// # Usage
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(ctx)
//
//	store, err := mongo.NewStore(client, cfg)
//
// New retries connection and ping RetryAttempts times, sleeping
// RetryInterval between attempts, and returns ErrFailedToConnectToMongo
// joined with the last driver error on failure.
package mongo
