// Package pg implements lookup.Connection on top of PostgreSQL using the
// pgx/v5 driver.
//
// Every collection maps to a table. Queries for the reserved "users"
// collection are issued against Config.UsersSchema, all other collections
// against Config.DataSchema. Table and column names are quoted with
// pgx.Identifier and the compared value is always bound as $1.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	store, err := pg.NewStore(pool, cfg)
//	if err != nil {
//		return err
//	}
//
//	registry := validator.New()
//	err = registry.Validate(ctx, store, validator.Check{
//		Attribute: "email",
//		Value:     "john@example.com",
//		Rule:      validator.RuleExists,
//		Params:    []any{"users", "email"},
//	})
//
// Connect retries according to Config.RetryAttempts, waiting
// RetryInterval, 2×RetryInterval and so on between attempts. Healthcheck
// returns a closure for readiness probes.
package pg
