package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/lookup"
	"github.com/dmitrymomot/rulekit/pkg/lookup/mongo"
	"github.com/dmitrymomot/rulekit/pkg/lookup/opensearch"
	"github.com/dmitrymomot/rulekit/pkg/lookup/pg"
	"github.com/dmitrymomot/rulekit/pkg/lookup/redis"
)

// Lookup drivers selectable with LOOKUP_DRIVER.
const (
	DriverNone       = "none"
	DriverMemory     = "memory"
	DriverPostgres   = "pg"
	DriverMongo      = "mongo"
	DriverRedis      = "redis"
	DriverOpenSearch = "opensearch"
)

var ErrUnknownDriver = errors.New("unknown lookup driver")

// openStore connects the configured driver and runs its healthcheck. The returned close function is
// never nil. DriverNone yields a nil connection, so exists checks fail with
// an environment error.
func openStore(ctx context.Context, driver string, doc *checksFile) (lookup.Connection, func(), error) {
	noop := func() {}

	switch driver {
	case DriverNone, "":
		return nil, noop, nil

	case DriverMemory:
		m := lookup.NewMemory()
		doc.seed(m)
		return m, noop, nil

	case DriverPostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, noop, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		if err := pg.Healthcheck(pool)(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		store, err := pg.NewStore(pool, cfg)
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		return store, pool.Close, nil

	case DriverMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, noop, err
		}
		client, err := mongo.New(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		closeFn := func() { _ = client.Disconnect(context.WithoutCancel(ctx)) }
		if err := mongo.Healthcheck(client)(ctx); err != nil {
			closeFn()
			return nil, noop, err
		}
		store, err := mongo.NewStore(client, cfg)
		if err != nil {
			closeFn()
			return nil, noop, err
		}
		return store, closeFn, nil

	case DriverRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, noop, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		closeFn := func() { _ = client.Close() }
		if err := redis.Healthcheck(client)(ctx); err != nil {
			closeFn()
			return nil, noop, err
		}
		store, err := redis.NewStore(client, cfg)
		if err != nil {
			closeFn()
			return nil, noop, err
		}
		return store, closeFn, nil

	case DriverOpenSearch:
		var cfg opensearch.Config
		if err := config.Load(&cfg); err != nil {
			return nil, noop, err
		}
		client, err := opensearch.New(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		store, err := opensearch.NewStore(client, cfg)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}
