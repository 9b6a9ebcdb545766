package redis

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	goredis "github.com/redis/go-redis/v9"
)

// memoryBackend answers the handful of commands Store issues without a
// server. It is installed as a client hook, so commands never hit the wire.
type memoryBackend struct {
	mu     sync.Mutex
	hashes map[string]map[string]string
	sets   map[string][]string
	down   error
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{
		hashes: make(map[string]map[string]string),
		sets:   make(map[string][]string),
	}
}

// client returns a go-redis client whose commands are served by b.
func (b *memoryBackend) client() *goredis.Client {
	c := goredis.NewClient(&goredis.Options{Addr: "localhost:0"})
	c.AddHook(b)
	return c
}

func (b *memoryBackend) DialHook(next goredis.DialHook) goredis.DialHook {
	return next
}

func (b *memoryBackend) ProcessHook(goredis.ProcessHook) goredis.ProcessHook {
	return func(_ context.Context, cmd goredis.Cmder) error {
		return b.apply(cmd)
	}
}

func (b *memoryBackend) ProcessPipelineHook(goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return func(_ context.Context, cmds []goredis.Cmder) error {
		for _, cmd := range cmds {
			if err := b.apply(cmd); err != nil {
				return err
			}
		}
		return nil
	}
}

func (b *memoryBackend) apply(cmd goredis.Cmder) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.down != nil {
		cmd.SetErr(b.down)
		return b.down
	}

	args := cmd.Args()
	key := ""
	if len(args) > 1 {
		key = fmt.Sprint(args[1])
	}

	switch c := cmd.(type) {
	case *goredis.StatusCmd:
		if cmd.Name() == "ping" {
			c.SetVal("PONG")
		}
	case *goredis.StringSliceCmd:
		c.SetVal(slices.Clone(b.sets[key]))
	case *goredis.MapStringStringCmd:
		c.SetVal(maps.Clone(b.hashes[key]))
	case *goredis.IntCmd:
		switch cmd.Name() {
		case "hset":
			if b.hashes[key] == nil {
				b.hashes[key] = make(map[string]string)
			}
			for i := 2; i+1 < len(args); i += 2 {
				b.hashes[key][fmt.Sprint(args[i])] = fmt.Sprint(args[i+1])
			}
		case "sadd":
			for _, m := range args[2:] {
				if id := fmt.Sprint(m); !slices.Contains(b.sets[key], id) {
					b.sets[key] = append(b.sets[key], id)
				}
			}
		default:
			return errors.New("memory backend: unsupported command " + cmd.Name())
		}
	}
	return nil
}
