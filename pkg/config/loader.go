package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load fills v from environment variables according to its `env` struct
// tags. Before parsing it loads the given dotenv files, or ".env" when none
// are given; a missing file is not an error and variables already present in
// the environment always win.
//
//	type StoreConfig struct {
//		Driver string `env:"LOOKUP_DRIVER" envDefault:"none"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, dotenvFiles ...string) error {
	return LoadWithPrefix(v, "", dotenvFiles...)
}

// LoadWithPrefix is Load with every variable name prefixed, e.g. "REPLICA_",
// so one Config type can be loaded twice for two instances of a store.
func LoadWithPrefix[T any](v *T, prefix string, dotenvFiles ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := loadDotenv(dotenvFiles); err != nil {
		return err
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func loadDotenv(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrDotenv, fmt.Errorf("%s: %w", f, err))
		}
	}
	return nil
}
