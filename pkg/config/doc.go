// Package config loads configuration structs from environment variables.
//
// Struct fields are mapped with github.com/caarlos0/env tags (`env`,
// `envDefault`, `required`, `envSeparator`). Dotenv files are read with
// github.com/joho/godotenv first; they never override variables that are
// already set.
//
// Store packages under pkg/lookup declare their Config types this way, so a
// binary can load them directly:
//
//	var pgCfg pg.Config
//	if err := config.Load(&pgCfg); err != nil {
//		return err
//	}
package config
