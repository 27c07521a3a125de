// Package config loads typed configuration from environment variables.
//
// Struct fields are mapped with github.com/caarlos0/env/v11 tags and an
// optional .env file is read with github.com/joho/godotenv before the first
// parse. Each configuration type is parsed once and cached; ForceReload and
// ResetCache exist for tests and for processes that change their environment.
//
//	var cfg struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
package config
