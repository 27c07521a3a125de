// Command safeop serves the numeric and text operation catalogs over HTTP.
//
// Configuration comes from the environment (and an optional .env file):
//
//	HTTP_ADDR, HTTP_*_TIMEOUT   server settings
//	LOG_LEVEL                   debug, info, warn or error
//	LOG_FORMAT                  json or text
//	VALIDATION_PROFILES         optional path to a YAML profiles file
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/safeop/internal/api"
	"github.com/dmitrymomot/safeop/pkg/config"
	"github.com/dmitrymomot/safeop/pkg/httpserver"
	"github.com/dmitrymomot/safeop/pkg/logger"
	"github.com/dmitrymomot/safeop/pkg/profile"
)

type appConfig struct {
	HTTP      httpserver.Config
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Profiles  string `env:"VALIDATION_PROFILES"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	var profiles *profile.Registry
	if cfg.Profiles != "" {
		if profiles, err = profile.Load(cfg.Profiles); err != nil {
			return fmt.Errorf("loading validation profiles: %w", err)
		}
		log.Info("validation profiles loaded", slog.String("path", cfg.Profiles), slog.Any("profiles", profiles.Names()))
	}

	handler := api.New(api.WithProfiles(profiles), api.WithLogger(log))
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, handler.Router()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func newLogger(cfg appConfig) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithService("safeop"),
		logger.WithContextExtractors(api.RequestIDExtractor()),
	), nil
}
