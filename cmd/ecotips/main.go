// Package main runs the interactive tips client.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/jsamuelsen/ecotips/internal/adapters/cli"
	"github.com/jsamuelsen/ecotips/internal/adapters/clients"
	"github.com/jsamuelsen/ecotips/internal/adapters/clients/acl"
	"github.com/jsamuelsen/ecotips/internal/adapters/http/middleware"
	"github.com/jsamuelsen/ecotips/internal/adapters/prefs"
	"github.com/jsamuelsen/ecotips/internal/platform/config"
	"github.com/jsamuelsen/ecotips/internal/platform/logging"
	"github.com/jsamuelsen/ecotips/internal/ports"
)

// clientLogLevel keeps the terminal quiet unless APP_LOG_LEVEL asks otherwise.
const clientLogLevel = "warn"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.Log.Level
	if os.Getenv("APP_LOG_LEVEL") == "" {
		level = clientLogLevel
	}

	// stdout belongs to the session; logs go to stderr.
	logger := logging.NewWithWriter(&logging.Config{
		Level:   level,
		Format:  "text",
		Service: cfg.App.Name + "-cli",
		Version: cfg.App.Version,
	}, os.Stderr)
	logging.SetDefault(logger)

	httpClient, err := clients.New(cfg.Client, logger)
	if err != nil {
		return fmt.Errorf("creating tips API client: %w", err)
	}

	tipClient := acl.NewTipClient(acl.TipClientConfig{
		Client: httpClient,
		Logger: logger,
	})

	path := cfg.Preferences.Path
	if path == "" {
		if path, err = prefs.DefaultPath(); err != nil {
			return fmt.Errorf("locating preferences: %w", err)
		}
	}

	store, err := prefs.OpenFile(prefs.FileConfig{Path: path, Logger: logger})
	if err != nil {
		return fmt.Errorf("opening preferences: %w", err)
	}

	if cfg.Preferences.Watch {
		watchCtx, cancelWatch := context.WithCancel(ctx)

		done, err := store.Watch(watchCtx)
		if err != nil {
			cancelWatch()
			return fmt.Errorf("watching preferences: %w", err)
		}

		defer func() {
			cancelWatch()
			<-done
		}()
	}

	registry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{tipClient, store} {
		if err := registry.Register(checker); err != nil {
			return fmt.Errorf("registering health check: %w", err)
		}
	}

	// One correlation id ties every request of this session together in the API logs.
	ctx = middleware.ContextWithCorrelationID(ctx, uuid.NewString())

	controller := cli.New(cli.Config{
		Catalog:     tipClient,
		Favorites:   store.List(prefs.ListFavorites),
		Implemented: store.List(prefs.ListImplemented),
		Health:      registry,
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
		Logger:      logger,
	})

	logger.Debug("client session started",
		slog.String("api", cfg.Client.BaseURL),
		slog.String("preferences", store.Path()),
	)

	if err := controller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
