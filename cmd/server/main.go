// Package main is the entry point for the discovery dashboard API. It wires
// all dependencies using samber/do v2, runs the HTTP server alongside the
// settings file watcher, and shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	adapthttp "github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/clients/acl/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/store/settingsfile"
	"github.com/jsamuelsen11/discovery-dashboard/internal/app"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/config"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/health"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*settingsfile.Store](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	registry.Register(store)

	stopFollowing := do.MustInvoke[*app.Policies](injector).Follow(do.MustInvoke[*telemetry.Metrics](injector))
	defer stopFollowing()

	stopSignalLog := context.AfterFunc(ctx, func() { logger.Info("received shutdown signal") })
	defer stopSignalLog()

	// Any component failing cancels gctx, which drains the server.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Run(gctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	if cfg.Settings.Watch {
		g.Go(func() error {
			return store.Watch(gctx)
		})
	}

	runErr := g.Wait()

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if runErr != nil {
		return runErr
	}
	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "discovery-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DiscoveryClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewDiscoveryClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*settingsfile.Store, error) {
		return settingsfile.New(cfg.Settings.Path, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SettingsStore, error) {
		return do.MustInvoke[*settingsfile.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Policies, error) {
		store := do.MustInvoke[ports.SettingsStore](i)
		return app.NewPolicies(cfg.Discovery.Completion.Policy(), store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DiscoveryService, error) {
		client := do.MustInvoke[ports.DiscoveryClient](i)
		policies := do.MustInvoke[*app.Policies](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewDiscoveryService(client, policies, metrics, cfg.Discovery.MaxConcurrency, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CompletionService, error) {
		policies := do.MustInvoke[*app.Policies](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewCompletionService(progress.NewDecoder(), policies, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SettingsService, error) {
		store := do.MustInvoke[ports.SettingsStore](i)
		return app.NewSettingsService(store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(cfg.Server.HealthCheckTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DiscoveryHandler, error) {
		return handlers.NewDiscoveryHandler(do.MustInvoke[ports.DiscoveryService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CompletionHandler, error) {
		return handlers.NewCompletionHandler(do.MustInvoke[ports.CompletionService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SettingsHandler, error) {
		return handlers.NewSettingsHandler(do.MustInvoke[ports.SettingsService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := adapthttp.Handlers{
			Discovery:  do.MustInvoke[*handlers.DiscoveryHandler](i),
			Completion: do.MustInvoke[*handlers.CompletionHandler](i),
			Settings:   do.MustInvoke[*handlers.SettingsHandler](i),
			Health:     do.MustInvoke[*handlers.HealthHandler](i),
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
