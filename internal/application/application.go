package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"numclass/internal/config"
	"numclass/internal/domain/service/fact"
	"numclass/internal/domain/service/number"
	"numclass/internal/infrastructure/numbersapi"
	"numclass/internal/server"
	"numclass/pkg/application/modules"
	"numclass/pkg/contextx"
	"numclass/pkg/httpx"
	"numclass/pkg/logx"
)

// Run wires the service and blocks until ctx is cancelled and every server
// has shut down, or one of them fails.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	// 1. Fun facts
	facts := NewFactProvider(cfg.Fact, cfg.HTTP.LogFieldMaxLen)

	// 2. Services
	numberService := number.NewService(facts)

	// 3. HTTP
	srv := server.NewServer(
		server.NewNumberServer(numberService),
		server.NewMetaServer(cfg.App.DocsURL),
	)

	g, ctx := errgroup.WithContext(ctx)

	probeServer := modules.ProbeServer{
		Name:            cfg.App.Name,
		Version:         cfg.App.Version,
		ListenAddress:   cfg.Probe.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress:   cfg.Metrics.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g)

	modules.HTTPServer{
		Name:            "api",
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		OnListen:        func() { probeServer.SetReady(true) },
		OnShutdown:      func() { probeServer.SetReady(false) },
	}.Run(ctx, g, &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           server.NewRouter(srv, cfg.HTTP.LogFieldMaxLen),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	})

	log.Info("application started")

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}

// NewFactProvider builds the production chain: fallback over cache over
// metrics over the numbersapi client. Upstream failures never leave it.
func NewFactProvider(cfg config.Fact, logFieldMaxLen int) fact.Provider {
	client := numbersapi.NewClient(
		cfg.BaseURL,
		httpx.NewClient(
			cfg.Timeout,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
		cfg.Timeout,
	)

	return fact.WithFallback(
		fact.WithCache(
			fact.WithMetrics(client),
			cfg.CacheTTL,
			cfg.CacheCleanupInterval,
		),
	)
}
