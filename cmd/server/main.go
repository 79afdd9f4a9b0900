// Package main is the entry point for the user management service.
// It wires together all modules and starts the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/BasavarajuVB/User-management-backend/internal/platform/config"
	"github.com/BasavarajuVB/User-management-backend/internal/platform/eventbus"
	"github.com/BasavarajuVB/User-management-backend/internal/platform/httpserver"
	"github.com/BasavarajuVB/User-management-backend/internal/platform/telemetry"
	"github.com/BasavarajuVB/User-management-backend/modules/audit"
	"github.com/BasavarajuVB/User-management-backend/modules/audit/application/eventhandlers"
	"github.com/BasavarajuVB/User-management-backend/modules/audit/infrastructure/messaging"
	"github.com/BasavarajuVB/User-management-backend/modules/users"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize tracing and logger
	tel, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:   cfg.App.Name,
		Version:       cfg.App.Version,
		Environment:   cfg.App.Environment,
		TraceEndpoint: cfg.Telemetry.TraceEndpoint,
		SampleRate:    cfg.Telemetry.SampleRate,
		LogLevel:      cfg.Telemetry.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		tel.Shutdown(shutdownCtx)
	}()

	logger := tel.Logger()
	slog.SetDefault(logger)

	logger.Info("starting user management service", slog.String("driver", cfg.Database.Driver))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewMetrics(registry, cfg.App.Name)

	// Initialize storage
	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	// Initialize event bus (for inter-module communication)
	eventBus := eventbus.New(logger)

	var forwarder eventhandlers.Forwarder
	if cfg.Kafka.Enabled() {
		kafkaForwarder := messaging.NewKafkaForwarder(cfg.Kafka)
		defer kafkaForwarder.Close()
		forwarder = kafkaForwarder
		logger.Info("forwarding user events to kafka", slog.String("topic", cfg.Kafka.Topic))
	}

	// Initialize modules
	if _, err := audit.New(audit.Config{
		EventSubscriber: eventBus,
		Logger:          logger,
		EventsTotal:     metrics.UserEventsTotal,
		Forwarder:       forwarder,
	}); err != nil {
		return err
	}

	usersModule := users.New(users.Config{
		Repository:     repo,
		EventPublisher: eventBus,
		Logger:         logger,
	})

	g, gctx := errgroup.WithContext(ctx)

	// Apply middleware, outermost first
	middlewares := []httpserver.Middleware{
		httpserver.Recovery(logger),
		httpserver.RequestID(),
		httpserver.Tracing(logger),
		httpserver.CORS(cfg.CORS.AllowedOrigins),
	}
	if cfg.RateLimit.RPS > 0 {
		limiter := httpserver.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		middlewares = append(middlewares, httpserver.RateLimit(limiter))
		g.Go(func() error { return limiter.Run(gctx, time.Minute) })
	}
	middlewares = append(middlewares, httpserver.Metrics(metrics))

	handler := httpserver.Chain(buildRouter(usersModule, registry), middlewares...)

	server := httpserver.New(httpserver.Config{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, handler, logger)

	g.Go(func() error { return server.Run(gctx) })

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
