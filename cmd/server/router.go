package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BasavarajuVB/User-management-backend/internal/platform/telemetry"
	"github.com/BasavarajuVB/User-management-backend/modules/users"
)

const healthCheckTimeout = 2 * time.Second

// buildRouter creates the main HTTP router with all module handlers.
func buildRouter(usersModule users.Module, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := usersModule.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "health check failed", slog.Any("error", err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", telemetry.Handler(gatherer))

	// Each module registers its own routes
	usersModule.RegisterRoutes(mux)

	return mux
}
