package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BasavarajuVB/User-management-backend/internal/platform/config"
	"github.com/BasavarajuVB/User-management-backend/internal/platform/eventbus"
	"github.com/BasavarajuVB/User-management-backend/internal/platform/telemetry"
	"github.com/BasavarajuVB/User-management-backend/modules/audit"
	"github.com/BasavarajuVB/User-management-backend/modules/users"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type downRepository struct {
	domain.UserRepository
}

func (downRepository) Ping(context.Context) error { return errors.New("database is closed") }

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		repo       domain.UserRepository
		wantStatus int
		wantBody   string
	}{
		{"store reachable", nil, http.StatusOK, `{"status":"ok"}`},
		{"store down", downRepository{}, http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := buildRouter(users.New(users.Config{Repository: tt.repo, Logger: discardLogger()}), prometheus.NewRegistry())

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRouter_EventsReachAuditMetrics(t *testing.T) {
	logger := discardLogger()
	registry := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(registry, "users")
	bus := eventbus.New(logger)

	_, err := audit.New(audit.Config{EventSubscriber: bus, Logger: logger, EventsTotal: metrics.UserEventsTotal})
	require.NoError(t, err)

	mux := buildRouter(users.New(users.Config{EventPublisher: bus, Logger: logger}), registry)

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","department":"Research"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `users_events_total{service="users",type="users.UserCreated"} 1`)
	assert.Contains(t, rec.Body.String(), `users_events_total{service="users",type="users.UserDeleted"} 1`)
}

func TestOpenRepository_Memory(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = config.DriverMemory

	repo, closeRepo, err := openRepository(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer closeRepo()

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestOpenRepository_SQLiteCreatesSchema(t *testing.T) {
	cfg := config.Default()
	cfg.Database.DSN = filepath.Join(t.TempDir(), "usersdata.db")

	repo, closeRepo, err := openRepository(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer closeRepo()

	rows, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOpenRepository_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = "mysql"

	_, _, err := openRepository(context.Background(), cfg, discardLogger())

	assert.Error(t, err)
}
