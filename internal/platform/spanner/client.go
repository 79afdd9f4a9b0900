// Package spanner provides Cloud Spanner client initialization.
package spanner

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/BasavarajuVB/User-management-backend/internal/platform/config"
)

// NewClient creates a new Spanner client for the configured database.
// The caller is responsible for closing the client when done.
func NewClient(ctx context.Context, cfg config.SpannerConfig) (*spanner.Client, error) {
	client, err := spanner.NewClient(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create spanner client: %w", err)
	}
	return client, nil
}
