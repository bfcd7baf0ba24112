package storage

import (
	"context"
	"log/slog"
)

type HealthChecker struct {
	store Store
}

func NewHealthChecker(store Store) *HealthChecker {
	return &HealthChecker{
		store: store,
	}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.store == nil {
		return false
	}

	if err := hc.store.Ping(ctx); err != nil {
		slog.Warn("Storage health check failed", "error", err)
		return false
	}

	return true
}
