package testing

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisContainer struct {
	Container testcontainers.Container
	URL       string
}

// NewRedisContainer starts redis and returns a URL pointing at database 0.
func NewRedisContainer(ctx context.Context, tb testing.TB) *RedisContainer {
	tb.Helper()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		tb.Fatalf("starting redis: %v", err)
	}
	terminateOnCleanup(tb, "redis", c)

	return &RedisContainer{
		Container: c,
		URL:       endpoint(ctx, tb, c, "redis", "6379") + "/0",
	}
}
