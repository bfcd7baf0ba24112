package testing

import (
	"context"
	"fmt"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
)

// endpoint resolves scheme://host:port for a container port mapped to the docker host.
func endpoint(ctx context.Context, tb testing.TB, c testcontainers.Container, scheme, port string) string {
	tb.Helper()

	host, err := c.Host(ctx)
	if err != nil {
		tb.Fatalf("resolving container host: %v", err)
	}

	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		tb.Fatalf("resolving mapped port %s: %v", port, err)
	}

	return fmt.Sprintf("%s://%s:%s", scheme, host, mapped.Port())
}

func terminateOnCleanup(tb testing.TB, name string, c testcontainers.Container) {
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			tb.Logf("terminating %s container: %v", name, err)
		}
	})
}
